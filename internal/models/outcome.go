package models

// Outcome records the result of one module's setup. Exactly one Outcome is
// produced per invoked module, in invocation order.
type Outcome struct {
	// Module is the key of the module that produced this outcome
	Module string

	// Err is nil on success; otherwise it carries the failure reason
	Err error
}

// Success creates a successful outcome for a module.
func Success(module string) Outcome {
	return Outcome{Module: module}
}

// Failure creates a failed outcome for a module.
func Failure(module string, err error) Outcome {
	return Outcome{Module: module, Err: err}
}

// Failed reports whether the module's setup failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}
