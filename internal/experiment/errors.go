package experiment

// InputError reports input rejected before any integration ran. Reason is
// the validator's message; Err is the sentinel it wraps.
type InputError struct {
	Reason string
	Err    error
}

func (e *InputError) Error() string { return e.Reason }

func (e *InputError) Unwrap() error { return e.Err }

// NewInputError wraps a validation failure, keeping its message as Reason.
func NewInputError(err error) *InputError {
	return &InputError{Reason: err.Error(), Err: err}
}
