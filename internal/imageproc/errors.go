package imageproc

// ValidationError is returned for every rejected upload. Message is safe to
// show to the caller; well-formed-but-rejected input never surfaces as an
// opaque internal error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}
