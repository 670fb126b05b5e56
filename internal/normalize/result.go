package normalize

// ErrorSink receives human-readable data-quality messages.
type ErrorSink interface {
	AddError(msg string)
}

// ProcessingResult accumulates messages for a single record. It is not safe
// for concurrent use.
type ProcessingResult struct {
	errs []string
}

func (r *ProcessingResult) AddError(msg string) {
	r.errs = append(r.errs, msg)
}

// Errors returns the collected messages in the order they were added.
func (r *ProcessingResult) Errors() []string {
	return r.errs
}

func (r *ProcessingResult) HasErrors() bool {
	return len(r.errs) > 0
}

// Reset clears the collected messages so the result can be reused.
func (r *ProcessingResult) Reset() {
	r.errs = r.errs[:0]
}
