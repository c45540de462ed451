package validation

import "strings"

type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

type APIErrorResult struct {
	ErrorsMessages []FieldError `json:"errorsMessages"`
}

// Errors is an ordered list of field errors. A non-empty Errors is returned
// from services as an error and rendered as an APIErrorResult.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}

	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e Errors) Result() APIErrorResult {
	messages := make([]FieldError, len(e))
	copy(messages, e)
	return APIErrorResult{ErrorsMessages: messages}
}

// Dedupe keeps the first error reported for every field and drops the rest,
// preserving order.
func Dedupe(errs Errors) Errors {
	if errs == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(errs))
	out := make(Errors, 0, len(errs))
	for _, fe := range errs {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		out = append(out, fe)
	}
	return out
}
