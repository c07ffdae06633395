package dto

// Envelope is the uniform JSON response wrapper:
// {success:true, data:...} or {success:false, error:{...}}.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error half of the envelope.
type ErrorBody struct {
	Message      string       `json:"message"`
	Reason       string       `json:"reason,omitempty"`
	Action       string       `json:"action,omitempty"`
	CurrentPlan  string       `json:"currentPlan,omitempty"`
	RequiredPlan string       `json:"requiredPlan,omitempty"`
	Details      []FieldError `json:"details,omitempty"`
}

// FieldError is one entry of a collect-all validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps an error body in a failure envelope.
func Fail(body ErrorBody) Envelope {
	return Envelope{Success: false, Error: &body}
}
