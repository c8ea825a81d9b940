package dto

// Envelope is the common response shape for every endpoint
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps response data in a success envelope
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps a message in a success envelope
func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// Fail wraps an error message in a failure envelope
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// ErrorResponse carries a standardized error code alongside the envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
