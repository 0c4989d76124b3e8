// Package responses defines the JSON envelope every endpoint answers
// with, success and failure alike.
package responses

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details string      `json:"details,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse wraps an error message and optional detail text, kept
// out of the envelope when empty.
func NewErrorResponse(errMsg string, details string) APIResponse {
	return APIResponse{
		Success: false,
		Error:   errMsg,
		Details: details,
	}
}
