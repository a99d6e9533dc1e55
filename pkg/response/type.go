package response

// Resp is the standard JSON error body. Successful responses serialize
// their payload directly (the API contract fixes the success wire shapes),
// so the envelope is only used on the failure path.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

const (
	// InternalServerErrorCode is the error_code used when an unclassified
	// error reaches the boundary.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal details from clients on 500s.
	DefaultErrorMessage = "internal server error"
)
