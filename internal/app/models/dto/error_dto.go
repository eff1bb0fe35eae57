package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeUnavailable    ErrorCode = "SRV_004"
)

// NewErrorResponse creates the body of an error response
func NewErrorResponse(code ErrorCode, message string) MessageResponse {
	return MessageResponse{Message: message, Code: code}
}
