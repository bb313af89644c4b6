package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidStatus  ErrCode = "INVALID_STATUS"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound           ErrCode = "NOT_FOUND"
	ErrStudentNotFound    ErrCode = "STUDENT_NOT_FOUND"
	ErrDuplicateStudentID ErrCode = "DUPLICATE_STUDENT_ID"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "The request payload is invalid."
	case ErrInvalidStatus:
		return "Status must be one of Present, Absent or Late."
	case ErrNotFound:
		return "The requested resource was not found."
	case ErrStudentNotFound:
		return "No student exists with this ID."
	case ErrDuplicateStudentID:
		return "A student with this ID already exists."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
