package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation       ErrCode = "VALIDATION_ERROR"
	ErrNoFieldsToUpdate ErrCode = "NO_FIELDS_TO_UPDATE"
	ErrInvalidStatus    ErrCode = "INVALID_STATUS"
	ErrInvalidCategory  ErrCode = "INVALID_CATEGORY"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Routing ───────────────────────────────────────────────────────
	ErrRouteNotFound    ErrCode = "ROUTE_NOT_FOUND"
	ErrMethodNotAllowed ErrCode = "METHOD_NOT_ALLOWED"
	ErrRateLimited      ErrCode = "RATE_LIMITED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrMailFailed ErrCode = "MAIL_FAILED"
	ErrInternal   ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid credentials"
	case ErrTokenRequired:
		return "Access token required"
	case ErrTokenInvalid:
		return "Invalid token"
	case ErrTokenExpired:
		return "Token has expired"

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrNoFieldsToUpdate:
		return "No fields to update"
	case ErrInvalidStatus:
		return "Invalid status value"
	case ErrInvalidCategory:
		return "Invalid category"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found"
	case ErrConflict:
		return "Resource already exists"

	// ─── Routing ───────────────────────────────────────────────────────
	case ErrRouteNotFound:
		return "Route not found"
	case ErrMethodNotAllowed:
		return "Method not allowed"
	case ErrRateLimited:
		return "Too many requests, please try again later"

	// ─── Server ────────────────────────────────────────────────────────
	case ErrMailFailed:
		return "Failed to send message"
	case ErrInternal:
		return "Internal server error"
	default:
		return "An unexpected error occurred"
	}
}
