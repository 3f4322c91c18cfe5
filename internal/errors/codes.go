package errors

// ErrorCode is a stable, machine-readable API error code
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthTokenRevoked       ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidFilter ErrorCode = "VALIDATION_005"
)

// Query engine error codes (QUERY_*)
const (
	QuerySessionNotFound   ErrorCode = "QUERY_001"
	QueryPageOutOfRange    ErrorCode = "QUERY_002"
	QueryStoreUnavailable  ErrorCode = "QUERY_003"
	QuerySessionClosed     ErrorCode = "QUERY_004"
	QueryNothingMoreToLoad ErrorCode = "QUERY_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRouteNotFound      ErrorCode = "SYSTEM_005"
)

var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid credentials",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthTokenRevoked:       "Authorization token has been revoked",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Dates must use the dd/mm/yyyy format",
	ValidationInvalidFilter: "Unknown filter dimension or value",

	QuerySessionNotFound:   "Query session not found",
	QueryPageOutOfRange:    "Page is out of range",
	QueryStoreUnavailable:  "Transactions could not be loaded; showing the last loaded data",
	QuerySessionClosed:     "Query session has been closed",
	QueryNothingMoreToLoad: "All transactions have already been loaded",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for code, or a generic one
// for unknown codes.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
