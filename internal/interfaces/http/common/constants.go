package common

const (
	// AdminTokenCookie carries the signed admin session token.
	AdminTokenCookie = "admin_token"
	// MaxRequestBody limits JSON request bodies across all endpoints.
	MaxRequestBody = 1 << 20
)

// Stable error codes surfaced to clients. End users only ever see a generic
// failure; these codes exist for the admin panel and for debugging.
const (
	ErrCodeInvalid               = "invalid"
	ErrCodeInvalidOption         = "invalid_option"
	ErrCodeMultipleNotAllowed    = "multiple_not_allowed"
	ErrCodeSurveyNotFoundExpired = "survey_not_found_or_expired"
	ErrCodeNotFound              = "not_found"
	ErrCodeUnauthorized          = "unauthorized"
	ErrCodeInternal              = "internal_error"
)
