package httputil

// Machine-readable error codes returned alongside error messages.
const (
	CodeInvalidAuthHeader  = "INVALID_AUTH_HEADER"
	CodeMissingAuth        = "MISSING_AUTH"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeEmailRequired      = "EMAIL_REQUIRED"
	CodeInvalidEmailFormat = "INVALID_EMAIL_FORMAT"
	CodePasswordRequired   = "PASSWORD_REQUIRED"
	CodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	CodePasswordTooLong    = "PASSWORD_TOO_LONG"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTitleRequired      = "TITLE_REQUIRED"
	CodeTitleTooLong       = "TITLE_TOO_LONG"
	CodeDescriptionTooLong = "DESCRIPTION_TOO_LONG"
	CodeInvalidTaskID      = "INVALID_TASK_ID"
	CodeInternalError      = "INTERNAL_ERROR"
)
