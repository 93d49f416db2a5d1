package model

// The error taxonomy mirrors the API contract: each type maps to exactly one
// HTTP status, decided once at the controller boundary. Usecases only ever
// return these or plain errors (plain errors surface as 500).

// ValidationError carries per-field validation failures (422).
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given summary message.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// AuthError signals missing or bad credentials (401). The message is generic
// on purpose: it never distinguishes unknown email from wrong password.
type AuthError struct {
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// ForbiddenError signals a valid identity acting on somebody else's resource (403).
type ForbiddenError struct {
	Message string `json:"message"`
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

// NotFoundError signals an unknown resource id (404).
type NotFoundError struct {
	Message string `json:"message"`
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}
