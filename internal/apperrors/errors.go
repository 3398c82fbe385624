package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller lacks permission for the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrNotAMember indicates a workspace operation referenced a user that is not
// a member of that workspace.
var ErrNotAMember = errors.New("user is not a member of the workspace")

// ErrLastOwnerDemotion indicates an attempt to change the sole owner's role
// to a non-owner role.
var ErrLastOwnerDemotion = errors.New("cannot demote the last owner of the workspace")

// ErrLastOwnerRemoval indicates an attempt to remove the sole owner from a
// workspace, which would leave it ownerless.
var ErrLastOwnerRemoval = errors.New("cannot remove the last owner of the workspace")

// ErrSuspended indicates the target user or workspace has been suspended by a
// platform operator.
var ErrSuspended = errors.New("suspended by platform administrator")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the stored refresh token is past its
// expiry and the user must log in again.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP status code alongside the underlying error so
// repositories and services can classify failures without importing net/http
// everywhere.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewConflictError creates a 409 AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates a 400 AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewBadRequestError creates a 400 AppError without a validation sentinel.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: 400, Message: message}
}
