package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrTokenExpired  = errors.New("token expired")
)

// On-chain verification errors
var (
	ErrTxNotFoundOrFailed = errors.New("tx failed or not found")
	ErrEventNotFound      = errors.New("event not found in tx")
	ErrClaimIDMismatch    = errors.New("event claimId mismatch")
	ErrPayerMismatch      = errors.New("payer address mismatch with on-chain event")
)

// Claim lifecycle errors
var (
	ErrClaimFinalized       = errors.New("claim already claimed or reclaimed")
	ErrCodeAllocationFailed = errors.New("claim code allocation failed")
	ErrUpdateFailed         = errors.New("failed to update claim after verification")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped sentinel so errors.Is keeps working
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// VerificationFailed wraps a TxVerifier error into the single client-facing
// verification failure category, keeping the underlying reason as detail
func VerificationFailed(prefix string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, prefix+": "+err.Error(), err)
}
