package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so errors.Is works across separately
// constructed instances of the same failure.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Membership (OWN) ----

func ErrNotOwner() *AppError {
	return New("OWN_001", "Caller is not an owner of this vault", http.StatusForbidden)
}

func ErrInvalidIdentity() *AppError {
	return New("OWN_002", "Owner identity must not be empty", http.StatusBadRequest)
}

func ErrDuplicateOwner() *AppError {
	return New("OWN_003", "Identity is already an owner", http.StatusConflict)
}

func ErrUnknownOwner() *AppError {
	return New("OWN_004", "Identity is not an owner", http.StatusNotFound)
}

func ErrThresholdViolation() *AppError {
	return New("OWN_005", "Removal would drop the owner set below the threshold", http.StatusConflict)
}

func ErrInvalidThreshold() *AppError {
	return New("OWN_006", "Threshold must be between 1 and the owner count, and differ from the current value", http.StatusBadRequest)
}

// ---- Proposal Ledger (PROP) ----

func ErrInvalidDestination() *AppError {
	return New("PROP_001", "Destination must not be empty", http.StatusBadRequest)
}

func ErrUnknownProposal() *AppError {
	return New("PROP_002", "No proposal with this id", http.StatusNotFound)
}

func ErrAlreadyExecuted() *AppError {
	return New("PROP_003", "Proposal has already been executed", http.StatusConflict)
}

func ErrAlreadyApproved() *AppError {
	return New("PROP_004", "Caller has already approved this proposal", http.StatusConflict)
}

func ErrNotApproved() *AppError {
	return New("PROP_005", "Caller has not approved this proposal", http.StatusConflict)
}

// ---- Execution (EXEC) ----

func ErrInsufficientApprovals() *AppError {
	return New("EXEC_001", "Proposal has fewer approvals than the threshold", http.StatusConflict)
}

func ErrInsufficientFunds() *AppError {
	return New("EXEC_002", "Custodied balance is below the proposal amount", http.StatusPaymentRequired)
}

// ---- Treasury (TRS) ----

func ErrInvalidAmount() *AppError {
	return New("TRS_001", "Invalid amount", http.StatusBadRequest)
}

// ---- Generic (VLT / AUTH / SYS) ----

func ErrNotFound(entity string) *AppError {
	return New("VLT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
