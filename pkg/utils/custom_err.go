package utils

import "errors"

var (
	ErrInvalidCode             = errors.New("invalid access code")
	ErrCodeAlreadyUsed         = errors.New("access code already used")
	ErrCodeExpired             = errors.New("access code expired")
	ErrCodeNotFound            = errors.New("access code not found")
	ErrEventNotFoundOrInactive = errors.New("event not found or inactive")
	ErrDuplicateName           = errors.New("volunteer name already has an active code")
	ErrDuplicateCheckpoint     = errors.New("walking group already registered at post")

	ErrEventNotFound        = errors.New("event not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrWalkingGroupNotFound = errors.New("walking group not found")
	ErrVolunteerNotFound    = errors.New("volunteer not found")
	ErrCheckpointNotFound   = errors.New("checkpoint not found")
	ErrAlreadyAssigned      = errors.New("volunteer already assigned to a post")
	ErrNotAssigned          = errors.New("volunteer not assigned to a post")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailMismatch      = errors.New("confirmation email does not match account")
	ErrInvalidResetToken  = errors.New("password reset token invalid or expired")
	ErrMailDelivery       = errors.New("mail delivery failed")
	ErrSessionInvalid     = errors.New("volunteer session invalid")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")

	ErrDatabaseError = errors.New("database error")
)

// StoreError wraps a persistence failure. Its message is the underlying
// message, unchanged, so it can be shown to the user as is.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrDatabaseError
}

func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
