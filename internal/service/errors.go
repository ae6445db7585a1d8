package service

import "errors"

var (
	ErrUserExists         = errors.New("Username already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrMedicineNotFound   = errors.New("Medicine not found")
	ErrInvalidInput       = errors.New("invalid input")

	ErrCompositionNotFound = errors.New("Could not determine the composition of this medicine")
	// ErrMalformedModelReply means the model answered with something other than the JSON asked for.
	ErrMalformedModelReply = errors.New("malformed model reply")
)

// GenericNotFoundError carries the closest known medicine name, if any.
type GenericNotFoundError struct {
	Suggestion string
}

func (e *GenericNotFoundError) Error() string {
	return ErrMedicineNotFound.Error()
}

func (e *GenericNotFoundError) Unwrap() error {
	return ErrMedicineNotFound
}
