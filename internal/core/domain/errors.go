package domain

import "errors"

// Recoverable store errors. Callers report them and return to the prompt;
// none of them leave a partial write behind.
var (
	ErrStoreNotFound         = errors.New("store not found")
	ErrNotFound              = errors.New("not found")
	ErrDuplicateSerialNumber = errors.New("duplicate serial number")
	ErrUsernameTaken         = errors.New("username taken")
	ErrUnknownField          = errors.New("unknown field")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidValue          = errors.New("invalid value")
)

var recoverable = []error{
	ErrStoreNotFound,
	ErrNotFound,
	ErrDuplicateSerialNumber,
	ErrUsernameTaken,
	ErrUnknownField,
	ErrPermissionDenied,
	ErrInvalidValue,
}

// IsRecoverable reports whether err is one of the store errors a user can
// act on without restarting.
func IsRecoverable(err error) bool {
	for _, target := range recoverable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
