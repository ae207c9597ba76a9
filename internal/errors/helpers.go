package errors

import (
	"errors"
)

// As is errors.As specialised to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is wraps errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the code from an error. Unknown errors are CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the top-level message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsPersistence reports whether err came from the backing store
func IsPersistence(err error) bool {
	return IsUnavailable(err)
}

// IsInvariant reports whether err is a broken catalog invariant
func IsInvariant(err error) bool {
	v, ok := GetMeta(err)[MetaInvariant].(bool)
	return ok && v
}
