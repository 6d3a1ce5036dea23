package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when an input fixture does not exist
	ErrFileNotFound = errors.New("fixture file not found")
	// ErrParse is returned for invalid JSON or a record without account.data
	ErrParse = errors.New("failed to parse fixture")
	// ErrDecode is returned for invalid base64 data or an invalid base58 key
	ErrDecode = errors.New("failed to decode")
	// ErrBufferTooShort is matched by every *BufferTooShortError
	ErrBufferTooShort = errors.New("account data too short")
	// ErrEncodingTag is returned in strict mode when data[1] is not "base64"
	ErrEncodingTag = errors.New("unexpected account data encoding")
)

// BufferTooShortError is returned when the decoded blob cannot hold the patched window
type BufferTooShortError struct {
	Len  int
	Need int
}

func (e *BufferTooShortError) Error() string {
	return fmt.Sprintf("account data too short: have %d bytes, need at least %d", e.Len, e.Need)
}

// Is makes errors.Is(err, ErrBufferTooShort) work
func (e *BufferTooShortError) Is(target error) bool {
	return target == ErrBufferTooShort
}

// IsBufferTooShortError checks if error is (or wraps) BufferTooShortError
func IsBufferTooShortError(err error) bool {
	var e *BufferTooShortError
	return errors.As(err, &e)
}
