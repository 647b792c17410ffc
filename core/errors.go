package core

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongLength is returned when the input is not exactly HeaderSize bytes
	ErrWrongLength = errors.New("gosleep: header should be 32 bytes")

	// ErrBadMagic is returned when one of the first three bytes is not 0x05 0x02 0x57
	ErrBadMagic = errors.New("gosleep: bad magic")

	// ErrUnknownFileType is returned when the fourth byte is not a known file type
	ErrUnknownFileType = errors.New("gosleep: unknown file type")

	// ErrUnknownProtocolVersion is returned when the fifth byte is not a known protocol version
	ErrUnknownProtocolVersion = errors.New("gosleep: unknown protocol version")

	// ErrAlgorithmNameTooLong is returned when the declared algorithm name length exceeds MaxAlgorithmNameLength
	ErrAlgorithmNameTooLong = errors.New("gosleep: algorithm name is too long")

	// ErrAlgorithmNameOutOfBounds is returned when the algorithm name would extend past the end of the header
	ErrAlgorithmNameOutOfBounds = errors.New("gosleep: algorithm name is out of bounds")

	// ErrInvalidUTF8 is returned when the algorithm name is not valid utf8
	ErrInvalidUTF8 = errors.New("gosleep: algorithm name is not valid utf8")

	// ErrUnrecognizedAlgorithm is returned when the algorithm name is none of BLAKE2b, Ed25519 or empty
	ErrUnrecognizedAlgorithm = errors.New("gosleep: unexpected algorithm name")

	// ErrNonZeroPadding is returned in strict mode when the bytes after the algorithm name are not all zero
	ErrNonZeroPadding = errors.New("gosleep: header padding should be zero filled")
)

// DecodeError describes which header constraint was violated and where.
// It wraps one of the Err* sentinels, so use errors.Is to match the kind of failure.
type DecodeError struct {
	Err    error
	Offset int
	Value  interface{}
}

func newDecodeError(err error, offset int, value interface{}) *DecodeError {
	return &DecodeError{
		Err:    err,
		Offset: offset,
		Value:  value,
	}
}

func (e *DecodeError) Error() string {
	switch e.Err {
	case ErrWrongLength:
		return fmt.Sprintf("%s, got %v", e.Err, e.Value)
	case ErrAlgorithmNameTooLong:
		return fmt.Sprintf("%s: %v (max: %d)", e.Err, e.Value, MaxAlgorithmNameLength)
	case ErrAlgorithmNameOutOfBounds:
		return fmt.Sprintf("%s: ends at %v (header size: %d)", e.Err, e.Value, HeaderSize)
	case ErrUnrecognizedAlgorithm:
		return fmt.Sprintf("%s: %q", e.Err, e.Value)
	case ErrInvalidUTF8:
		return fmt.Sprintf("%s: % x", e.Err, e.Value)
	}

	return fmt.Sprintf("%s: found %v at offset %d", e.Err, e.Value, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError checks whether err (or any error in its chain) is a DecodeError
func IsDecodeError(err error) bool {
	var de *DecodeError

	return errors.As(err, &de)
}
