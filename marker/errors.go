package marker

import (
	"errors"
	"fmt"
)

var (
	// ErrIO matches every *IOError.
	ErrIO = errors.New("marker i/o failure")
	// ErrEncoding matches every *EncodingError.
	ErrEncoding = errors.New("marker encoding failure")
	// ErrInvalidOptions is wrapped by Options validation failures.
	ErrInvalidOptions = errors.New("invalid marker options")
)

// IOError reports a failure creating the output directory or writing the file.
type IOError struct {
	Op   string // "mkdir", "write", "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match any *IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// EncodingError reports that the canvas could not be serialized as PNG.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return "encode png: " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }
