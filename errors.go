package idxgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/idxgo/bimap"
)

var (
	// ErrInvalidSnapshot is returned when snapshot bytes are malformed or
	// carry an unsupported version.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnknownCodec is returned when a snapshot names a codec that is
	// neither built in nor supplied via WithCodec.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrUnknownCompression is returned when a snapshot carries an
	// unsupported compression type.
	ErrUnknownCompression = errors.New("unknown compression")
)

// ErrDimensionMismatch indicates input of the wrong dimensionality: a
// selection constructed from a non-1-D array, or a converter called with an
// array whose ndim does not equal the number of selections.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrAxisSizeMismatch indicates that an array axis length does not equal
// the size of the selection supplied for that axis.
type ErrAxisSizeMismatch struct {
	Axis          int
	AxisLen       int
	SelectionSize int
}

func (e *ErrAxisSizeMismatch) Error() string {
	return fmt.Sprintf("axis %d has length %d, selection has size %d", e.Axis, e.AxisLen, e.SelectionSize)
}

// ErrKeyNotFound indicates that a lookup referenced a key absent from the
// selection it was looked up in.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrKeyNotFound struct {
	Key   any
	cause error
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

func (e *ErrKeyNotFound) Unwrap() error { return e.cause }

// translateError lifts bimap errors into the package vocabulary. Duplicate
// errors pass through unchanged: bimap's types already carry the offending
// key or position.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var nf *bimap.ErrNotFound
	if errors.As(err, &nf) {
		return &ErrKeyNotFound{Key: nf.Key, cause: err}
	}
	return err
}
