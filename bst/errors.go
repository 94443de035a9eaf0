package bst

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is matched by errors.Is for any error returned from Insert.
var ErrDuplicateKey = errors.New("bst: duplicate key")

// DuplicateKeyError reports an Insert of a value that is already present.
type DuplicateKeyError struct {
	Value int32
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("bst: duplicate key %d", e.Value)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}
