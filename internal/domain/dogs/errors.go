package dogs

import (
	"errors"
	"fmt"
)

// ErrStorage es el único tipo de falla que expone el registry.
// Se usa con errors.Is; el error concreto es *StorageError.
var ErrStorage = errors.New("storage failure")

// StorageError envuelve el error del backend (I/O, lock, conexión).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("dogs %s: storage failure", e.Op)
	}
	return fmt.Sprintf("dogs %s: storage failure: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
