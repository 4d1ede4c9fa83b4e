package generator

import (
	"errors"
	"fmt"
)

var (
	ErrConnectivity = errors.New("cannot connect to RPC")
	ErrNoAccounts   = errors.New("no accounts returned by node")
)

// PersistenceError wraps a failure creating the output directory or writing a file.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("write %s: %s", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
