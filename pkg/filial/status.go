package filial

import (
	"errors"

	"filialstore/pkg/persistence"
)

// Integer status codes, the return contract consumers of the original
// filiais module branch on. StatusCode maps any error from this package
// onto them.
const (
	StatusOK             = 0
	StatusFileNotFound   = 30
	StatusInvalidFormat  = 31
	StatusWriteError     = 32
	StatusFilialNotFound = 33
	StatusUnknownError   = 34
	StatusBairroNotFound = 35
)

// Business-rule sentinels. ErrDuplicateID and ErrUnknownID both map to
// StatusUnknownError to keep the published code table stable, but remain
// distinct errors so callers can tell them apart with errors.Is.
var (
	ErrFilialNotFound = errors.New("filial not found")
	ErrBairroNotFound = errors.New("bairro not found")
	ErrDuplicateID    = errors.New("filial id already exists")
	ErrUnknownID      = errors.New("no filial with given id")
)

// StatusCode converts an operation error into the integer status contract.
// Anything unrecognized collapses to StatusUnknownError.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, persistence.ErrFileNotFound):
		return StatusFileNotFound
	case errors.Is(err, persistence.ErrInvalidFormat):
		return StatusInvalidFormat
	case errors.Is(err, persistence.ErrWriteFailed):
		return StatusWriteError
	case errors.Is(err, ErrFilialNotFound):
		return StatusFilialNotFound
	case errors.Is(err, ErrBairroNotFound):
		return StatusBairroNotFound
	default:
		return StatusUnknownError
	}
}
