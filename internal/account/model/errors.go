package model

import "errors"

var (
	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = errors.New("account not found")
)
