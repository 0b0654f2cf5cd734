package domain

import "errors"

// Failure kinds understood by the HTTP error mapping. Lower layers wrap these so a
// single errors.Is check classifies any failure.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrDataStore       = errors.New("data store failure")
	ErrTokenMismatch   = errors.New("session token mismatch")
	ErrUnauthenticated = errors.New("unauthenticated")
)
