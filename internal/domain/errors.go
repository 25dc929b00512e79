package domain

import "errors"

// Sentinel errors for collection fetches
var (
	// ErrRequestFailed indicates a transport failure or a non-2xx response
	ErrRequestFailed = errors.New("request failed")

	// ErrSchemaMismatch indicates a response body that does not match the collection schema
	ErrSchemaMismatch = errors.New("response does not match schema")
)
