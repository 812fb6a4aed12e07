package fget

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL reports a download URL that is not an absolute
	// http or https URL. It is raised before any network activity.
	ErrInvalidURL = errors.New("invalid download URL")
)

// StatusError is returned when the server answers with a status code
// outside the 2xx range. No destination file exists when it occurs.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to download: HTTP %s", e.Status)
}

// RequestError is returned on a transport-level failure: DNS
// resolution, connecting, TLS negotiation, or a response body that
// breaks off mid-transfer.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// FileError is returned when the destination file cannot be created,
// written, or closed.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("write failed: %v", e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
