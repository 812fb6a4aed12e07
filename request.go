package fget

import (
	"fmt"
	"net/url"
)

// Request describes a single download: the source URL and, when the
// caller asked for one, an explicit name for the local copy.
type Request struct {
	URL    *url.URL
	Output string
}

// NewRequest validates rawURL and builds a Request. The URL must be
// absolute, use the http or https scheme, and name a host; anything
// else fails with ErrInvalidURL before any network activity happens.
// output may be empty, in which case the filename is derived from the
// URL at resolve time.
func NewRequest(rawURL, output string) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q is not an http or https URL", ErrInvalidURL, rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}
	return &Request{URL: u, Output: output}, nil
}
