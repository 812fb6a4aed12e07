package fget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req, err := NewRequest("https://example.com/file.txt", "")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "https", req.URL.Scheme)
	assert.Equal(t, "example.com", req.URL.Host)
	assert.Equal(t, "/file.txt", req.URL.Path)
	assert.Empty(t, req.Output)
}

func TestNewRequestKeepsOutputName(t *testing.T) {
	req, err := NewRequest("http://example.com/archive.zip", "custom.bin")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "custom.bin", req.Output)
}

func TestNewRequestRejectsBadURLs(t *testing.T) {
	cases := []struct {
		name   string
		rawURL string
	}{
		{"empty", ""},
		{"relative", "not_a_valid_url"},
		{"scheme relative", "//example.com/file.txt"},
		{"ftp scheme", "ftp://example.com/file.txt"},
		{"mailto scheme", "mailto:user@example.com"},
		{"no host", "http:///file.txt"},
		{"control character", "http://example.com/\nfile.txt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewRequest(tc.rawURL, "")
			assert.Nil(t, req)
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}
