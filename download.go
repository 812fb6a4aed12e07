// Package fget downloads single files over HTTP to local storage.
//
// The flow is deliberately small: validate the URL (NewRequest),
// resolve the destination name (Request.Resolve), then stream the
// body with exactly one GET (Downloader.Download). Every failure is
// terminal and leaves no partial file behind.
package fget

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/spf13/afero"
)

// Downloader performs single-shot HTTP downloads.
type Downloader struct {
	Client *http.Client
	Fs     afero.Fs
}

// NewDownloader returns a Downloader backed by a zero-value HTTP
// client and the operating system filesystem. Redirects and TLS
// follow the transport defaults and no request timeout is set.
func NewDownloader() *Downloader {
	return &Downloader{
		Client: &http.Client{},
		Fs:     afero.NewOsFs(),
	}
}

// Download issues one GET for req and streams the response body to
// target.Path, overwriting any existing file there. It returns the
// number of bytes written.
//
// A non-2xx status fails with *StatusError before the destination is
// opened, so no file is created for an error response. If the copy or
// the final close fails after the file was created, the partial file
// is removed before the error is returned.
func (d *Downloader) Download(req *Request, target Target) (int64, error) {
	slog.Debug("starting download", "url", req.URL.String(), "dest", target.Path)

	res, err := d.Client.Get(req.URL.String())
	if err != nil {
		return 0, &RequestError{URL: req.URL.String(), Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, &StatusError{Code: res.StatusCode, Status: res.Status}
	}

	out, err := d.Fs.Create(target.Path)
	if err != nil {
		return 0, &FileError{Path: target.Path, Err: err}
	}

	n, err := io.Copy(out, res.Body)
	if err != nil {
		out.Close()
		d.Fs.Remove(target.Path)
		return 0, copyError(req, target, err)
	}

	if err := out.Close(); err != nil {
		d.Fs.Remove(target.Path)
		return 0, &FileError{Path: target.Path, Err: err}
	}

	slog.Debug("download complete", "dest", target.Path, "bytes", n)
	return n, nil
}

// copyError classifies a failure in the middle of the body copy:
// write-side errors surface as *FileError, everything else (short
// body, reset connection) as *RequestError.
func copyError(req *Request, target Target, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &FileError{Path: target.Path, Err: err}
	}
	return &RequestError{URL: req.URL.String(), Err: err}
}
