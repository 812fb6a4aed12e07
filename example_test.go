package fget_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/canhlinh/fget"
)

// Example downloads a small document from a test server into a
// temporary directory.
func Example() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello world")
	}))
	defer srv.Close()

	dir, err := os.MkdirTemp("", "fget")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	req, err := fget.NewRequest(srv.URL+"/greeting.txt", filepath.Join(dir, "greeting.txt"))
	if err != nil {
		fmt.Println(err)
		return
	}

	n, err := fget.NewDownloader().Download(req, req.Resolve())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("downloaded %d bytes\n", n)
	// Output: downloaded 11 bytes
}
