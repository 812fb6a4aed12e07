// fget fetches a single file over HTTP and writes it to local
// storage, wget style: fget [-O FILE] <URL>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/canhlinh/fget"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	pb "gopkg.in/cheggaaa/pb.v1"
)

const usageLine = "fget [-O FILE] <URL>"

// Exit codes follow the wget convention: a distinct code per failure
// category.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitFile    = 3
	exitNetwork = 4
	exitStatus  = 8
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).Run(args); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgRed).Sprint("fget:"), err)
		return exitCode(err)
	}
	return exitOK
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "fget",
		Usage:     "download a file from a URL",
		ArgsUsage: "<URL>",
		Version:   "1.0.0",
		Writer:    stdout,
		ErrWriter: stderr,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return &usageError{err: err}
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"O"},
				Usage:   "write the document to `FILE` instead of deriving a name from the URL",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return &usageError{err: errors.New("missing URL")}
			}
			if c.NArg() > 1 {
				return &usageError{err: fmt.Errorf("unexpected argument %q", c.Args().Get(1))}
			}

			req, err := fget.NewRequest(c.Args().First(), c.String("output"))
			if err != nil {
				return err
			}
			target := req.Resolve()

			fmt.Fprintf(stdout, "Downloading: %s\n", req.URL)
			n, err := fget.NewDownloader().Download(req, target)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "%s %s (%s)\n",
				color.New(color.FgGreen).Sprint("Downloaded:"),
				target.Path,
				pb.Format(n).To(pb.U_BYTES).String())
			return nil
		},
	}
}

// usageError wraps bad-argv problems so they exit with exitUsage and
// always name the expected usage form.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%v (usage: %s)", e.err, usageLine)
}

func (e *usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var (
		usageErr  *usageError
		statusErr *fget.StatusError
		fileErr   *fget.FileError
		reqErr    *fget.RequestError
	)
	switch {
	case errors.As(err, &usageErr), errors.Is(err, fget.ErrInvalidURL):
		return exitUsage
	case errors.As(err, &statusErr):
		return exitStatus
	case errors.As(err, &fileErr):
		return exitFile
	case errors.As(err, &reqErr):
		return exitNetwork
	}
	return exitFailure
}
