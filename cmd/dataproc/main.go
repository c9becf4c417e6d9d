package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	perr "dataproc/internal/platform/errors"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(cmd.ErrOrStderr(), err)
		}
		os.Exit(1)
	}
}

// reportError prints err for a person. Failures already shown as a
// notification are not repeated.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errReported) {
		return
	}
	e, ok := perr.As(err)
	switch {
	case !ok:
		fmt.Fprintf(w, "Error: %v\n", err)
	case e.Field() != "":
		fmt.Fprintf(w, "Error: %s (%s)\n", e.Message(), e.Field())
	default:
		fmt.Fprintf(w, "Error: %s\n", e.Message())
	}
	retryHint(w, err)
}

// retryHint suggests running the command again when the failure looks transient
func retryHint(w io.Writer, err error) {
	if perr.Retryable(err) {
		fmt.Fprintln(w, "Hint: the service could not be reached, try again shortly")
	}
}
