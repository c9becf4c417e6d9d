package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dataproc/internal/adapters/bfhl"
	"dataproc/internal/core/encoder"
	"dataproc/internal/platform/logger"
	notify "dataproc/internal/services/notify/service"
	session "dataproc/internal/services/session/service"
	"dataproc/internal/services/submit/domain"
	submit "dataproc/internal/services/submit/service"
)

// errReported marks a failure the user has already been shown
var errReported = errors.New("reported")

type submitFlags struct {
	json     string
	jsonFile string
	file     string
	mime     string
}

func newSubmitCommand(ctx *commandContext) *cobra.Command {
	var f submitFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send a JSON object and an optional file for processing",
		Example: `  dataproc submit --json '{"data":["A","C","z"]}'
  dataproc submit --json-file input.json --file report.pdf
  echo '{"data":["1","b"]}' | dataproc submit --json-file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), f)
			if err != nil {
				return err
			}
			return ctx.withSession(func(sess *session.Service, client *bfhl.Client) error {
				return runSubmit(cmd, sess, client, raw, f)
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.json, "json", "", "JSON object to submit")
	fl.StringVar(&f.jsonFile, "json-file", "", "Read the JSON object from a file, - for stdin")
	fl.StringVarP(&f.file, "file", "f", "", "Attach a file")
	fl.StringVar(&f.mime, "mime", "", "MIME type of the attachment (detected when omitted)")
	cmd.MarkFlagsMutuallyExclusive("json", "json-file")
	cmd.MarkFlagsOneRequired("json", "json-file")
	return cmd
}

// readInput returns the raw JSON text exactly as given; parsing is the pipeline's job
func readInput(stdin io.Reader, f submitFlags) (string, error) {
	switch {
	case f.jsonFile == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	case f.jsonFile != "":
		b, err := os.ReadFile(f.jsonFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", f.jsonFile, err)
		}
		return string(b), nil
	default:
		return f.json, nil
	}
}

func runSubmit(cmd *cobra.Command, sess *session.Service, client *bfhl.Client, raw string, f submitFlags) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	notes := notify.New(1, func(n notify.Notification) {
		switch n.Level {
		case notify.LevelSuccess:
			fmt.Fprintf(out, "✓ %s\n", n.Message)
		default:
			fmt.Fprintf(errOut, "✗ %s\n", n.Message)
		}
	})
	log := logger.Named("cli")
	svc := submit.New(client, notes, submit.Options{
		OnTransition: func(tr domain.Transition) {
			log.Debug().Str("submission_id", tr.SubmissionID).
				Str("from", tr.From.String()).Str("to", tr.To.String()).Msg("submission state")
		},
	})

	req := domain.Request{JSON: raw}
	if f.file != "" {
		att, closeFn, err := openAttachment(f.file, f.mime)
		if err != nil {
			// an unreadable file goes through the pipeline so it is reported like any other failure
			att = &domain.Attachment{Name: filepath.Base(f.file), Reader: failingReader{err}}
			closeFn = func() {}
		}
		defer closeFn()
		req.File = att
		if err == nil {
			fmt.Fprintf(out, "Attaching %s (%s, %s)\n", att.Name, formatBytes(att.Size), dash(att.MIMEType))
		}
	}

	token, _ := sess.Token(cmd.Context())
	res, err := svc.Submit(cmd.Context(), token, req)
	if err != nil {
		var se *domain.SubmitError
		if errors.As(err, &se) {
			retryHint(errOut, se.Coded())
			return errReported
		}
		return err
	}

	if res.Result != nil {
		fmt.Fprint(out, renderResult(*res.Result))
	}
	fmt.Fprintf(out, "%s in %s (submission %s)\n", stateLabel(res.State), res.Elapsed.Round(time.Millisecond), res.SubmissionID)
	return nil
}

// openAttachment opens path and settles its MIME type: the flag wins, otherwise it is sniffed
func openAttachment(path, declared string) (*domain.Attachment, func(), error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		_ = fh.Close()
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}
	mime, err := encoder.SniffMIME(fh, strings.TrimSpace(declared))
	if err != nil {
		_ = fh.Close()
		return nil, nil, err
	}
	att := &domain.Attachment{
		Name:     filepath.Base(path),
		MIMEType: mime,
		Size:     info.Size(),
		Reader:   fh,
	}
	return att, func() { _ = fh.Close() }, nil
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
