// Package http exposes the submission pipeline over the console API
package http

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"dataproc/internal/core/encoder"
	"dataproc/internal/modkit/httpkit"
	perr "dataproc/internal/platform/errors"
	"dataproc/internal/platform/logger"
	"dataproc/internal/services/submit/domain"
)

// Submitter is what the handlers need from the submission service
type Submitter interface {
	Submit(ctx context.Context, token string, req domain.Request) (domain.Outcome, error)
	Display() domain.Display
	State() domain.State
	Submitting() bool
}

// Deps are the handler dependencies
type Deps struct {
	Service Submitter
	// Tokens may be nil, submissions then go out unauthenticated
	Tokens domain.TokenSource
	// MaxMemory is the multipart in-memory threshold, larger parts spill to disk
	MaxMemory int64
	// MaxBody bounds the JSON submission body, 0 means 32MB
	MaxBody int64
}

type handlers struct {
	deps Deps
}

// Register mounts the submission routes
func Register(r httpkit.Router, d Deps) {
	if d.MaxMemory <= 0 {
		d.MaxMemory = 8 << 20
	}
	if d.MaxBody <= 0 {
		d.MaxBody = 32 << 20
	}
	h := &handlers{deps: d}

	httpkit.Post(r, "/", h.multipart)
	httpkit.PostJSONWith(r, "/json", httpkit.JSONOptions{MaxBytes: d.MaxBody}, h.jsonBody)
	httpkit.Get(r, "/last", h.last)
	httpkit.Get(r, "/state", h.state)
}

// FileRef is an attachment already read by the browser
type FileRef struct {
	Name     string `json:"name"      validate:"max=255"          example:"photo.png"`
	MIMEType string `json:"mime_type" validate:"max=255"          example:"image/png"`
	DataURL  string `json:"data_url"  validate:"required"         example:"data:image/png;base64,iVBORw0KGgo="`
}

// JSONSubmission is the body of POST /submissions/json
type JSONSubmission struct {
	JSON string   `json:"json" example:"{\"data\":[\"A\",\"C\",\"z\"]}"`
	File *FileRef `json:"file,omitempty"`
}

// StateResponse is the pipeline state
type StateResponse struct {
	State      domain.State `json:"state"      swaggertype:"string" example:"idle"`
	Submitting bool         `json:"submitting" example:"false"`
}

// swagger:route POST /submissions Submissions submitMultipart
// @Summary Submit JSON text with an optional file
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Param json formData string true "JSON object text"
// @Param file formData file false "attachment"
// @Success 200 {object} domain.Outcome
// @Failure 400 {object} httpkit.Envelope "Invalid JSON format"
// @Failure 409 {object} httpkit.Envelope "submission in progress"
// @Failure 422 {object} httpkit.Envelope "Failed to process file"
// @Failure 502 {object} httpkit.Envelope "server supplied message"
// @Failure 503 {object} httpkit.Envelope "Unable to reach processing service"
// @Router /submissions [post]
func (h *handlers) multipart(r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(h.deps.MaxMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "upload exceeds %d bytes", tooBig.Limit)
		}
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "expected a multipart form")
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req := domain.Request{JSON: r.FormValue("json")}
	f, fh, err := r.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		req.File = unreadable(uploadName(r), err)
	default:
		defer func() { _ = f.Close() }()
		att, err := attachment(f, fh)
		if err != nil {
			att = unreadable(fh.Filename, err)
		}
		req.File = att
	}
	return h.submit(r.Context(), req)
}

// swagger:route POST /submissions/json Submissions submitJSON
// @Summary Submit JSON text with an optional data URL attachment
// @Tags Submissions
// @Accept json
// @Produce json
// @Param body body JSONSubmission true "submission"
// @Success 200 {object} domain.Outcome
// @Failure 400 {object} httpkit.Envelope "Invalid JSON format"
// @Failure 409 {object} httpkit.Envelope "submission in progress"
// @Failure 502 {object} httpkit.Envelope "server supplied message"
// @Router /submissions/json [post]
func (h *handlers) jsonBody(r *http.Request, in JSONSubmission) (any, error) {
	req := domain.Request{JSON: in.JSON}
	if in.File != nil {
		req.File = &domain.Attachment{
			Name:     in.File.Name,
			MIMEType: in.File.MIMEType,
			DataURL:  in.File.DataURL,
		}
		if req.File.MIMEType == "" {
			req.File.MIMEType = dataURLType(in.File.DataURL)
		}
	}
	return h.submit(r.Context(), req)
}

// swagger:route GET /submissions/last Submissions submitLast
// @Summary What the console displays: current result and last outcome
// @Tags Submissions
// @Produce json
// @Success 200 {object} domain.Display
// @Router /submissions/last [get]
func (h *handlers) last(_ *http.Request) (any, error) {
	return h.deps.Service.Display(), nil
}

// swagger:route GET /submissions/state Submissions submitState
// @Summary Pipeline state
// @Tags Submissions
// @Produce json
// @Success 200 {object} StateResponse
// @Router /submissions/state [get]
func (h *handlers) state(_ *http.Request) (any, error) {
	return StateResponse{State: h.deps.Service.State(), Submitting: h.deps.Service.Submitting()}, nil
}

func (h *handlers) submit(ctx context.Context, req domain.Request) (any, error) {
	token := ""
	if h.deps.Tokens != nil {
		token, _ = h.deps.Tokens.Token(ctx)
	}
	out, err := h.deps.Service.Submit(ctx, token, req)
	if err == nil {
		return out, nil
	}
	var se *domain.SubmitError
	if errors.As(err, &se) {
		return nil, se.Coded()
	}
	return nil, err
}

func attachment(f multipart.File, fh *multipart.FileHeader) (*domain.Attachment, error) {
	mime, err := encoder.SniffMIME(f, fh.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	logger.Named("submit.http").Debug().Str("file", fh.Filename).Str("mime", mime).Int64("bytes", fh.Size).Msg("upload received")
	return &domain.Attachment{
		Name:     fh.Filename,
		MIMEType: mime,
		Size:     fh.Size,
		Reader:   f,
	}, nil
}

// unreadable stands in for an upload that could not be opened. The pipeline
// reads it after validation and reports FileProcessingError like any bad file.
func unreadable(name string, err error) *domain.Attachment {
	return &domain.Attachment{Name: name, Reader: failingReader{err}}
}

func uploadName(r *http.Request) string {
	if r.MultipartForm != nil {
		if fhs := r.MultipartForm.File["file"]; len(fhs) > 0 {
			return fhs[0].Filename
		}
	}
	return ""
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// dataURLType pulls the media type out of "data:<type>;base64,..."
func dataURLType(u string) string {
	rest, ok := strings.CutPrefix(u, "data:")
	if !ok {
		return ""
	}
	meta, _, _ := strings.Cut(rest, ",")
	mt, _, _ := strings.Cut(meta, ";")
	return mt
}
