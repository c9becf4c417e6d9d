package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "dataproc/internal/platform/errors"
	phttp "dataproc/internal/platform/net/http"
	"dataproc/internal/services/submit/domain"
	"dataproc/internal/services/submit/service"
)

type fakeSubmitter struct {
	token string
	req   domain.Request
	body  []byte
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, token string, req domain.Request) (domain.Outcome, error) {
	f.token, f.req = token, req
	if req.File != nil && req.File.Reader != nil {
		f.body, _ = io.ReadAll(req.File.Reader)
	}
	if f.err != nil {
		return domain.Outcome{State: domain.StateFailed}, f.err
	}
	return domain.Outcome{SubmissionID: "s-1", State: domain.StateSucceeded, Message: domain.MsgSuccess}, nil
}

func (f *fakeSubmitter) Display() domain.Display { return domain.Display{State: domain.StateIdle} }
func (f *fakeSubmitter) State() domain.State     { return domain.StateIdle }
func (f *fakeSubmitter) Submitting() bool        { return false }

type tokens string

func (t tokens) Token(context.Context) (string, bool) { return string(t), t != "" }

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

func serve(t *testing.T, f *fakeSubmitter, req *http.Request) (int, envelope) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{Service: f, Tokens: tokens("tok")})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var e envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, e
}

func multipartReq(t *testing.T, jsonText string, fileName, fileType string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("json", jsonText)
	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		if fileType != "" {
			h.Set("Content-Type", fileType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = part.Write(file)
	}
	_ = w.Close()
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestMultipart_JSONOnly(t *testing.T) {
	f := &fakeSubmitter{}
	code, e := serve(t, f, multipartReq(t, `{"data":["A","C","z"]}`, "", "", nil))
	if code != http.StatusOK {
		t.Fatalf("code = %d %+v", code, e)
	}
	if f.token != "tok" || f.req.JSON != `{"data":["A","C","z"]}` || f.req.File != nil {
		t.Fatalf("submitted %q %+v", f.token, f.req)
	}
}

func TestMultipart_FileSniffedWhenUntyped(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 24)...)
	f := &fakeSubmitter{}
	code, _ := serve(t, f, multipartReq(t, `{}`, "x.png", "application/octet-stream", png))
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	att := f.req.File
	if att == nil || att.Name != "x.png" || att.MIMEType != "image/png" || att.Size != int64(len(png)) {
		t.Fatalf("attachment = %+v", att)
	}
	if !bytes.Equal(f.body, png) {
		t.Fatalf("attachment bytes differ")
	}
}

func TestMultipart_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if code, _ := serve(t, &fakeSubmitter{}, req); code != http.StatusBadRequest {
		t.Fatalf("code = %d", code)
	}
}

func TestSubmit_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid json", domain.NewSubmitError(domain.KindInvalidInputFormat, "", 0, domain.ErrNotObject), http.StatusBadRequest, domain.MsgInvalidJSON},
		{"file", domain.NewSubmitError(domain.KindFileProcessingError, "", 0, nil), http.StatusUnprocessableEntity, domain.MsgFileProcessing},
		{"network", domain.NewSubmitError(domain.KindNetworkError, "", 0, perr.Unavailablef("dial")), http.StatusServiceUnavailable, domain.MsgNetwork},
		{"service", domain.NewSubmitError(domain.KindServiceError, "roll_number missing", 422, nil), http.StatusBadGateway, "roll_number missing"},
		{"in flight", domain.ErrInFlight, http.StatusConflict, "a submission is already in progress"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeSubmitter{err: tc.err}
			req := httptest.NewRequest(http.MethodPost, "/json", bytes.NewBufferString(`{"json":"{}"}`))
			code, e := serve(t, f, req)
			if code != tc.code || e.Error != tc.msg {
				t.Fatalf("got %d %q, want %d %q", code, e.Error, tc.code, tc.msg)
			}
		})
	}
}

func TestJSONBody_DataURL(t *testing.T) {
	f := &fakeSubmitter{}
	body := `{"json":"{\"data\":[]}","file":{"name":"a.txt","data_url":"data:text/plain;base64,aGk="}}`
	code, _ := serve(t, f, httptest.NewRequest(http.MethodPost, "/json", bytes.NewBufferString(body)))
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	if f.req.File == nil || f.req.File.DataURL != "data:text/plain;base64,aGk=" || f.req.File.MIMEType != "text/plain" {
		t.Fatalf("attachment = %+v", f.req.File)
	}

	code, e := serve(t, &fakeSubmitter{}, httptest.NewRequest(http.MethodPost, "/json", bytes.NewBufferString(`{"json":"{}","file":{"name":"a"}}`)))
	if code != http.StatusBadRequest || e.Field != "data_url" {
		t.Fatalf("missing data_url: %d %+v", code, e)
	}
}

func TestReadEndpoints(t *testing.T) {
	code, e := serve(t, &fakeSubmitter{}, httptest.NewRequest(http.MethodGet, "/state", nil))
	if code != http.StatusOK || string(e.Data) != `{"state":"idle","submitting":false}` {
		t.Fatalf("state = %d %s", code, e.Data)
	}
	code, e = serve(t, &fakeSubmitter{}, httptest.NewRequest(http.MethodGet, "/last", nil))
	if code != http.StatusOK || string(e.Data) != `{"state":"idle","submitting":false}` {
		t.Fatalf("last = %d %s", code, e.Data)
	}
}

func TestDataURLType(t *testing.T) {
	for in, want := range map[string]string{
		"data:image/png;base64,xx": "image/png",
		"data:;base64,xx":          "",
		"aGk=":                     "",
	} {
		if got := dataURLType(in); got != want {
			t.Fatalf("dataURLType(%q) = %q, want %q", in, got, want)
		}
	}
}

type countingDispatcher struct{ calls int }

func (d *countingDispatcher) Process(context.Context, string, any) (json.RawMessage, error) {
	d.calls++
	return json.RawMessage(`{"is_success":true}`), nil
}

type failures struct{ msgs []string }

func (n *failures) Success(context.Context, string) {}
func (n *failures) Failure(_ context.Context, msg string, _ error) {
	n.msgs = append(n.msgs, msg)
}

func TestUnreadableUpload_GoesThroughPipeline(t *testing.T) {
	cases := []struct {
		name     string
		json     string
		wantKind domain.Kind
		wantMsg  string
	}{
		{"valid json", `{"data":[]}`, domain.KindFileProcessingError, domain.MsgFileProcessing},
		{"invalid json is reported first", `{"data": [`, domain.KindInvalidInputFormat, domain.MsgInvalidJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &countingDispatcher{}
			notes := &failures{}
			svc := service.New(d, notes, service.Options{})

			req := domain.Request{JSON: tc.json, File: unreadable("scan.pdf", errors.New("part truncated"))}
			_, err := svc.Submit(context.Background(), "", req)
			if got := domain.KindOf(err); got != tc.wantKind {
				t.Fatalf("kind = %v, want %v (err %v)", got, tc.wantKind, err)
			}
			if d.calls != 0 {
				t.Fatalf("dispatched %d times", d.calls)
			}
			if len(notes.msgs) != 1 || notes.msgs[0] != tc.wantMsg {
				t.Fatalf("notifications = %v", notes.msgs)
			}
			last := svc.Display().Last
			if last == nil || last.Kind != tc.wantKind || !last.FileAttached {
				t.Fatalf("last outcome = %+v", last)
			}
		})
	}
}

func TestUploadName(t *testing.T) {
	req := multipartReq(t, `{}`, "scan.pdf", "application/pdf", []byte("%PDF-1.4"))
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := uploadName(req); got != "scan.pdf" {
		t.Fatalf("uploadName = %q", got)
	}
	if got := uploadName(httptest.NewRequest(http.MethodPost, "/", nil)); got != "" {
		t.Fatalf("uploadName without form = %q", got)
	}
}
