package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	perr "dataproc/internal/platform/errors"
)

func TestParseObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		keys    []string
		wantErr error
		anyErr  bool
	}{
		{name: "object", in: `{"data":["A","C","z"]}`, keys: []string{"data"}},
		{name: "whitespace", in: "  \n{ \"b\":1, \"a\":2 }\t", keys: []string{"b", "a"}},
		{name: "empty object", in: `{}`, keys: []string{}},
		{name: "duplicate keeps position", in: `{"a":1,"b":2,"a":3}`, keys: []string{"a", "b"}},
		{name: "array", in: `["a"]`, wantErr: ErrNotObject},
		{name: "scalar", in: `42`, wantErr: ErrNotObject},
		{name: "null", in: `null`, wantErr: ErrNotObject},
		{name: "trailing value", in: `{} {}`, wantErr: ErrTrailingData},
		{name: "trailing garbage", in: `{"a":1} x`, anyErr: true},
		{name: "empty", in: ``, anyErr: true},
		{name: "broken", in: `{"a":`, anyErr: true},
		{name: "single quotes", in: `{'a':1}`, anyErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseObject(tt.in)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.anyErr:
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.Join(p.Keys(), ","); got != strings.Join(tt.keys, ",") {
				t.Fatalf("keys = %q, want %q", got, tt.keys)
			}
		})
	}
}

func TestParseObject_DuplicateLastWins(t *testing.T) {
	p, err := ParseObject(`{"a":1,"a":{"x":true}}`)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := p.Get("a")
	if string(v) != `{"x":true}` {
		t.Fatalf("a = %s", v)
	}
}

func TestPayload_WithFile(t *testing.T) {
	tests := []struct {
		name, in, file, want string
	}{
		{"no file", `{"data":["A","C","z"]}`, "", `{"data":["A","C","z"],"file_b64":""}`},
		{"with file", `{"data":[]}`, "aGVsbG8=", `{"data":[],"file_b64":"aGVsbG8="}`},
		{"user key overwritten in place", `{"file_b64":"mine","x":1}`, "", `{"file_b64":"","x":1}`},
		{"numbers keep literal form", `{"n":1.50,"big":12345678901234567890}`, "", `{"n":1.50,"big":12345678901234567890,"file_b64":""}`},
		{"pretty input compacted", "{\n  \"a\": [ 1, 2 ]\n}", "", `{"a":[1,2],"file_b64":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseObject(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			b, err := json.Marshal(p.WithFile(tt.file))
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Fatalf("got %s, want %s", b, tt.want)
			}
			if _, ok := p.Get(FileKey); ok && tt.name != "user key overwritten in place" {
				t.Fatalf("WithFile mutated the original")
			}
		})
	}
}

func TestPayload_ZeroValue(t *testing.T) {
	var p Payload
	p.SetString("k", "v")
	b, _ := json.Marshal(p)
	if string(b) != `{"k":"v"}` || p.Len() != 1 {
		t.Fatalf("got %s", b)
	}
	b, _ = json.Marshal(Payload{})
	if string(b) != `{}` {
		t.Fatalf("empty = %s", b)
	}
}

func TestDecodeResult(t *testing.T) {
	body := `{"is_success":true,"user_id":"john_doe_17091999","email":"john@xyz.com","roll_number":"ABCD123",
		"numbers":["1","334","4"],"alphabets":["M","B","z"],"highest_lowercase_alphabet":["z"],
		"is_prime_found":false,"file_valid":true,"file_mime_type":"image/png","file_size_kb":"400","extra":1}`
	r, err := DecodeResult([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsSuccess || r.UserID != "john_doe_17091999" || len(r.Numbers) != 3 || r.HighestLowercaseAlphabet[0] != "z" {
		t.Fatalf("unexpected %+v", r)
	}
	if !r.ShowFileInfo() || r.FileValidity() != "Valid" || r.FileSize() != "400 KB" {
		t.Fatalf("file info: %v %q %q", r.ShowFileInfo(), r.FileValidity(), r.FileSize())
	}
	if kb, ok := r.FileSizeKB.KB(); !ok || kb != 400 {
		t.Fatalf("KB = %v %v", kb, ok)
	}

	if _, err := DecodeResult([]byte("  ")); err == nil {
		t.Fatalf("empty body should fail")
	}
	if _, err := DecodeResult([]byte(`{"numbers":"x"}`)); err == nil {
		t.Fatalf("wrong shape should fail")
	}
}

func TestFileSizeKB_NumberForm(t *testing.T) {
	r, err := DecodeResult([]byte(`{"file_size_kb":12.5,"file_valid":false}`))
	if err != nil {
		t.Fatal(err)
	}
	if r.FileSize() != "12.5 KB" || r.ShowFileInfo() || r.FileValidity() != "Invalid" {
		t.Fatalf("got %q %v %q", r.FileSize(), r.ShowFileInfo(), r.FileValidity())
	}
	b, _ := json.Marshal(r.FileSizeKB)
	if string(b) != `"12.5"` {
		t.Fatalf("marshal = %s", b)
	}
}

func TestShowFileInfo_MIMEOnly(t *testing.T) {
	r := ProcessedResult{FileMIMEType: "text/plain"}
	if !r.ShowFileInfo() || r.FileValidity() != "" || r.FileSize() != "" {
		t.Fatalf("mime only should show the section")
	}
	if (ProcessedResult{}).ShowFileInfo() {
		t.Fatalf("nothing set should hide the section")
	}
}

func TestKindMapping(t *testing.T) {
	tests := []struct {
		kind Kind
		msg  string
		code perr.ErrorCode
		http int
	}{
		{KindInvalidInputFormat, "Invalid JSON format", perr.ErrorCodeJSON, 400},
		{KindFileProcessingError, "Failed to process file", perr.ErrorCodeInvalidArgument, 422},
		{KindNetworkError, "Unable to reach processing service", perr.ErrorCodeUnavailable, 503},
		{KindServiceError, "Processing failed", perr.ErrorCodeUpstream, 502},
	}
	for _, tt := range tests {
		e := NewSubmitError(tt.kind, "", 0, nil)
		if e.Message != tt.msg || tt.kind.Code() != tt.code {
			t.Fatalf("%v: %q %v", tt.kind, e.Message, tt.kind.Code())
		}
		coded := e.Coded()
		if perr.HTTPStatus(coded) != tt.http {
			t.Fatalf("%v http = %d", tt.kind, perr.HTTPStatus(coded))
		}
		if pe, ok := perr.As(coded); !ok || pe.Message() != tt.msg {
			t.Fatalf("%v coded message lost", tt.kind)
		}
		if KindOf(e) != tt.kind {
			t.Fatalf("KindOf mismatch")
		}
	}
	if KindOf(errors.New("x")) != 0 || Kind(99).String() != "Unknown" {
		t.Fatalf("unknown kind handling")
	}
	if perr.HTTPStatus(ErrInFlight) != 409 {
		t.Fatalf("ErrInFlight should be 409")
	}
}

func TestSubmitError_Wraps(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	e := NewSubmitError(KindNetworkError, "", 0, cause)
	if !errors.Is(e, cause) || !strings.Contains(e.Error(), "refused") {
		t.Fatalf("cause not wrapped: %v", e)
	}
	if !errors.Is(e.Coded(), cause) {
		t.Fatalf("coded error lost the cause")
	}
}

func TestParseDisplayPolicy(t *testing.T) {
	if ParseDisplayPolicy("KEEP") != KeepOnFailure || ParseDisplayPolicy("clear") != ClearOnFailure || ParseDisplayPolicy("") != ClearOnFailure {
		t.Fatalf("policy parsing")
	}
	if KeepOnFailure.String() != "keep" || StateDispatching.String() != "dispatching" || State(42).String() != "unknown" {
		t.Fatalf("names")
	}
}
