package strings

import (
	"testing"

	kit "dataproc/internal/platform/testkit"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"Bad payload", "Processing failed"}, "Bad payload"},
		{[]string{"", "  ", "Processing failed"}, "Processing failed"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FirstNonEmpty(tt.in...); got != tt.want {
			t.Fatalf("FirstNonEmpty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("x", "name"); got != "x" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { MustString("   ", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"session":      "/session",
		"/session/":    "/session",
		"  /meta  ":    "/meta",
		"/submissions": "/submissions",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"abcdefgh", 2, "ab****gh"},
		{"abcd", 2, "****"},
		{"", 3, ""},
		{"secret", 0, "******"},
	}
	for _, tt := range tests {
		if got := Mask(tt.in, tt.n); got != tt.want {
			t.Fatalf("Mask(%q,%d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
