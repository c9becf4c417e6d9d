package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " dataproc ")
	t.Setenv("LOG_FORMAT", " JSON ")

	log := New().Prefix("LOG_")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"trimmed", log.Get("SERVICE", "x"), "dataproc"},
		{"missing default", log.Get("MISSING", "defv"), "defv"},
		{"lowered", log.GetLower("FORMAT", "console"), "json"},
		{"lowered default", log.GetLower("NOPE", "Console"), "console"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("DP_")
	t.Setenv("DP_T1", "true")
	t.Setenv("DP_T2", "1")
	t.Setenv("DP_T3", " YES ")
	t.Setenv("DP_T4", "on")
	t.Setenv("DP_F1", "false")
	t.Setenv("DP_F2", "nope")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"T4", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"MISSING", true, true},
		{"MISSING", false, false},
	}
	for _, tt := range tests {
		if got := c.GetBool(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tt.key, tt.def, got, tt.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("DP_")
	t.Setenv("DP_OK", "42")
	t.Setenv("DP_WS", "  7  ")
	t.Setenv("DP_BAD", "12x")
	t.Setenv("DP_NEG", "-5")

	tests := []struct {
		key       string
		def, want int
	}{
		{"OK", 0, 42},
		{"WS", 1, 7},
		{"BAD", 9, 9},
		{"NEG", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		if got := c.GetInt(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestPrefixComposition(t *testing.T) {
	root := New()
	console := root.Prefix("CONSOLE_")
	nested := console.Prefix("LOG_")

	t.Setenv("CONSOLE_PORT", ":4000")
	t.Setenv("CONSOLE_LOG_MODE", "console")

	if got := console.Get("PORT", ""); got != ":4000" {
		t.Fatalf("CONSOLE_PORT = %q", got)
	}
	if got := nested.Get("MODE", ""); got != "console" {
		t.Fatalf("CONSOLE_LOG_MODE = %q", got)
	}
}
