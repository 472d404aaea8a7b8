package textutil

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSingleLine(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"plain":                   "plain",
		"  many \n lines\t here ": "many lines here",
	}
	for in, want := range tests {
		if got := SingleLine(in); got != want {
			t.Errorf("SingleLine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 0); got != "" {
		t.Errorf("Truncate width 0 = %q, want empty", got)
	}
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate short = %q", got)
	}
	got := Truncate("hello world", 8)
	if ansi.StringWidth(got) > 8 || !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate long = %q", got)
	}
}

func TestHyperlink(t *testing.T) {
	got := Hyperlink("https://x", "Read more")
	if !strings.Contains(got, "Read more") || !strings.Contains(got, "https://x") {
		t.Fatalf("Hyperlink() = %q", got)
	}
	if ansi.Strip(got) != "Read more" {
		t.Errorf("visible text = %q, want %q", ansi.Strip(got), "Read more")
	}
	if Hyperlink("", "Read more") != "Read more" {
		t.Error("empty url should render the bare label")
	}
}

func TestSanitize(t *testing.T) {
	tests := map[string]string{
		"plain":                    "plain",
		"A\x1b[2J\x1b]0;pwned\x07": "A",
		"bell\x07 and nul\x00":     "bell and nul",
		"\x1b]8;;https://evil\x1b\\click\x1b]8;;\x1b\\": "click",
		"line\nbreak\ttab": "line break tab",
	}
	for in, want := range tests {
		got := Sanitize(in)
		if got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
		if strings.ContainsRune(got, '\x1b') {
			t.Errorf("Sanitize(%q) kept an escape: %q", in, got)
		}
	}
}

func TestSingleLine_StripsEscapes(t *testing.T) {
	if got := SingleLine(" A\x1b[31m red \x1b[0m\n"); got != "A red" {
		t.Errorf("SingleLine() = %q, want %q", got, "A red")
	}
}

func TestIsWebURL(t *testing.T) {
	tests := map[string]bool{
		"https://techxplore.com/news/a.html": true,
		"http://localhost:8080/x":            true,
		"":                                   false,
		"javascript:alert(1)":                false,
		"file:///etc/passwd":                 false,
		"/relative/path":                     false,
		"https://x/\x1b\\evil":               false,
		"https://x/a b":                      false,
	}
	for in, want := range tests {
		if got := IsWebURL(in); got != want {
			t.Errorf("IsWebURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestHyperlink_RejectsNonWebLinks(t *testing.T) {
	for _, link := range []string{"file:///etc/passwd", "https://x\x1b\\\x1b]8;;https://evil\x1b\\"} {
		if got := Hyperlink(link, "Read more"); got != "Read more" {
			t.Errorf("Hyperlink(%q) = %q, want bare label", link, got)
		}
	}
}
