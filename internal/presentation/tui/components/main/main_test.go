package mainview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender_HeadingAboveBody(t *testing.T) {
	got := Render(Props{Width: 100, Height: 50, Heading: "HEADING", Body: "BODY"})

	if !strings.Contains(got, "HEADING") || !strings.Contains(got, "BODY") {
		t.Fatalf("Render() = %q, want heading and body", got)
	}
	if strings.Index(got, "HEADING") > strings.Index(got, "BODY") {
		t.Error("heading should come before body")
	}
	if h := lipgloss.Height(got); h != 50 {
		t.Errorf("height = %d, want 50", h)
	}
}

func TestRender_BodyOnly(t *testing.T) {
	got := Render(Props{Body: "Loading..."})
	if strings.TrimSpace(got) != "Loading..." {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_ClipsToHeight(t *testing.T) {
	body := strings.Repeat("line\n", 20) + "LAST"
	got := Render(Props{Height: 5, Body: body})

	if h := lipgloss.Height(got); h != 5 {
		t.Errorf("height = %d, want 5", h)
	}
	if strings.Contains(got, "LAST") {
		t.Error("rows beyond the height should be clipped")
	}
}
