package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/yelpcamp/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	in := "A quiet spot by the river."
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	in := "<p><strong>Shady</strong> and <em>quiet</em></p>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	in := `<img src="x" onerror="alert(1)">`
	if got := htmlsanitize.Sanitize(in); strings.Contains(got, "onerror") {
		t.Errorf("expected onerror removed, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	in := `<a href="javascript:alert('xss')">Click</a>`
	if got := htmlsanitize.Sanitize(in); strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestSanitize_LinksGetNofollow(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://example.com">site</a>`)
	if !strings.Contains(got, "https://example.com") || !strings.Contains(got, "nofollow") {
		t.Errorf("expected link kept with nofollow, got %q", got)
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	in := "<ul><li>Water</li><li>Firewood</li></ul>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected list preserved, got %q", got)
	}
}

func TestSanitize_AllowsTextFormatting(t *testing.T) {
	in := "<u>underline</u> <s>strike</s> <mark>mark</mark>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected formatting preserved, got %q", got)
	}
}

func TestSanitize_RemovesIframe(t *testing.T) {
	got := htmlsanitize.Sanitize(`<p>Content</p><iframe src="https://evil.com"></iframe>`)
	if strings.Contains(got, "iframe") {
		t.Error("expected iframe removed")
	}
	if !strings.Contains(got, "Content") {
		t.Error("expected safe content preserved")
	}
}

func TestSanitizeToHTML(t *testing.T) {
	got := htmlsanitize.SanitizeToHTML("<p>Hello</p><script>x</script>")
	if got != template.HTML("<p>Hello</p>") {
		t.Errorf("got %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"Hello", true},
		{"5 < 10", true},
		{"5 > 3", true},
		{"Depth is 2 < d > 1 metres & cold", true},
		{"a <3 b > c", true},
		{"<p>Hello</p>", false},
		{"text then </b>", false},
		{"<!-- note -->", false},
	}
	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.in); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello", "<p>Hello</p>"},
		{"Line 1\nLine 2", "<p>Line 1<br>Line 2</p>"},
		{"Line 1\r\nLine 2", "<p>Line 1<br>Line 2</p>"},
		{"A & B", "<p>A &amp; B</p>"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.PlainTextToHTML(tt.in); got != tt.want {
			t.Errorf("PlainTextToHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrepareForDisplay(t *testing.T) {
	if got := htmlsanitize.PrepareForDisplay(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := htmlsanitize.PrepareForDisplay("Flat\nsites"); got != template.HTML("<p>Flat<br>sites</p>") {
		t.Errorf("plain text: got %q", got)
	}
	got := htmlsanitize.PrepareForDisplay("<p>ok</p><script>bad()</script>")
	if got != template.HTML("<p>ok</p>") {
		t.Errorf("markup: got %q", got)
	}
}

func TestPrepareForDisplay_AngleBracketsInText(t *testing.T) {
	got := htmlsanitize.PrepareForDisplay("Depth is 2 < d > 1 metres & cold")
	want := template.HTML("<p>Depth is 2 &lt; d &gt; 1 metres &amp; cold</p>")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fish & chips", "Fish & chips"},
		{"2 < 3", "2 < 3"},
		{"<p>Fish &amp; <b>chips</b></p><script>x()</script>", "Fish & chips"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.ToText(tt.in); got != tt.want {
			t.Errorf("ToText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
