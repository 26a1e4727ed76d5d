package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Tent Valley", "tent-valley"},
		{"  Tent   Valley  ", "tent-valley"},
		{"Salmon Creek!!", "salmon-creek"},
		{"Café Élan", "cafe-elan"},
		{"Granite Hill #2", "granite-hill-2"},
		{"Mountain--Goat's Rest", "mountain-goat-s-rest"},
		{"UPPER case", "upper-case"},
		{"", Fallback},
		{"!!!", Fallback},
		{"日本", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.name)
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.name, got, tt.want)
			}
			if !Valid(got) {
				t.Errorf("Make(%q) = %q is not a valid slug", tt.name, got)
			}
		})
	}
}

func TestMake_TruncatesLongNames(t *testing.T) {
	got := Make(strings.Repeat("ab ", 100))
	if len(got) > MaxLen {
		t.Errorf("len = %d, want <= %d", len(got), MaxLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("slug %q ends with a hyphen", got)
	}
}

func TestCandidate(t *testing.T) {
	tests := []struct {
		attempt int
		want    string
	}{
		{0, "tent-valley"},
		{1, "tent-valley"},
		{2, "tent-valley-2"},
		{10, "tent-valley-10"},
	}
	for _, tt := range tests {
		if got := Candidate("tent-valley", tt.attempt); got != tt.want {
			t.Errorf("Candidate(%d) = %q, want %q", tt.attempt, got, tt.want)
		}
	}
}

func TestCandidate_ReservedBase(t *testing.T) {
	if got := Make("New"); got != "new" {
		t.Fatalf("Make(New) = %q, want new", got)
	}
	tests := []struct {
		attempt int
		want    string
	}{
		{1, "new-2"},
		{2, "new-3"},
	}
	for _, tt := range tests {
		got := Candidate("new", tt.attempt)
		if got != tt.want {
			t.Errorf("Candidate(new, %d) = %q, want %q", tt.attempt, got, tt.want)
		}
		if Reserved(got) {
			t.Errorf("Candidate(new, %d) = %q is reserved", tt.attempt, got)
		}
	}
	if Candidate("newt", 1) != "newt" {
		t.Errorf("only exact reserved segments are skipped")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"tent-valley", true},
		{"tent-valley-2", true},
		{"a", true},
		{"", false},
		{"-tent", false},
		{"tent-", false},
		{"tent--valley", false},
		{"Tent-Valley", false},
		{"tent valley", false},
		{"tent/valley", false},
		{"new", false},
		{"new-2", true},
		{strings.Repeat("a", 200), false},
	}
	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
