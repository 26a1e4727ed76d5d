package inputval

import (
	"strings"
	"testing"
)

type campgroundInput struct {
	Name        string `validate:"notblank,max=200" label:"Name"`
	Image       string `validate:"required,http_url,max=2048" label:"Image URL"`
	Description string `validate:"max=5000" label:"Description"`
}

func TestValidate_OK(t *testing.T) {
	res := Validate(campgroundInput{Name: "Tent Valley", Image: "https://example.com/a.jpg"})
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Messages())
	}
	if res.First() != "" {
		t.Errorf("First() = %q, want empty", res.First())
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name  string
		in    campgroundInput
		field string
		want  string
	}{
		{"missing name", campgroundInput{Image: "http://x.io/a.jpg"}, "Name", "Name is required."},
		{"blank name", campgroundInput{Name: "   ", Image: "http://x.io/a.jpg"}, "Name", "Name is required."},
		{"long name", campgroundInput{Name: strings.Repeat("a", 201), Image: "http://x.io/a.jpg"}, "Name", "Name must be at most 200 characters."},
		{"missing image", campgroundInput{Name: "A"}, "Image", "Image URL is required."},
		{"ftp image", campgroundInput{Name: "A", Image: "ftp://x.io/a.jpg"}, "Image", "Image URL must be a valid http or https URL."},
		{"relative image", campgroundInput{Name: "A", Image: "/a.jpg"}, "Image", "Image URL must be a valid http or https URL."},
		{"long description", campgroundInput{Name: "A", Image: "http://x.io/a.jpg", Description: strings.Repeat("d", 5001)}, "Description", "Description must be at most 5000 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.in)
			if !res.HasErrors() {
				t.Fatal("expected errors")
			}
			if got := res.For(tt.field); got != tt.want {
				t.Errorf("For(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestValidate_PointerAndOrder(t *testing.T) {
	res := Validate(&campgroundInput{})
	if len(res.Errors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(res.Errors), res.Messages())
	}
	if res.First() != "Name is required." {
		t.Errorf("First() = %q", res.First())
	}
	if res.Errors[1].Label != "Image URL" {
		t.Errorf("second label = %q", res.Errors[1].Label)
	}
}
