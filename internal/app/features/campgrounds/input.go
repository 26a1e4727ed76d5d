// internal/app/features/campgrounds/input.go
package campgrounds

import (
	"net/http"
	"strings"

	"github.com/dalemusser/yelpcamp/internal/app/system/inputval"
)

// campgroundInput is validated with struct tags; labels feed the messages.
type campgroundInput struct {
	Name        string `validate:"notblank,max=200" label:"Name"`
	Image       string `validate:"required,http_url,max=2048" label:"Image URL"`
	Description string `validate:"max=5000" label:"Description"`
}

// readCreateInput reads the flat fields the new form posts.
func readCreateInput(r *http.Request) campgroundInput {
	return campgroundInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Image:       strings.TrimSpace(r.FormValue("image")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
}

// readUpdateInput reads the nested campground[...] fields the edit form
// posts, falling back to the flat names.
func readUpdateInput(r *http.Request) campgroundInput {
	_ = r.ParseForm()
	field := func(name string) string {
		if v, ok := r.Form["campground["+name+"]"]; ok && len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return strings.TrimSpace(r.FormValue(name))
	}
	return campgroundInput{
		Name:        field("name"),
		Image:       field("image"),
		Description: field("description"),
	}
}

// validate checks the input. Descriptions are stored as entered; the show
// page sanitizes them on the way out, so the edit form round-trips exactly.
func (in campgroundInput) validate() (campgroundInput, inputval.Result) {
	return in, inputval.Validate(in)
}
