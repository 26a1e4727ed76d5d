// internal/app/features/campgrounds/templates.go
package campgrounds

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "campgrounds",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
