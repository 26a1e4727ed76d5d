// internal/app/features/campgrounds/routes.go
package campgrounds

import (
	"github.com/dalemusser/yelpcamp/internal/app/system/gates"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the campground routes under the base path
// (typically "/campgrounds" from bootstrap). PUT and DELETE arrive from HTML
// forms as POST with _method, rewritten by methodoverride before routing.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// INDEX / CREATE / NEW
	r.Get("/", h.ServeList)
	r.Post("/", gates.Chain(h.HandleCreate, gates.SignedIn))
	r.Get("/new", gates.Chain(h.ServeNew, gates.SignedIn))

	// SHOW / EDIT / UPDATE / DESTROY
	r.Get("/{slug}", h.ServeShow)
	r.Get("/{slug}/edit", gates.Chain(h.ServeEdit, gates.SignedIn, h.Owner))
	r.Put("/{slug}", gates.Chain(h.HandleUpdate, gates.SignedIn, h.Owner))
	r.Patch("/{slug}", gates.Chain(h.HandleUpdate, gates.SignedIn, h.Owner))
	r.Delete("/{slug}", gates.Chain(h.HandleDelete, gates.SignedIn, h.Owner))

	return r
}
