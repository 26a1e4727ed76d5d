// internal/app/features/campgrounds/delete.go
package campgrounds

import (
	"net/http"

	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete removes the campground and always lands on the index; a
// failure is visible only in the logs.
// Authorization: gates.SignedIn, h.Owner in routes.go.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sl := chi.URLParam(r, "slug")
	if cg, ok := ownedCampground(r); ok {
		sl = cg.Slug
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "campground delete")
	defer cancel()

	if err := h.Store.DeleteBySlug(ctx, sl); err != nil {
		h.Log.Error("campground delete failed", zap.String("slug", sl), zap.Error(err))
	} else {
		h.Log.Info("campground deleted", zap.String("slug", sl))
	}

	http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
}
