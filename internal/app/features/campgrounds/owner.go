// internal/app/features/campgrounds/owner.go
package campgrounds

import (
	"context"
	"errors"
	"net/http"

	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	"github.com/dalemusser/yelpcamp/internal/app/system/authz"
	"github.com/dalemusser/yelpcamp/internal/app/system/slug"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ctxKey struct{}

// Owner is a gates.Gate that passes only when the signed-in caller authored
// the campground named by {slug}. It must follow gates.SignedIn. The loaded
// record travels on the request context (see ownedCampground), so handlers
// behind it do not read it again.
func (h *Handler) Owner(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	sl := chi.URLParam(r, "slug")
	if !slug.Valid(sl) {
		h.Errors.NotFound(w, r, "Campground not found.", "/campgrounds")
		return nil, false
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "campground owner check")
	defer cancel()

	cg, err := h.Store.GetBySlug(ctx, sl)
	if errors.Is(err, campgroundstore.ErrNotFound) {
		h.Errors.NotFound(w, r, "Campground not found.", "/campgrounds")
		return nil, false
	}
	if err != nil {
		h.Errors.ServerError(w, r, "failed to load campground for ownership check", err, zap.String("slug", sl))
		return nil, false
	}

	if !authz.OwnsCampground(r, cg) {
		_, uid, _ := authz.UserCtx(r)
		h.Log.Info("campground ownership denied",
			zap.String("slug", sl),
			zap.String("user", uid.Hex()),
			zap.String("method", r.Method))
		h.Errors.Forbidden(w, r, "You don't have permission to change this campground.", "/campgrounds/"+sl)
		return nil, false
	}

	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, cg)), true
}

// ownedCampground returns the record attached by Owner.
func ownedCampground(r *http.Request) (models.Campground, bool) {
	cg, ok := r.Context().Value(ctxKey{}).(models.Campground)
	return cg, ok
}
