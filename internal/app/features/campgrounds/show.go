// internal/app/features/campgrounds/show.go
package campgrounds

import (
	"errors"
	"net/http"

	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	"github.com/dalemusser/yelpcamp/internal/app/system/authz"
	"github.com/dalemusser/yelpcamp/internal/app/system/htmlsanitize"
	"github.com/dalemusser/yelpcamp/internal/app/system/slug"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeShow renders one campground with its comments in order.
func (h *Handler) ServeShow(w http.ResponseWriter, r *http.Request) {
	sl := chi.URLParam(r, "slug")
	if !slug.Valid(sl) {
		h.Errors.NotFound(w, r, "Campground not found.", "/campgrounds")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "campground show")
	defer cancel()

	cg, err := h.Store.GetBySlugWithComments(ctx, sl)
	if errors.Is(err, campgroundstore.ErrNotFound) {
		h.Errors.NotFound(w, r, "Campground not found.", "/campgrounds")
		return
	}
	if err != nil {
		h.Errors.ServerError(w, r, "failed to load campground", err, zap.String("slug", sl))
		return
	}

	comments := make([]commentRow, 0, len(cg.CommentDocs))
	for _, c := range cg.CommentDocs {
		comments = append(comments, commentRow{
			Text:      c.Text,
			Author:    c.Author.Username,
			CreatedAt: c.CreatedAt,
		})
	}

	h.Render.Render(w, r, "campgrounds_show", showData{
		BaseVM:      viewdata.NewBaseVM(r, cg.Name, "/campgrounds"),
		Slug:        cg.Slug,
		Name:        cg.Name,
		Image:       cg.Image,
		Description: htmlsanitize.PrepareForDisplay(cg.Description),
		Author:      cg.Author.Username,
		CreatedAt:   cg.CreatedAt,
		CanManage:   authz.OwnsCampground(r, cg.Campground),
		Comments:    comments,
	})
}
