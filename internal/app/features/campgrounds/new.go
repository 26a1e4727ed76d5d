// internal/app/features/campgrounds/new.go
package campgrounds

import (
	"errors"
	"net/http"

	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
	"github.com/dalemusser/yelpcamp/internal/app/system/authz"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.uber.org/zap"
)

// ServeNew renders the empty "New Campground" form.
// Authorization: gates.SignedIn in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.Render.Render(w, r, "campgrounds_new", formData{
		BaseVM: viewdata.NewBaseVM(r, "New Campground", "/campgrounds"),
	})
}

// HandleCreate validates the form, stores the campground with the caller as
// author and redirects to the index.
// Authorization: gates.SignedIn in routes.go.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	author, ok := authz.Author(r)
	if !ok {
		auth.Challenge(w, r)
		return
	}

	in := readCreateInput(r)

	renderWithError := func(status int, msg string) {
		data := formData{
			BaseVM:      viewdata.NewBaseVM(r, "New Campground", "/campgrounds"),
			Name:        in.Name,
			Image:       in.Image,
			Description: in.Description,
		}
		data.SetError(msg)
		viewdata.StatusRenderer(h.Render, status).Render(w, r, "campgrounds_new", data)
	}

	in, res := in.validate()
	if res.HasErrors() {
		renderWithError(http.StatusUnprocessableEntity, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "campground create")
	defer cancel()

	created, err := h.Store.Create(ctx, models.Campground{
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
		Author:      author,
	})
	if err != nil {
		h.Log.Error("campground create failed",
			zap.String("name", in.Name),
			zap.String("author", author.ID.Hex()),
			zap.Error(err))
		if errors.Is(err, campgroundstore.ErrSlugExhausted) {
			renderWithError(http.StatusConflict, "Too many campgrounds already use that name. Please choose another.")
			return
		}
		renderWithError(http.StatusInternalServerError, "Database error while creating campground.")
		return
	}

	h.Log.Info("campground created",
		zap.String("slug", created.Slug),
		zap.String("author", author.Username))
	http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
}
