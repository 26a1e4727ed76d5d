// internal/app/features/campgrounds/edit.go
package campgrounds

import (
	"errors"
	"net/http"

	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.uber.org/zap"
)

// ServeEdit renders the edit form pre-filled from the campground the Owner
// gate loaded.
// Authorization: gates.SignedIn, h.Owner in routes.go.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	cg, ok := ownedCampground(r)
	if !ok {
		h.Errors.ServerError(w, r, "edit reached without owner gate", errors.New("no campground in context"))
		return
	}

	h.Render.Render(w, r, "campgrounds_edit", formData{
		BaseVM:      viewdata.NewBaseVM(r, "Edit "+cg.Name, "/campgrounds/"+cg.Slug),
		Slug:        cg.Slug,
		Name:        cg.Name,
		Image:       cg.Image,
		Description: cg.Description,
	})
}

// HandleUpdate rewrites name, description and image, then redirects to the
// campground. Invalid input re-renders the form with 422; a store failure is
// logged and sends the caller back to the index.
// Authorization: gates.SignedIn, h.Owner in routes.go.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	cg, ok := ownedCampground(r)
	if !ok {
		h.Errors.ServerError(w, r, "update reached without owner gate", errors.New("no campground in context"))
		return
	}

	in, res := readUpdateInput(r).validate()
	if res.HasErrors() {
		data := formData{
			BaseVM:      viewdata.NewBaseVM(r, "Edit "+cg.Name, "/campgrounds/"+cg.Slug),
			Slug:        cg.Slug,
			Name:        in.Name,
			Image:       in.Image,
			Description: in.Description,
		}
		data.SetError(res.First())
		viewdata.StatusRenderer(h.Render, http.StatusUnprocessableEntity).Render(w, r, "campgrounds_edit", data)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "campground update")
	defer cancel()

	updated, err := h.Store.Update(ctx, cg.Slug, models.CampgroundUpdate{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
	})
	if err != nil {
		level := h.Log.Error
		if errors.Is(err, campgroundstore.ErrNotFound) {
			// Deleted between the owner check and the write.
			level = h.Log.Warn
		}
		level("campground update failed", zap.String("slug", cg.Slug), zap.Error(err))
		http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/campgrounds/"+updated.Slug, http.StatusSeeOther)
}
