// internal/app/features/campgrounds/list.go
package campgrounds

import (
	"net/http"

	"github.com/dalemusser/yelpcamp/internal/app/system/htmlsanitize"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
)

const summaryLen = 140

// ServeList renders every campground, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "campgrounds list")
	defer cancel()

	cgs, err := h.Store.List(ctx)
	if err != nil {
		h.Errors.ServerError(w, r, "failed to list campgrounds", err)
		return
	}

	rows := make([]campgroundRow, 0, len(cgs))
	for _, cg := range cgs {
		rows = append(rows, toRow(cg))
	}

	h.Render.Render(w, r, "campgrounds_index", listData{
		BaseVM:      viewdata.NewBaseVM(r, "Campgrounds", "/"),
		Campgrounds: rows,
	})
}

func toRow(cg models.Campground) campgroundRow {
	return campgroundRow{
		Slug:    cg.Slug,
		Name:    cg.Name,
		Image:   cg.Image,
		Summary: summarize(htmlsanitize.ToText(cg.Description)),
		Author:  cg.Author.Username,
	}
}

// summarize cuts s to summaryLen runes on a word boundary where possible.
func summarize(s string) string {
	rs := []rune(s)
	if len(rs) <= summaryLen {
		return s
	}
	cut := summaryLen
	for i := summaryLen; i > summaryLen/2; i-- {
		if rs[i] == ' ' {
			cut = i
			break
		}
	}
	return string(rs[:cut]) + "…"
}
