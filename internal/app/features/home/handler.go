package home

import (
	"net/http"

	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Render viewdata.Renderer
	Log    *zap.Logger
}

func NewHandler(rd viewdata.Renderer, logger *zap.Logger) *Handler {
	if rd == nil {
		rd = viewdata.TemplateRenderer{}
	}
	return &Handler{
		Render: rd,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
	}

	h.Render.Render(w, r, "landing", data)
}
