// internal/app/features/login/logout.go
package login

import (
	"net/http"

	"go.uber.org/zap"
)

// HandleLogout clears the session and goes back to the campground index.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}

	// HTMX: force a full client-side navigation.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/campgrounds")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
}
