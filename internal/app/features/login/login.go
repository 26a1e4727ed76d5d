// internal/app/features/login/login.go
package login

import (
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/yelpcamp/internal/app/store/users"
	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
	"github.com/dalemusser/yelpcamp/internal/app/system/inputval"
	"github.com/dalemusser/yelpcamp/internal/app/system/navigation"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.uber.org/zap"
)

// ServeLogin renders the login form. Signed-in callers go straight on.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := navigation.SafeBackURL(r, navigation.AfterLogin)
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, ret, http.StatusSeeOther)
		return
	}
	h.Render.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/campgrounds"),
		ReturnURL: ret,
	})
}

// HandleLoginPost checks credentials, writes the session and redirects to the
// safe return URL.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	in := credentialsInput{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
	ret := navigation.SafeBackURL(r, navigation.AfterLogin)

	renderWithError := func(status int, msg string) {
		data := loginFormData{
			BaseVM:    viewdata.NewBaseVM(r, "Login", "/campgrounds"),
			Username:  in.Username,
			ReturnURL: ret,
		}
		data.SetError(msg)
		viewdata.StatusRenderer(h.Render, status).Render(w, r, "login", data)
	}

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, in.Username); !ok {
			h.Log.Warn("login rate limited", zap.String("username", in.Username))
			renderWithError(http.StatusTooManyRequests, reason)
			return
		}
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(http.StatusUnprocessableEntity, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login")
	defer cancel()

	u, err := h.Accounts.Authenticate(ctx, in.Username, in.Password)
	if errors.Is(err, userstore.ErrInvalidCredentials) {
		renderWithError(http.StatusUnauthorized, "Invalid username or password.")
		return
	}
	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err))
		renderWithError(http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetUser(in.Username)
	}
	h.signInAndRedirect(w, r, u, ret)
}

func (h *Handler) signInAndRedirect(w http.ResponseWriter, r *http.Request, u models.User, ret string) {
	if err := h.SessionMgr.SignIn(w, r, auth.SessionUser{ID: u.ID.Hex(), Name: u.Username}); err != nil {
		h.Errors.ServerError(w, r, "failed to save session", err, zap.String("user_id", u.ID.Hex()))
		return
	}
	h.Log.Info("user signed in", zap.String("user_id", u.ID.Hex()), zap.String("username", u.Username))
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
