// internal/app/features/login/register.go
package login

import (
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/yelpcamp/internal/app/store/users"
	"github.com/dalemusser/yelpcamp/internal/app/system/inputval"
	"github.com/dalemusser/yelpcamp/internal/app/system/navigation"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ServeRegister renders the sign-up form.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	h.Render.Render(w, r, "register", registerFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign Up", "/campgrounds"),
		ReturnURL: navigation.SafeBackURL(r, navigation.AfterLogin),
	})
}

// HandleRegisterPost creates the account and signs it in.
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	in := registerInput{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Confirm:  r.FormValue("confirm"),
	}
	ret := navigation.SafeBackURL(r, navigation.AfterLogin)

	renderWithError := func(status int, msg string) {
		data := registerFormData{
			BaseVM:    viewdata.NewBaseVM(r, "Sign Up", "/campgrounds"),
			Username:  in.Username,
			ReturnURL: ret,
		}
		data.SetError(msg)
		viewdata.StatusRenderer(h.Render, status).Render(w, r, "register", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		renderWithError(http.StatusUnprocessableEntity, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "register")
	defer cancel()

	u, err := h.Accounts.Create(ctx, in.Username, in.Password)
	if errors.Is(err, userstore.ErrDuplicateUsername) {
		renderWithError(http.StatusConflict, "That username is already taken.")
		return
	}
	if err != nil {
		h.Log.Error("register failed", zap.String("username", in.Username), zap.Error(err))
		renderWithError(http.StatusInternalServerError, "Database error while creating your account.")
		return
	}

	h.Log.Info("user registered", zap.String("user_id", u.ID.Hex()), zap.String("username", u.Username))
	h.signInAndRedirect(w, r, u, ret)
}
