// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

// Routes mounts /login.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)
	return r
}

// RegisterRoutes mounts /register.
func RegisterRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRegister)
	r.Post("/", h.HandleRegisterPost)
	return r
}

// LogoutRoutes mounts /logout. GET is accepted for plain links.
func LogoutRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleLogout)
	r.Get("/", h.HandleLogout)
	return r
}
