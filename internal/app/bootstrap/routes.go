// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	campgroundsfeature "github.com/dalemusser/yelpcamp/internal/app/features/campgrounds"
	errorsfeature "github.com/dalemusser/yelpcamp/internal/app/features/errors"
	healthfeature "github.com/dalemusser/yelpcamp/internal/app/features/health"
	homefeature "github.com/dalemusser/yelpcamp/internal/app/features/home"
	loginfeature "github.com/dalemusser/yelpcamp/internal/app/features/login"
	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	userstore "github.com/dalemusser/yelpcamp/internal/app/store/users"
	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
	"github.com/dalemusser/yelpcamp/internal/app/system/methodoverride"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. YelpCamp boots the template engine,
// installs the method override and session middleware, and mounts the
// landing page, campgrounds, authentication, health and static assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)

	// Re-read the user on each request so a deleted account is signed out
	// and a renamed one shows its new name.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(users))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	rd := viewdata.TemplateRenderer{}
	pages := errorsfeature.NewPages(rd, logger)

	r := chi.NewRouter()

	// Forms tunnel PUT/PATCH/DELETE through POST; rewrite before routing.
	r.Use(methodoverride.Middleware)
	// Loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	r.NotFound(pages.NotFoundHandler)
	r.MethodNotAllowed(pages.MethodNotAllowedHandler)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(rd, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	cgHandler := campgroundsfeature.NewHandler(campgroundstore.New(deps.MongoDatabase), rd, pages, logger)
	r.Mount("/campgrounds", campgroundsfeature.Routes(cgHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(users, sessionMgr, deps.LoginLimiter, rd, pages, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))
	r.Mount("/register", loginfeature.RegisterRoutes(loginHandler))
	r.Mount("/logout", loginfeature.LogoutRoutes(loginHandler))

	return r, nil
}
