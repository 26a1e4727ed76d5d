// internal/app/features/login/handler.go
package login

import (
	"context"

	uierrors "github.com/dalemusser/yelpcamp/internal/app/features/errors"
	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
	"github.com/dalemusser/yelpcamp/internal/app/system/ratelimit"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.uber.org/zap"
)

// Accounts is the user persistence login needs; userstore.Store satisfies it.
type Accounts interface {
	Create(ctx context.Context, username, password string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// Handler serves /login, /register and /logout.
type Handler struct {
	Accounts   Accounts
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter
	Render     viewdata.Renderer
	Errors     *uierrors.Pages
	Log        *zap.Logger
}

func NewHandler(accounts Accounts, sm *auth.SessionManager, limiter *ratelimit.LoginLimiter,
	rd viewdata.Renderer, pages *uierrors.Pages, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Accounts:   accounts,
		SessionMgr: sm,
		Limiter:    limiter,
		Render:     rd,
		Errors:     pages,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Username  string
	ReturnURL string
}

type registerFormData struct {
	viewdata.BaseVM
	Username  string
	ReturnURL string
}

// credentialsInput is shared by login and register.
type credentialsInput struct {
	Username string `validate:"notblank,max=64" label:"Username"`
	Password string `validate:"required,max=72" label:"Password"`
}

// registerInput adds the rules a new account must meet.
type registerInput struct {
	Username string `validate:"notblank,min=3,max=64" label:"Username"`
	Password string `validate:"required,min=8,max=72" label:"Password"`
	Confirm  string `validate:"eqfield=Password" label:"Password confirmation"`
}
