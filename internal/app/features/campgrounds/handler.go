// internal/app/features/campgrounds/handler.go
package campgrounds

import (
	"context"

	uierrors "github.com/dalemusser/yelpcamp/internal/app/features/errors"
	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.uber.org/zap"
)

// Store is the persistence the campgrounds controller needs. The Mongo
// implementation is campgroundstore.Store; tests supply an in-memory one.
// Implementations return campgroundstore.ErrNotFound for a missing slug.
type Store interface {
	List(ctx context.Context) ([]models.Campground, error)
	Create(ctx context.Context, cg models.Campground) (models.Campground, error)
	GetBySlug(ctx context.Context, slug string) (models.Campground, error)
	GetBySlugWithComments(ctx context.Context, slug string) (models.CampgroundWithComments, error)
	Update(ctx context.Context, slug string, upd models.CampgroundUpdate) (models.Campground, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

// Handler is the feature-level entry point for Campgrounds. It holds no
// per-request state.
type Handler struct {
	Store  Store
	Render viewdata.Renderer
	Errors *uierrors.Pages
	Log    *zap.Logger
}

// NewHandler constructs a Campgrounds handler.
func NewHandler(store Store, rd viewdata.Renderer, pages *uierrors.Pages, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Store:  store,
		Render: rd,
		Errors: pages,
		Log:    logger,
	}
}
