package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	commentstore "github.com/dalemusser/yelpcamp/internal/app/store/comments"
	userstore "github.com/dalemusser/yelpcamp/internal/app/store/users"
	"github.com/dalemusser/yelpcamp/internal/app/system/indexes"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// seededCollections are dropped by --drop.
var seededCollections = []string{campgroundstore.Collection, commentstore.Collection, userstore.Collection}

// Seeder loads a SeedFile into a database through the regular stores, so
// slugs, password hashing and comment linking behave as they do in the app.
type Seeder struct {
	DB    *mongo.Database
	Users *userstore.Store
	Log   *zap.Logger
	Drop  bool
}

// SeedResult counts what was written. TotalCampgrounds is the collection
// size afterwards, including records from earlier runs.
type SeedResult struct {
	Users            int
	ExistingUsers    int
	Campgrounds      int
	Comments         int
	Slugs            []string
	TotalCampgrounds int64
}

func NewSeeder(db *mongo.Database, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{DB: db, Users: userstore.New(db), Log: logger}
}

// Run applies sf. Users that already exist are reused, not overwritten.
func (s *Seeder) Run(ctx context.Context, sf SeedFile) (SeedResult, error) {
	var res SeedResult

	if s.Drop {
		for _, name := range seededCollections {
			if err := s.DB.Collection(name).Drop(ctx); err != nil {
				return res, fmt.Errorf("drop %s: %w", name, err)
			}
			s.Log.Info("dropped collection", zap.String("collection", name))
		}
	}
	if err := indexes.EnsureAll(ctx, s.DB); err != nil {
		return res, fmt.Errorf("ensure indexes: %w", err)
	}

	authors := make(map[string]models.Author, len(sf.Users))
	for _, su := range sf.Users {
		name := strings.TrimSpace(su.Username)
		u, err := s.Users.Create(ctx, name, su.Password)
		switch {
		case err == nil:
			res.Users++
		case errors.Is(err, userstore.ErrDuplicateUsername):
			u, err = s.Users.GetByUsername(ctx, name)
			if err != nil {
				return res, fmt.Errorf("load existing user %q: %w", name, err)
			}
			res.ExistingUsers++
		default:
			return res, fmt.Errorf("create user %q: %w", name, err)
		}
		authors[name] = u.AsAuthor()
	}

	cgStore := campgroundstore.New(s.DB)
	cmStore := commentstore.New(s.DB)
	for _, sc := range sf.Campgrounds {
		cg, err := cgStore.Create(ctx, models.Campground{
			Name:        strings.TrimSpace(sc.Name),
			Image:       strings.TrimSpace(sc.Image),
			Description: strings.TrimSpace(sc.Description),
			Author:      authors[strings.TrimSpace(sc.Author)],
		})
		if err != nil {
			return res, fmt.Errorf("create campground %q: %w", sc.Name, err)
		}
		res.Campgrounds++
		res.Slugs = append(res.Slugs, cg.Slug)

		for _, c := range sc.Comments {
			if _, err := cmStore.Create(ctx, cg.ID, strings.TrimSpace(c.Text), authors[strings.TrimSpace(c.Author)]); err != nil {
				return res, fmt.Errorf("comment on %q: %w", cg.Slug, err)
			}
			res.Comments++
		}
		linked, err := cmStore.ListByCampground(ctx, cg.ID)
		if err != nil {
			return res, fmt.Errorf("read back comments on %q: %w", cg.Slug, err)
		}
		if len(linked) != len(sc.Comments) {
			return res, fmt.Errorf("comments on %q: wrote %d, found %d", cg.Slug, len(sc.Comments), len(linked))
		}
		s.Log.Debug("seeded campground", zap.String("slug", cg.Slug), zap.Int("comments", len(sc.Comments)))
	}

	total, err := cgStore.Count(ctx, bson.M{})
	if err != nil {
		return res, fmt.Errorf("count campgrounds: %w", err)
	}
	res.TotalCampgrounds = total

	return res, nil
}
