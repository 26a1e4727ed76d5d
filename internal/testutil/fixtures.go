package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
// Records are inserted directly, bypassing the stores under test.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user whose password is "password".
func (f *Fixtures) CreateUser(ctx context.Context, username string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		UsernameCI:   text.Fold(username),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateCampground inserts a campground with the given slug, authored by author.
func (f *Fixtures) CreateCampground(ctx context.Context, slug, name string, author models.User) models.Campground {
	f.t.Helper()

	now := time.Now().UTC()
	cg := models.Campground{
		ID:          primitive.NewObjectID(),
		Slug:        slug,
		Name:        name,
		Image:       "https://example.com/" + slug + ".jpg",
		Description: "A fine place called " + name + ".",
		Author:      author.AsAuthor(),
		Comments:    []primitive.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("campgrounds").InsertOne(ctx, cg); err != nil {
		f.t.Fatalf("failed to create test campground: %v", err)
	}
	return cg
}

// CreateComment inserts a comment and appends its id to the campground.
func (f *Fixtures) CreateComment(ctx context.Context, cg models.Campground, author models.User, body string) models.Comment {
	f.t.Helper()

	cm := models.Comment{
		ID:           primitive.NewObjectID(),
		CampgroundID: cg.ID,
		Text:         body,
		Author:       author.AsAuthor(),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := f.db.Collection("comments").InsertOne(ctx, cm); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	_, err := f.db.Collection("campgrounds").UpdateOne(ctx,
		bson.M{"_id": cg.ID},
		bson.M{"$push": bson.M{"comments": cm.ID}},
	)
	if err != nil {
		f.t.Fatalf("failed to link test comment: %v", err)
	}
	return cm
}
