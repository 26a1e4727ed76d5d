package campgroundstore_test

import (
	"errors"
	"testing"
	"time"

	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	"github.com/dalemusser/yelpcamp/internal/app/system/indexes"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"github.com/dalemusser/yelpcamp/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func setup(t *testing.T) (*mongo.Database, *campgroundstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	return db, campgroundstore.New(db)
}

func author(name string) models.Author {
	return models.Author{ID: primitive.NewObjectID(), Username: name}
}

func TestStore_Create_AssignsSlugAndTimestamps(t *testing.T) {
	_, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := author("colt")
	created, err := store.Create(ctx, models.Campground{
		Name:   "Tent Valley",
		Image:  "https://example.com/tent.jpg",
		Author: a,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if created.Slug != "tent-valley" {
		t.Errorf("slug: got %q, want %q", created.Slug, "tent-valley")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if created.Comments == nil {
		t.Error("expected empty, non-nil comments")
	}

	got, err := store.GetBySlug(ctx, "tent-valley")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.ID != created.ID || got.Author != a {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestStore_Create_SameNameGetsDistinctSlugs(t *testing.T) {
	_, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	want := []string{"tent-valley", "tent-valley-2", "tent-valley-3"}
	for i, w := range want {
		cg, err := store.Create(ctx, models.Campground{Name: "Tent Valley", Image: "https://x/y.jpg", Author: author("a")})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if cg.Slug != w {
			t.Errorf("create %d: slug %q, want %q", i, cg.Slug, w)
		}
	}
}

func TestStore_Create_ReservedNameIsSuffixed(t *testing.T) {
	_, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	want := []string{"new-2", "new-3"}
	for i, w := range want {
		cg, err := store.Create(ctx, models.Campground{Name: "New", Image: "https://x/y.jpg", Author: author("a")})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if cg.Slug != w {
			t.Errorf("create %d: slug %q, want %q", i, cg.Slug, w)
		}
	}
}

func TestStore_List_NewestFirst(t *testing.T) {
	_, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	empty, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := store.Create(ctx, models.Campground{Name: name, Image: "https://x/y.jpg", Author: author("a")}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 campgrounds, got %d", len(list))
	}
	if list[0].Name != "Third" || list[2].Name != "First" {
		t.Errorf("unexpected order: %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	_, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "nowhere")
	if !errors.Is(err, campgroundstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	_, err = store.GetBySlugWithComments(ctx, "nowhere")
	if !errors.Is(err, campgroundstore.ErrNotFound) {
		t.Errorf("with comments: expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetBySlugWithComments_PreservesOrder(t *testing.T) {
	db, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	owner := fx.CreateUser(ctx, "owner")
	other := fx.CreateUser(ctx, "other")
	cg := fx.CreateCampground(ctx, "lake-side", "Lake Side", owner)

	first := fx.CreateComment(ctx, cg, other, "first")
	second := fx.CreateComment(ctx, cg, owner, "second")

	// A dangling id must be skipped, not fail the read.
	if _, err := db.Collection("campgrounds").UpdateOne(ctx, bson.M{"_id": cg.ID},
		bson.M{"$push": bson.M{"comments": primitive.NewObjectID()}}); err != nil {
		t.Fatalf("push dangling id: %v", err)
	}

	got, err := store.GetBySlugWithComments(ctx, "lake-side")
	if err != nil {
		t.Fatalf("GetBySlugWithComments failed: %v", err)
	}
	if len(got.Comments) != 3 {
		t.Errorf("expected 3 comment ids, got %d", len(got.Comments))
	}
	if len(got.CommentDocs) != 2 {
		t.Fatalf("expected 2 comment docs, got %d", len(got.CommentDocs))
	}
	if got.CommentDocs[0].ID != first.ID || got.CommentDocs[1].ID != second.ID {
		t.Errorf("comments out of order: %v", got.CommentDocs)
	}
	if got.CommentDocs[0].Author.Username != "other" {
		t.Errorf("comment author: got %q", got.CommentDocs[0].Author.Username)
	}
}

func TestStore_Update_OnlyEditableFields(t *testing.T) {
	db, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	owner := fx.CreateUser(ctx, "owner")
	orig := fx.CreateCampground(ctx, "pine-hollow", "Pine Hollow", owner)

	updated, err := store.Update(ctx, "pine-hollow", models.CampgroundUpdate{
		Name:        "Pine Hollow North",
		Description: "Moved up the ridge.",
		Image:       "https://example.com/north.jpg",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Pine Hollow North" || updated.Description != "Moved up the ridge." || updated.Image != "https://example.com/north.jpg" {
		t.Errorf("fields not updated: %+v", updated)
	}
	if updated.ID != orig.ID || updated.Slug != "pine-hollow" || updated.Author != orig.Author {
		t.Errorf("identity changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(orig.UpdatedAt) && !updated.UpdatedAt.Equal(orig.UpdatedAt) {
		t.Error("updated_at went backwards")
	}

	if _, err := store.Update(ctx, "missing", models.CampgroundUpdate{Name: "x"}); !errors.Is(err, campgroundstore.ErrNotFound) {
		t.Errorf("update missing: expected ErrNotFound, got %v", err)
	}
}

func TestStore_DeleteBySlug(t *testing.T) {
	db, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	owner := fx.CreateUser(ctx, "owner")
	cg := fx.CreateCampground(ctx, "doomed", "Doomed", owner)
	fx.CreateComment(ctx, cg, owner, "still here")

	if err := store.DeleteBySlug(ctx, "doomed"); err != nil {
		t.Fatalf("DeleteBySlug failed: %v", err)
	}
	if _, err := store.GetBySlug(ctx, "doomed"); !errors.Is(err, campgroundstore.ErrNotFound) {
		t.Errorf("after delete: expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteBySlug(ctx, "doomed"); !errors.Is(err, campgroundstore.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}

	// Comments are left in place.
	n, err := db.Collection("comments").CountDocuments(ctx, bson.M{"campground_id": cg.ID})
	if err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if n != 1 {
		t.Errorf("expected orphaned comment to remain, got %d", n)
	}
}

func TestStore_AppendComment_Missing(t *testing.T) {
	_, store := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.AppendComment(ctx, primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, campgroundstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
