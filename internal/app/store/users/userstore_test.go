package userstore_test

import (
	"context"
	"errors"
	"testing"

	userstore "github.com/dalemusser/yelpcamp/internal/app/store/users"
	"github.com/dalemusser/yelpcamp/internal/app/system/indexes"
	"github.com/dalemusser/yelpcamp/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func newStore(t *testing.T) *userstore.Store {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}
	return userstore.New(db).WithCost(bcrypt.MinCost)
}

func TestStore_Create(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, "  Colt  ", "campfire")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if u.Username != "Colt" {
		t.Errorf("username: got %q, want %q", u.Username, "Colt")
	}
	if u.UsernameCI != "colt" {
		t.Errorf("username_ci: got %q, want %q", u.UsernameCI, "colt")
	}
	if u.PasswordHash == "" || u.PasswordHash == "campfire" {
		t.Error("expected a bcrypt hash, not the password")
	}
}

func TestStore_Create_DuplicateFolded(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "Zoe", "password1"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, "ZOE", "password2")
	if !errors.Is(err, userstore.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestStore_Authenticate(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "ranger", "smokey-bear")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"correct", "ranger", "smokey-bear", nil},
		{"case-insensitive username", "RANGER", "smokey-bear", nil},
		{"wrong password", "ranger", "nope", userstore.ErrInvalidCredentials},
		{"unknown user", "ghost", "smokey-bear", userstore.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := store.Authenticate(ctx, tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err: got %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && u.ID != created.ID {
				t.Errorf("authenticated wrong user: %s", u.ID.Hex())
			}
		})
	}
}

func TestStore_GetByID(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "finder", "password")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Username != "finder" {
		t.Errorf("username: got %q", got.Username)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFetcher_FetchUser(t *testing.T) {
	store := newStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "session-owner", "password")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	f := userstore.NewFetcher(store)
	su := f.FetchUser(ctx, created.ID.Hex())
	if su == nil {
		t.Fatal("expected session user")
	}
	if su.ID != created.ID.Hex() || su.Name != "session-owner" {
		t.Errorf("unexpected session user: %+v", su)
	}

	for _, id := range []string{"not-hex", primitive.NewObjectID().Hex()} {
		if got := f.FetchUser(context.Background(), id); got != nil {
			t.Errorf("FetchUser(%q): expected nil, got %+v", id, got)
		}
	}
}
