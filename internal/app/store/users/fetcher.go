package userstore

import (
	"context"

	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
	"github.com/dalemusser/yelpcamp/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fetcher implements auth.UserFetcher so a deleted account stops being
// treated as signed in on its next request.
type Fetcher struct {
	store *Store
}

// NewFetcher creates a UserFetcher backed by the store.
func NewFetcher(s *Store) *Fetcher {
	return &Fetcher{store: s}
}

// FetchUser returns nil when the id is malformed, the user is gone, or the
// lookup fails.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	u, err := f.store.GetByID(ctx, oid)
	if err != nil {
		return nil
	}
	return &auth.SessionUser{ID: u.ID.Hex(), Name: u.Username}
}
