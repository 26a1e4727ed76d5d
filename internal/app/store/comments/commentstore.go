// internal/app/store/comments/commentstore.go
package commentstore

import (
	"context"
	"time"

	campgroundstore "github.com/dalemusser/yelpcamp/internal/app/store/campgrounds"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection comments are stored in.
const Collection = "comments"

type Store struct {
	c           *mongo.Collection
	campgrounds *campgroundstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:           db.Collection(Collection),
		campgrounds: campgroundstore.New(db),
	}
}

// Create inserts a comment and appends its id to the campground's list.
// If the campground is gone the comment is removed again and
// campgroundstore.ErrNotFound is returned.
func (s *Store) Create(ctx context.Context, campgroundID primitive.ObjectID, text string, author models.Author) (models.Comment, error) {
	cm := models.Comment{
		ID:           primitive.NewObjectID(),
		CampgroundID: campgroundID,
		Text:         text,
		Author:       author,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, cm); err != nil {
		return models.Comment{}, err
	}
	if err := s.campgrounds.AppendComment(ctx, campgroundID, cm.ID); err != nil {
		_, _ = s.c.DeleteOne(ctx, bson.M{"_id": cm.ID})
		return models.Comment{}, err
	}
	return cm, nil
}

// ListByCampground returns a campground's comments, oldest first.
func (s *Store) ListByCampground(ctx context.Context, campgroundID primitive.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"campground_id": campgroundID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Comment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
