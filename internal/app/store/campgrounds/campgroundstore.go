// internal/app/store/campgrounds/campgroundstore.go
package campgroundstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/yelpcamp/internal/app/system/slug"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection campgrounds are stored in.
const Collection = "campgrounds"

// MaxSlugAttempts bounds slug disambiguation (base, base-2, ... base-N).
const MaxSlugAttempts = 100

var (
	// ErrNotFound is returned when no campground has the requested slug.
	ErrNotFound = errors.New("campground not found")
	// ErrSlugExhausted is returned when every slug candidate is taken.
	ErrSlugExhausted = errors.New("no free slug for campground name")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every campground, newest first. There is no paging.
func (s *Store) List(ctx context.Context) ([]models.Campground, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Campground{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create assigns an ID, a unique slug derived from cg.Name, and timestamps,
// then inserts. The unique slug index decides collisions: on a duplicate
// key the next candidate (base-2, base-3, ...) is tried. A base that is a
// reserved route segment starts at base-2.
func (s *Store) Create(ctx context.Context, cg models.Campground) (models.Campground, error) {
	now := time.Now().UTC()
	cg.ID = primitive.NewObjectID()
	cg.CreatedAt = now
	cg.UpdatedAt = now
	if cg.Comments == nil {
		cg.Comments = []primitive.ObjectID{}
	}

	base := slug.Make(cg.Name)
	for attempt := 1; attempt <= MaxSlugAttempts; attempt++ {
		cg.Slug = slug.Candidate(base, attempt)
		_, err := s.c.InsertOne(ctx, cg)
		if err == nil {
			return cg, nil
		}
		if !wafflemongo.IsDup(err) {
			return models.Campground{}, err
		}
	}
	return models.Campground{}, ErrSlugExhausted
}

func (s *Store) GetBySlug(ctx context.Context, sl string) (models.Campground, error) {
	var cg models.Campground
	err := s.c.FindOne(ctx, bson.M{"slug": sl}).Decode(&cg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Campground{}, ErrNotFound
	}
	if err != nil {
		return models.Campground{}, err
	}
	return cg, nil
}

// GetBySlugWithComments loads a campground and resolves its comment ids in
// one aggregate round trip. $lookup does not preserve array order, so the
// documents are re-ordered to match cg.Comments.
func (s *Store) GetBySlugWithComments(ctx context.Context, sl string) (models.CampgroundWithComments, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"slug": sl}}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "comments",
			"localField":   "comments",
			"foreignField": "_id",
			"as":           "comment_docs",
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return models.CampgroundWithComments{}, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return models.CampgroundWithComments{}, err
		}
		return models.CampgroundWithComments{}, ErrNotFound
	}

	var out models.CampgroundWithComments
	if err := cur.Decode(&out); err != nil {
		return models.CampgroundWithComments{}, err
	}
	out.CommentDocs = orderComments(out.Comments, out.CommentDocs)
	return out, nil
}

// Update rewrites name, description and image of the campground with the
// given slug. ID, slug and author are never touched.
func (s *Store) Update(ctx context.Context, sl string, upd models.CampgroundUpdate) (models.Campground, error) {
	set := bson.M{
		"name":        upd.Name,
		"description": upd.Description,
		"image":       upd.Image,
		"updated_at":  time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var cg models.Campground
	err := s.c.FindOneAndUpdate(ctx, bson.M{"slug": sl}, bson.M{"$set": set}, opts).Decode(&cg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Campground{}, ErrNotFound
	}
	if err != nil {
		return models.Campground{}, err
	}
	return cg, nil
}

// DeleteBySlug removes the campground. Its comments are left in place.
func (s *Store) DeleteBySlug(ctx context.Context, sl string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"slug": sl})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendComment records commentID at the end of the campground's comment list.
func (s *Store) AppendComment(ctx context.Context, campgroundID, commentID primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, campgroundID, bson.M{
		"$push": bson.M{"comments": commentID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of campgrounds matching filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

func orderComments(ids []primitive.ObjectID, docs []models.Comment) []models.Comment {
	byID := make(map[primitive.ObjectID]models.Comment, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}
	out := make([]models.Comment, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out
}
