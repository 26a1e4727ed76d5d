// internal/domain/models/campground.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the snapshot of the creating user stored on a campground.
// It is copied at creation time and never re-joined against users.
type Author struct {
	ID       primitive.ObjectID `bson:"id" json:"id"`
	Username string             `bson:"username" json:"username"`
}

// Campground is the resource managed by the campgrounds feature.
//
// NOTE:
//   - Slug is assigned once by the store at creation and is the external
//     lookup key for show/edit/update/delete.
//   - Author is immutable after creation.
//   - Comments holds ids into the comments collection, in display order.
type Campground struct {
	ID          primitive.ObjectID   `bson:"_id" json:"id"`
	Slug        string               `bson:"slug" json:"slug"`
	Name        string               `bson:"name" json:"name"`
	Image       string               `bson:"image" json:"image"`
	Description string               `bson:"description" json:"description"`
	Author      Author               `bson:"author" json:"author"`
	Comments    []primitive.ObjectID `bson:"comments" json:"comments"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// OwnedBy reports whether userID is the campground's author.
func (c Campground) OwnedBy(userID primitive.ObjectID) bool {
	return !userID.IsZero() && c.Author.ID == userID
}

// CampgroundUpdate carries the only fields an update may rewrite.
type CampgroundUpdate struct {
	Name        string
	Description string
	Image       string
}

// CampgroundWithComments is a campground with its comment references resolved.
// CommentDocs follows the order of Comments; ids with no matching document are skipped.
type CampgroundWithComments struct {
	Campground  `bson:",inline"`
	CommentDocs []Comment `bson:"comment_docs"`
}
