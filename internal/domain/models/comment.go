// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a remark left on a campground. Campgrounds reference comments
// by id; deleting a campground leaves its comments in place.
type Comment struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	CampgroundID primitive.ObjectID `bson:"campground_id" json:"campground_id"`
	Text         string             `bson:"text" json:"text"`
	Author       Author             `bson:"author" json:"author"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
