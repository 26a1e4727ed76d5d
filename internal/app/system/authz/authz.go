// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's name, Mongo ObjectID, and a found flag.
// If no user is present in context or the user ID is malformed, it returns
// "", NilObjectID, false, so ok=true always means a usable ObjectID.
func UserCtx(r *http.Request) (name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session: fail closed.
		return "", primitive.NilObjectID, false
	}
	return user.Name, userID, true
}

// Author is the {id, username} snapshot stored on records the caller creates.
func Author(r *http.Request) (models.Author, bool) {
	name, id, ok := UserCtx(r)
	if !ok {
		return models.Author{}, false
	}
	return models.Author{ID: id, Username: name}, true
}

// OwnsCampground reports whether the signed-in caller authored cg.
func OwnsCampground(r *http.Request, cg models.Campground) bool {
	_, id, ok := UserCtx(r)
	return ok && cg.OwnedBy(id)
}
