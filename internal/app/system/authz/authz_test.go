package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
	"github.com/dalemusser/yelpcamp/internal/app/system/authz"
	"github.com/dalemusser/yelpcamp/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/campgrounds", nil)

	name, id, ok := authz.UserCtx(req)
	if ok || name != "" || !id.IsZero() {
		t.Errorf("expected empty result, got %q %v %v", name, id, ok)
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	req := auth.WithUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: "nope", Name: "camper"})

	if _, _, ok := authz.UserCtx(req); ok {
		t.Error("expected ok=false for malformed ID")
	}
}

func TestAuthor(t *testing.T) {
	oid := primitive.NewObjectID()
	req := auth.WithUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: oid.Hex(), Name: "camper"})

	a, ok := authz.Author(req)
	if !ok {
		t.Fatal("expected ok")
	}
	if a.ID != oid || a.Username != "camper" {
		t.Errorf("Author = %+v", a)
	}
}

func TestOwnsCampground(t *testing.T) {
	owner := primitive.NewObjectID()
	cg := models.Campground{Author: models.Author{ID: owner, Username: "owner"}}

	asOwner := auth.WithUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: owner.Hex(), Name: "owner"})
	if !authz.OwnsCampground(asOwner, cg) {
		t.Error("expected owner to own campground")
	}

	other := auth.WithUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: primitive.NewObjectID().Hex(), Name: "other"})
	if authz.OwnsCampground(other, cg) {
		t.Error("expected non-owner to be rejected")
	}

	if authz.OwnsCampground(httptest.NewRequest("GET", "/", nil), cg) {
		t.Error("expected anonymous caller to be rejected")
	}
}
