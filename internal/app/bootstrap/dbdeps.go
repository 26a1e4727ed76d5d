// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/yelpcamp/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// The login limiter lives here rather than in BuildHandler so Shutdown can
// stop its cleanup goroutine.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	LoginLimiter  *ratelimit.LoginLimiter
}
