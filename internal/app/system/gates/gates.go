// Package gates provides the ordered guard pipeline placed in front of
// HTTP handlers.
//
// A Gate either lets the request continue, optionally returning an enriched
// request (for example one carrying a record it loaded), or writes a
// terminal response and stops the chain. Chain runs gates in order, so a
// later gate may assume every earlier one passed:
//
//	r.With(...).Get("/{slug}/edit", gates.Chain(h.Edit, gates.SignedIn, h.Owner))
//
// Gates that need a database lookup (ownership) live on the feature handler
// that owns the store; this package holds the ones that only need the session.
package gates

import (
	"net/http"

	"github.com/dalemusser/yelpcamp/internal/app/system/auth"
)

// Gate is one guard in the pipeline. It returns the request to continue with
// and true, or false after it has written the response itself.
type Gate func(w http.ResponseWriter, r *http.Request) (*http.Request, bool)

// Chain wraps h so each gate runs in order before it.
func Chain(h http.HandlerFunc, gs ...Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, g := range gs {
			next, ok := g(w, r)
			if !ok {
				return
			}
			if next != nil {
				r = next
			}
		}
		h(w, r)
	}
}

// SignedIn passes only when a session user is present. Otherwise browsers are
// sent to /login with a return target, HTMX requests get HX-Redirect, and
// other callers get a plain 401.
func SignedIn(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	if _, ok := auth.CurrentUser(r); ok {
		return r, true
	}
	auth.Challenge(w, r)
	return nil, false
}
