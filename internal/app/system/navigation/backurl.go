// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/campgrounds").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are substrings to reject (e.g., "/edit", "/login").
	// These prevent redirect loops back to action pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a "return" URL from the query string or
// form body. Anything that is not a local path (open redirects), falls outside
// AllowedPrefix, or hits an excluded subpath yields Fallback.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" && allowed(ret, opts) {
		return ret
	}
	return opts.Fallback
}

func allowed(ret string, opts BackURLOptions) bool {
	if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
		return false
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return false
		}
	}
	return true
}

var (
	// AfterLogin is where a successful login or registration lands.
	AfterLogin = BackURLOptions{
		ExcludedSubpaths: []string{"/login", "/register", "/logout"},
		Fallback:         "/campgrounds",
	}

	// CampgroundsBackURL is the back link target for campground forms.
	CampgroundsBackURL = BackURLOptions{
		AllowedPrefix:    "/campgrounds",
		ExcludedSubpaths: []string{"/edit", "/new"},
		Fallback:         "/campgrounds",
	}
)
