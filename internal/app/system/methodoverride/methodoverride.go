// Package methodoverride lets HTML forms, which can only GET or POST, reach
// PUT, PATCH and DELETE routes by naming the method in a "_method" field.
package methodoverride

import (
	"net/http"
	"strings"
)

// Field is the query/form key that carries the intended method.
const Field = "_method"

var allowed = map[string]struct{}{
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// Middleware rewrites a POST to the method named by "_method", checked in the
// query string first and then the form body. Any other value is ignored.
// It must run before routing.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := override(r); m != "" {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}

func override(r *http.Request) string {
	v := r.URL.Query().Get(Field)
	if v == "" {
		// ParseForm errors leave the method alone; the handler sees them again.
		if err := r.ParseForm(); err == nil {
			v = r.PostForm.Get(Field)
		}
	}
	v = strings.ToUpper(strings.TrimSpace(v))
	if _, ok := allowed[v]; ok {
		return v
	}
	return ""
}
