// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/yelpcamp/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// SiteName is shown in the layout header and page titles.
const SiteName = "YelpCamp"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type showData struct {
//	    viewdata.BaseVM
//	    Campground models.Campground
//	}
//
//	data := showData{
//	    BaseVM: viewdata.NewBaseVM(r, "Tent Valley", "/campgrounds"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserName   string
	UserID     string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Error is shown above a re-rendered form.
	Error template.HTML
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	name, uid, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:    SiteName,
		IsLoggedIn:  signedIn,
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
	if signedIn {
		vm.UserID = uid.Hex()
	}
	return vm
}

// SetError sets the message shown above a re-rendered form. msg is escaped.
func (b *BaseVM) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// Renderer writes a named template for a request. Handlers depend on this
// rather than on the template engine so tests can record what was rendered.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, name string, data any)
}

// TemplateRenderer renders through the shared waffle template engine.
type TemplateRenderer struct{}

// Render implements Renderer.
func (TemplateRenderer) Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// StatusRenderer wraps a Renderer so the response carries status instead of 200.
func StatusRenderer(rd Renderer, status int) Renderer {
	return statusRenderer{next: rd, status: status}
}

type statusRenderer struct {
	next   Renderer
	status int
}

func (s statusRenderer) Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	s.next.Render(&statusWriter{ResponseWriter: w, status: s.status}, r, name, data)
}

// statusWriter substitutes its status for the first WriteHeader (or the
// implicit one on the first Write).
type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (sw *statusWriter) WriteHeader(int) {
	if sw.written {
		return
	}
	sw.written = true
	sw.ResponseWriter.WriteHeader(sw.status)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if !sw.written {
		sw.WriteHeader(sw.status)
	}
	return sw.ResponseWriter.Write(b)
}
