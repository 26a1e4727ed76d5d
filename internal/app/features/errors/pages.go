// internal/app/features/errors/pages.go
package errors

import (
	"net/http"

	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TemplateName is the single template every error page renders.
const TemplateName = "error_page"

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status     int
	Heading    string
	Message    string
	IncidentID string
}

// Pages renders friendly error pages with the right status code.
// The zero value is not usable; build one with NewPages.
type Pages struct {
	rd  viewdata.Renderer
	log *zap.Logger
}

// NewPages constructs error pages over a renderer and logger.
func NewPages(rd viewdata.Renderer, logger *zap.Logger) *Pages {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pages{rd: rd, log: logger}
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, heading, msg, backURL, incident string) {
	data := pageData{
		BaseVM:     viewdata.NewBaseVM(r, heading, backURL),
		Status:     status,
		Heading:    heading,
		Message:    msg,
		IncidentID: incident,
	}
	viewdata.StatusRenderer(p.rd, status).Render(w, r, TemplateName, data)
}

// NotFound renders a 404 page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "We couldn't find what you were looking for."
	}
	p.render(w, r, http.StatusNotFound, "Not found", msg, fallback(backURL), "")
}

// Forbidden renders a 403 page.
func (p *Pages) Forbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "You don't have permission to do that."
	}
	p.render(w, r, http.StatusForbidden, "Access denied", msg, fallback(backURL), "")
}

// BadRequest renders a 400 page.
func (p *Pages) BadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The request could not be understood."
	}
	p.render(w, r, http.StatusBadRequest, "Bad request", msg, fallback(backURL), "")
}

// ServerError logs err with an incident id and renders a 500 page showing
// that id, so a report from the user can be matched to the log line.
func (p *Pages) ServerError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	incident := uuid.NewString()
	fields = append(fields,
		zap.String("incident_id", incident),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	p.log.Error(msg, fields...)

	p.render(w, r, http.StatusInternalServerError, "Something went wrong",
		"An unexpected error occurred. Please try again.", "/campgrounds", incident)
}

// NotFoundHandler adapts NotFound for router fallbacks.
func (p *Pages) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	p.NotFound(w, r, "", "/campgrounds")
}

// MethodNotAllowedHandler is the router fallback for a known path with the wrong method.
func (p *Pages) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusMethodNotAllowed, "Not allowed",
		"That action isn't available here.", "/campgrounds", "")
}

func fallback(backURL string) string {
	if backURL == "" {
		return "/campgrounds"
	}
	return backURL
}
