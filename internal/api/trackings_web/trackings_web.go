// Package trackings_web serves the tracking lookup form and its JSON twin.
package trackings_web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/BearBump/TrackLink/internal/models"
	"github.com/BearBump/TrackLink/internal/payload"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

const maxFormBytes = 64 << 10

//go:embed templates/index.html
var templatesFS embed.FS

type Looker interface {
	Lookup(ctx context.Context, sub models.TrackingSubmission) models.ViewModel
}

type TrackingsWeb struct {
	svc  Looker
	log  *slog.Logger
	tmpl *template.Template
}

func New(svc Looker, log *slog.Logger) *TrackingsWeb {
	if log == nil {
		log = slog.Default()
	}
	tmpl := template.Must(template.New("index.html").Funcs(template.FuncMap{
		"inlineImage": inlineImage,
		"rawJSON":     payload.Indent,
	}).ParseFS(templatesFS, "templates/index.html"))

	return &TrackingsWeb{svc: svc, log: log, tmpl: tmpl}
}

// Index renders the empty form.
func (a *TrackingsWeb) Index(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, a.svc.Lookup(r.Context(), models.TrackingSubmission{}))
}

// Submit handles the posted form.
func (a *TrackingsWeb) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		a.log.Warn("parse form", "error", err.Error())
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	a.render(w, r, a.svc.Lookup(r.Context(), models.TrackingSubmission{
		TrackingNumber:      r.PostForm.Get("tracking_number"),
		OrderReference:      r.PostForm.Get("order_reference"),
		SubmissionAttempted: true,
	}))
}

// ByPath treats /{trackingNumber} as a submission of that number alone.
func (a *TrackingsWeb) ByPath(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "trackingNumber")
	// chi routes on RawPath when it is set, so only then is the segment still escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}
	}
	a.render(w, r, a.svc.Lookup(r.Context(), models.TrackingSubmission{
		TrackingNumber:      raw,
		SubmissionAttempted: true,
	}))
}

// LookupJSON is GET /api/v1/lookup. Any request counts as a submission, so
// missing parameters yield the empty-submission message.
func (a *TrackingsWeb) LookupJSON(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vm := a.svc.Lookup(r.Context(), models.TrackingSubmission{
		TrackingNumber:      q.Get("tracking_number"),
		OrderReference:      q.Get("order_reference"),
		SubmissionAttempted: true,
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(vm); err != nil {
		a.log.Warn("encode lookup response", "error", errors.Wrap(err, "encode").Error())
	}
}

func (a *TrackingsWeb) render(w http.ResponseWriter, r *http.Request, vm models.ViewModel) {
	var buf strings.Builder
	if err := a.tmpl.Execute(&buf, vm); err != nil {
		a.log.Error("render index", "path", r.URL.Path, "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(buf.String()))
}

// inlineImage lets data:image/ URIs through the template's URL filter. Anything
// else comes back empty and is shown as text.
func inlineImage(s string) template.URL {
	if strings.HasPrefix(strings.ToLower(s), "data:image/") {
		return template.URL(s)
	}
	return ""
}
