// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the DevPortfolio site.
// Handlers are grouped by concern (public, admin, auth) and receive their
// dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"devportfolio/internal/cache"
	"devportfolio/internal/models"
	"devportfolio/internal/render"
	"devportfolio/internal/session"
	"devportfolio/internal/storage"
	"devportfolio/internal/store"
)

// resourceMeta describes one managed entity for the shared list and form
// templates. CanCreate is false for the settings singleton once a row
// exists, and always false for submissions.
type resourceMeta struct {
	Slug      string // URL segment under /admin/
	Title     string // Plural heading
	Singular  string
	CanCreate bool
	CanDelete bool
}

// formField describes one input on the shared resource form. Widget picks
// the control: text, email, url, textarea, number, price, date, checkbox,
// select, multiselect, image.
type formField struct {
	Name     string
	Label    string
	Widget   string
	Value    string
	Checked  bool
	Required bool
	Help     string
	Min      string
	Max      string
	Options  []formOption
}

// formOption is one choice in a select or multiselect field.
type formOption struct {
	Value    string
	Label    string
	Selected bool
}

// listCell is one rendered table cell on the shared list template.
// Kind is "text", "image", or "bool".
type listCell struct {
	Kind string
	Text string
}

// listRow is one table row on the shared list template.
type listRow struct {
	ID    string
	Cells []listCell
}

// Admin groups the back-office CRUD handlers and their dependencies.
type Admin struct {
	renderer     *render.Renderer
	sessions     *session.Store
	services     *store.ServiceStore
	projects     *store.ProjectStore
	images       *store.ImageStore
	testimonials *store.TestimonialStore
	technologies *store.TechnologyStore
	settings     *store.SiteSettingStore
	submissions  *store.SubmissionStore
	userStore    *store.UserStore
	media        *store.MediaStore
	storage      *storage.Client
	pageCache    *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// media and storageClient may be nil if S3 is not configured.
func NewAdmin(
	renderer *render.Renderer,
	sessions *session.Store,
	services *store.ServiceStore,
	projects *store.ProjectStore,
	images *store.ImageStore,
	testimonials *store.TestimonialStore,
	technologies *store.TechnologyStore,
	settings *store.SiteSettingStore,
	submissions *store.SubmissionStore,
	userStore *store.UserStore,
	media *store.MediaStore,
	storageClient *storage.Client,
	pageCache *cache.PageCache,
) *Admin {
	return &Admin{
		renderer:     renderer,
		sessions:     sessions,
		services:     services,
		projects:     projects,
		images:       images,
		testimonials: testimonials,
		technologies: technologies,
		settings:     settings,
		submissions:  submissions,
		userStore:    userStore,
		media:        media,
		storage:      storageClient,
		pageCache:    pageCache,
	}
}

// Dashboard renders the admin landing page with content counts and the
// latest submissions.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	serviceCount, _ := a.services.Count()
	projectCount, _ := a.projects.Count()
	imageCount, _ := a.images.Count()
	testimonialCount, _ := a.testimonials.Count()
	technologyCount, _ := a.technologies.Count()
	unreadCount, _ := a.submissions.CountUnread()

	recent, err := a.submissions.List()
	if err != nil {
		slog.Error("list submissions failed", "error", err)
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	a.renderer.Admin(w, r, "dashboard", &render.PageData{
		Title:    "Dashboard",
		Section:  "dashboard",
		Settings: a.siteSettings(),
		Data: map[string]any{
			"ServiceCount":      serviceCount,
			"ProjectCount":      projectCount,
			"ImageCount":        imageCount,
			"TestimonialCount":  testimonialCount,
			"TechnologyCount":   technologyCount,
			"UnreadCount":       unreadCount,
			"RecentSubmissions": recent,
		},
	})
}

// siteSettings loads settings for the admin chrome; failures fall back to
// an empty struct so the layout still renders.
func (a *Admin) siteSettings() *models.SiteSetting {
	st, err := a.settings.Get()
	if err != nil {
		slog.Error("load site settings failed", "error", err)
	}
	return st
}

// invalidatePages clears the whole rendered-page cache. Any content write
// can surface on several pages, so per-page invalidation is not worth the
// bookkeeping at this scale.
func (a *Admin) invalidatePages(r *http.Request) {
	a.pageCache.InvalidateAll(r.Context())
}

// renderList renders the shared resource list template.
func (a *Admin) renderList(w http.ResponseWriter, r *http.Request, res resourceMeta, columns []string, rows []listRow) {
	a.renderer.Admin(w, r, "resource_list", &render.PageData{
		Title:    res.Title,
		Section:  res.Slug,
		Settings: a.siteSettings(),
		Data: map[string]any{
			"Resource": res,
			"Columns":  columns,
			"Rows":     rows,
		},
	})
}

// renderForm renders the shared resource form template.
func (a *Admin) renderForm(w http.ResponseWriter, r *http.Request, res resourceMeta, action string, isNew bool, fields []formField, errs []string) {
	a.renderer.Admin(w, r, "resource_form", &render.PageData{
		Title:    res.Singular,
		Section:  res.Slug,
		Settings: a.siteSettings(),
		Data: map[string]any{
			"Resource": res,
			"Action":   action,
			"IsNew":    isNew,
			"Fields":   fields,
			"Errors":   errs,
		},
	})
}

// --- Form value parsing helpers ---

// formBool reads a checkbox value; unchecked boxes are absent from the form.
func formBool(r *http.Request, name string) bool {
	return r.PostFormValue(name) == "true"
}

// formInt reads an integer field, returning fallback when empty or invalid.
func formInt(r *http.Request, name string, fallback int) int {
	v := strings.TrimSpace(r.PostFormValue(name))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// formFloatPtr reads an optional decimal field; empty means nil.
func formFloatPtr(r *http.Request, name string) (*float64, bool) {
	v := strings.TrimSpace(r.PostFormValue(name))
	if v == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

// formDatePtr reads an optional date field in the HTML date input format.
func formDatePtr(r *http.Request, name string) (*time.Time, bool) {
	v := strings.TrimSpace(r.PostFormValue(name))
	if v == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// formUUIDs reads a multiselect of UUID values, skipping malformed ones.
func formUUIDs(r *http.Request, name string) []uuid.UUID {
	var ids []uuid.UUID
	for _, v := range r.PostForm[name] {
		if id, err := uuid.Parse(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// pathID parses the {id} chi URL parameter.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// floatVal formats an optional price for the form input value.
func floatVal(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// dateVal formats an optional date for the HTML date input value.
func dateVal(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// boolCell renders a bool as a list cell.
func boolCell(b bool) listCell {
	return listCell{Kind: "bool", Text: strconv.FormatBool(b)}
}

// textCell renders plain text as a list cell.
func textCell(s string) listCell {
	return listCell{Kind: "text", Text: s}
}

// imageCell renders an image URL as a thumbnail list cell.
func imageCell(url string) listCell {
	return listCell{Kind: "image", Text: url}
}
