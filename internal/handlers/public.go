// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"devportfolio/internal/cache"
	"devportfolio/internal/mail"
	"devportfolio/internal/middleware"
	"devportfolio/internal/models"
	"devportfolio/internal/render"
	"devportfolio/internal/store"
)

// homeSections are the image categories the homepage shows one image of each.
var homeSections = []models.ImageCategory{
	models.ImageCategoryHero,
	models.ImageCategoryServices,
	models.ImageCategoryBackground,
	models.ImageCategoryProjects,
	models.ImageCategoryTestimonial,
	models.ImageCategoryCTA,
}

// aboutTechCategories are the stack sections shown on the about page.
// Tools are deliberately left out; they clutter the page.
var aboutTechCategories = []models.TechCategory{
	models.TechCategoryFrontend,
	models.TechCategoryBackend,
	models.TechCategoryDatabase,
	models.TechCategoryMobile,
	models.TechCategoryCloud,
}

// Public groups handlers for the visitor-facing site. Rendered pages are
// checked against the Valkey page cache before hitting the database, and
// stored there on miss. The contact page is never cached because it embeds
// a per-visitor CSRF token.
type Public struct {
	renderer     *render.Renderer
	settings     *store.SiteSettingStore
	services     *store.ServiceStore
	projects     *store.ProjectStore
	images       *store.ImageStore
	testimonials *store.TestimonialStore
	technologies *store.TechnologyStore
	submissions  *store.SubmissionStore
	mailer       mail.Notifier
	pageCache    *cache.PageCache
}

// NewPublic creates the public handler group. mailer may be nil when no
// mail transport is configured.
func NewPublic(
	renderer *render.Renderer,
	settings *store.SiteSettingStore,
	services *store.ServiceStore,
	projects *store.ProjectStore,
	images *store.ImageStore,
	testimonials *store.TestimonialStore,
	technologies *store.TechnologyStore,
	submissions *store.SubmissionStore,
	mailer mail.Notifier,
	pageCache *cache.PageCache,
) *Public {
	return &Public{
		renderer:     renderer,
		settings:     settings,
		services:     services,
		projects:     projects,
		images:       images,
		testimonials: testimonials,
		technologies: technologies,
		submissions:  submissions,
		mailer:       mailer,
		pageCache:    pageCache,
	}
}

// siteSettings loads the singleton settings row, creating it with defaults
// on first use. A failure here is non-fatal: pages render with defaults.
func (p *Public) siteSettings() *models.SiteSetting {
	st, err := p.settings.GetOrCreate()
	if err != nil || st == nil {
		slog.Error("load site settings failed", "error", err)
		return &models.SiteSetting{
			SiteName:        models.DefaultSiteName,
			SiteDescription: models.DefaultSiteDescription,
		}
	}
	return st
}

// serveCached writes a cached page if present. Returns true on hit.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	cached, ok := p.pageCache.Get(r.Context(), key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(cached)
	return true
}

// renderAndCache renders a site template, stores the result under key
// (unless key is empty), and writes it to the response. Render failures
// fall through to the 500 page.
func (p *Public) renderAndCache(w http.ResponseWriter, r *http.Request, key, name string, data *render.PageData) {
	page, err := p.renderer.Site(name, data)
	if err != nil {
		slog.Error("render page failed", "template", name, "error", err)
		p.ServerError(w, r)
		return
	}
	if key != "" {
		p.pageCache.Set(r.Context(), key, page)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// sectionImageMap converts the store's category-keyed map into the
// string-keyed form templates index into.
func sectionImageMap(m map[models.ImageCategory]*models.PortfolioImage) map[string]*models.PortfolioImage {
	out := make(map[string]*models.PortfolioImage, len(m))
	for cat, img := range m {
		out[string(cat)] = img
	}
	return out
}

// Home renders the homepage: featured services and projects, the active
// technology strip, one image per display section, and featured
// testimonials.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.HomeKey()) {
		return
	}

	sections, err := p.images.SectionImages(homeSections...)
	if err != nil {
		slog.Error("load section images failed", "error", err)
	}
	services, err := p.services.ListFeatured(6)
	if err != nil {
		slog.Error("list featured services failed", "error", err)
	}
	projects, err := p.projects.ListFeatured(6)
	if err != nil {
		slog.Error("list featured projects failed", "error", err)
	}
	technologies, err := p.technologies.ListActive(12)
	if err != nil {
		slog.Error("list technologies failed", "error", err)
	}
	testimonials, err := p.testimonials.ListFeatured(4)
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
	}

	p.renderAndCache(w, r, cache.HomeKey(), "home", &render.PageData{
		Section:  "home",
		Settings: p.siteSettings(),
		Data: map[string]any{
			"SectionImages": sectionImageMap(sections),
			"Services":      services,
			"Projects":      projects,
			"Technologies":  technologies,
			"Testimonials":  testimonials,
		},
	})
}

// Services renders the services listing page.
func (p *Public) Services(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.ServicesKey()) {
		return
	}

	services, err := p.services.ListActive()
	if err != nil {
		slog.Error("list active services failed", "error", err)
		p.ServerError(w, r)
		return
	}
	serviceImages, err := p.images.ListActiveByCategory(models.ImageCategoryServices, 10)
	if err != nil {
		slog.Error("list service images failed", "error", err)
	}
	iconImages, err := p.images.ListActiveByCategory(models.ImageCategoryIcon, 12)
	if err != nil {
		slog.Error("list icon images failed", "error", err)
	}
	patternImages, err := p.images.ListActiveByCategory(models.ImageCategoryPattern, 4)
	if err != nil {
		slog.Error("list pattern images failed", "error", err)
	}
	technologies, err := p.technologies.ListActive(0)
	if err != nil {
		slog.Error("list technologies failed", "error", err)
	}

	p.renderAndCache(w, r, cache.ServicesKey(), "services", &render.PageData{
		Title:    "Services",
		Section:  "services",
		Settings: p.siteSettings(),
		Data: map[string]any{
			"Services":      services,
			"ServiceImages": serviceImages,
			"IconImages":    iconImages,
			"PatternImages": patternImages,
			"Technologies":  technologies,
		},
	})
}

// ServiceDetail renders one active service. Inactive or unknown services
// 404 so drafts never leak.
func (p *Public) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		p.NotFound(w, r)
		return
	}
	if p.serveCached(w, r, cache.ServiceKey(id)) {
		return
	}

	svc, err := p.services.FindActiveByID(id)
	if err != nil {
		slog.Error("find service failed", "error", err, "id", id)
		p.ServerError(w, r)
		return
	}
	if svc == nil {
		p.NotFound(w, r)
		return
	}

	projects, err := p.projects.ListByService(id, 4)
	if err != nil {
		slog.Error("list projects for service failed", "error", err, "id", id)
	}

	p.renderAndCache(w, r, cache.ServiceKey(id), "service_detail", &render.PageData{
		Title:    svc.Name,
		Section:  "services",
		Settings: p.siteSettings(),
		Data: map[string]any{
			"Service":  svc,
			"Projects": projects,
		},
	})
}

// Projects renders the full portfolio listing with service filter buttons.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.ProjectsKey()) {
		return
	}

	projects, err := p.projects.List()
	if err != nil {
		slog.Error("list projects failed", "error", err)
		p.ServerError(w, r)
		return
	}
	// Attach services for the client-side filter attributes.
	for i := range projects {
		svcs, err := p.projects.ServicesFor(projects[i].ID)
		if err != nil {
			slog.Error("load project services failed", "error", err, "id", projects[i].ID)
			continue
		}
		projects[i].Services = svcs
	}

	projectImages, err := p.images.ListActiveByCategory(models.ImageCategoryProjects, 8)
	if err != nil {
		slog.Error("list project images failed", "error", err)
	}
	generalImages, err := p.images.ListActiveByCategory(models.ImageCategoryGeneral, 12)
	if err != nil {
		slog.Error("list general images failed", "error", err)
	}
	patternImages, err := p.images.ListActiveByCategory(models.ImageCategoryPattern, 3)
	if err != nil {
		slog.Error("list pattern images failed", "error", err)
	}
	services, err := p.services.ListActive()
	if err != nil {
		slog.Error("list active services failed", "error", err)
	}

	p.renderAndCache(w, r, cache.ProjectsKey(), "projects", &render.PageData{
		Title:    "Projects",
		Section:  "projects",
		Settings: p.siteSettings(),
		Data: map[string]any{
			"Projects":      projects,
			"ProjectImages": projectImages,
			"GeneralImages": generalImages,
			"PatternImages": patternImages,
			"Services":      services,
		},
	})
}

// ProjectDetail renders one project with its gallery, service tags, and up
// to three related projects sharing a service.
func (p *Public) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		p.NotFound(w, r)
		return
	}
	if p.serveCached(w, r, cache.ProjectKey(id)) {
		return
	}

	project, err := p.projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err, "id", id)
		p.ServerError(w, r)
		return
	}
	if project == nil {
		p.NotFound(w, r)
		return
	}

	if project.Services, err = p.projects.ServicesFor(id); err != nil {
		slog.Error("load project services failed", "error", err, "id", id)
	}
	if project.Gallery, err = p.projects.GalleryFor(id); err != nil {
		slog.Error("load project gallery failed", "error", err, "id", id)
	}
	related, err := p.projects.ListRelated(id, 3)
	if err != nil {
		slog.Error("list related projects failed", "error", err, "id", id)
	}

	p.renderAndCache(w, r, cache.ProjectKey(id), "project_detail", &render.PageData{
		Title:    project.Title,
		Section:  "projects",
		Settings: p.siteSettings(),
		Data: map[string]any{
			"Project": project,
			"Related": related,
		},
	})
}

// Contact renders the contact page. Never cached: the form embeds a
// per-visitor CSRF token and the post-submit flash is per-visitor too.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	contactImages, err := p.images.ListActiveByCategory(models.ImageCategoryContact, 6)
	if err != nil {
		slog.Error("list contact images failed", "error", err)
	}
	patternImages, err := p.images.ListActiveByCategory(models.ImageCategoryPattern, 2)
	if err != nil {
		slog.Error("list pattern images failed", "error", err)
	}
	generalImages, err := p.images.ListActiveByCategory(models.ImageCategoryGeneral, 4)
	if err != nil {
		slog.Error("list general images failed", "error", err)
	}

	p.renderAndCache(w, r, "", "contact", &render.PageData{
		Title:     "Contact",
		Section:   "contact",
		Settings:  p.siteSettings(),
		CSRFToken: middleware.GetCSRFToken(r),
		Flashes:   render.PopFlashes(w, r),
		Data: map[string]any{
			"ContactImages": contactImages,
			"PatternImages": patternImages,
			"GeneralImages": generalImages,
		},
	})
}

// SubmitContact persists a contact submission and kicks off a best-effort
// email notification. The form fields are stored as-is; validation beyond
// browser-side required attributes is a known gap kept for compatibility.
// Persistence failures are fatal to the request, notification failures are
// logged and swallowed.
func (p *Public) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	sub := &models.ContactSubmission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}
	if err := p.submissions.Create(sub); err != nil {
		slog.Error("create contact submission failed", "error", err)
		p.ServerError(w, r)
		return
	}

	if p.mailer != nil {
		// Fire-and-forget: the visitor already has their confirmation, so
		// the send runs detached from the request context.
		go func(sub models.ContactSubmission) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := p.mailer.NotifySubmission(ctx, &sub); err != nil {
				slog.Error("contact notification email failed", "error", err, "submission", sub.ID)
			}
		}(*sub)
	}

	render.SetFlash(w, "success", "Thanks for reaching out! We'll get back to you soon.")
	http.Redirect(w, r, "/contact/", http.StatusSeeOther)
}

// subscribeResponse is the JSON payload for the newsletter stub.
type subscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subscribe is a newsletter signup stub. It stores nothing: it accepts an
// email and replies success if one was provided.
func (p *Public) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	resp := subscribeResponse{}
	if strings.TrimSpace(r.PostFormValue("email")) != "" {
		resp.Success = true
		resp.Message = "Thanks for subscribing!"
	} else {
		resp.Message = "Please provide an email address."
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encode subscribe response failed", "error", err)
	}
}

// About renders the about page: content counts and the technology stack
// grouped by category (tools excluded).
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.AboutKey()) {
		return
	}

	projectCount, err := p.projects.Count()
	if err != nil {
		slog.Error("count projects failed", "error", err)
	}
	serviceCount, err := p.services.CountActive()
	if err != nil {
		slog.Error("count active services failed", "error", err)
	}
	testimonialCount, err := p.testimonials.Count()
	if err != nil {
		slog.Error("count testimonials failed", "error", err)
	}

	type techGroup struct {
		Label        string
		Technologies []models.Technology
	}
	var groups []techGroup
	for _, cat := range aboutTechCategories {
		techs, err := p.technologies.ListActiveByCategory(cat)
		if err != nil {
			slog.Error("list technologies by category failed", "error", err, "category", cat)
			continue
		}
		if len(techs) == 0 {
			continue
		}
		groups = append(groups, techGroup{Label: cat.Label(), Technologies: techs})
	}

	p.renderAndCache(w, r, cache.AboutKey(), "about", &render.PageData{
		Title:    "About",
		Section:  "about",
		Settings: p.siteSettings(),
		Data: map[string]any{
			"ProjectCount":     projectCount,
			"ServiceCount":     serviceCount,
			"TestimonialCount": testimonialCount,
			"TechGroups":       groups,
		},
	})
}

// Favicon redirects /favicon.ico to the configured favicon. Browsers
// request this path regardless of the <link rel="icon"> tag.
func (p *Public) Favicon(w http.ResponseWriter, r *http.Request) {
	st := p.siteSettings()
	if st.Favicon == "" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, st.Favicon, http.StatusFound)
}

// NotFound renders the 404 page with site settings in context.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	page, err := p.renderer.Site("404", &render.PageData{
		Title:    "Page Not Found",
		Settings: p.siteSettings(),
		Data:     map[string]any{},
	})
	if err != nil {
		slog.Error("render 404 failed", "error", err)
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(page)
}

// ServerError renders the 500 page with site settings in context.
func (p *Public) ServerError(w http.ResponseWriter, r *http.Request) {
	page, err := p.renderer.Site("500", &render.PageData{
		Title:    "Server Error",
		Settings: p.siteSettings(),
		Data:     map[string]any{},
	})
	if err != nil {
		slog.Error("render 500 failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write(page)
}
