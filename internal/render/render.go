// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin interface. Public pages render to a byte slice so handlers can
// store the result in the page cache; admin pages render directly to the
// response.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"devportfolio/internal/middleware"
	"devportfolio/internal/models"
	"devportfolio/internal/session"
)

//go:embed templates/site/*.html templates/admin/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string                // Page title for <title> tag
	Section   string                // Active nav section (e.g., "home", "projects")
	Settings  *models.SiteSetting   // Site-wide configuration, set on every page
	Session   *session.Data         // Current user session (nil if unauthenticated)
	CSRFToken string                // CSRF token for forms
	Data      map[string]any        // Page-specific data
	Flashes   []Flash               // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	site  map[string]*template.Template
	admin map[string]*template.Template
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the admin layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

var funcMap = template.FuncMap{
	// activeClass highlights the current nav section.
	"activeClass": func(current, target string) string {
		if current == target {
			return "active"
		}
		return ""
	},
	// deref safely dereferences a string pointer for use in templates.
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"lower": strings.ToLower,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its set's base layout.
func New() (*Renderer, error) {
	r := &Renderer{
		site:  make(map[string]*template.Template),
		admin: make(map[string]*template.Template),
	}

	if err := r.parseSet(r.site, "site", nil); err != nil {
		return nil, err
	}
	if err := r.parseSet(r.admin, "admin", standaloneTemplates); err != nil {
		return nil, err
	}
	return r, nil
}

// parseSet parses every page template in templates/<dir>, pairing each with
// the set's base.html unless listed as standalone.
func (rn *Renderer) parseSet(dst map[string]*template.Template, dir string, standalone map[string]bool) error {
	entries, err := templateFS.ReadDir("templates/" + dir)
	if err != nil {
		return fmt.Errorf("read %s templates: %w", dir, err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}
		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error
		if standalone[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(funcMap).ParseFS(
				templateFS, "templates/"+dir+"/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(funcMap).ParseFS(
				templateFS, "templates/"+dir+"/base.html", "templates/"+dir+"/"+name,
			)
		}
		if parseErr != nil {
			return fmt.Errorf("parse template %s/%s: %w", dir, name, parseErr)
		}
		dst[tmplName] = tmpl
	}
	return nil
}

// Site renders a public page to a byte slice so the caller can both write
// it and store it in the page cache.
func (rn *Renderer) Site(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.site[name]
	if !ok {
		return nil, fmt.Errorf("site template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute site template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Admin renders an admin page to the response, injecting the CSRF token and
// session from the request.
func (rn *Renderer) Admin(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.GetCSRFToken(r)
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}
	if err := tmpl.ExecuteTemplate(w, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
