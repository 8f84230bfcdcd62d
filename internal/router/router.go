// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Public
// pages keep their trailing-slash canonical URLs; bare paths redirect.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"devportfolio/internal/handlers"
	"devportfolio/internal/middleware"
	"devportfolio/internal/session"
	"devportfolio/web"
)

// formRateLimit caps public form posts per client IP.
const (
	formRateLimit  = 10
	formRateWindow = time.Minute
)

// New creates the configured chi router with all middleware and route
// groups wired up.
func New(sessionStore *session.Store, secureCookies bool, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) chi.Router {
	r := chi.NewRouter()
	csrf := middleware.NewCSRF(secureCookies)

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check. No auth, no CSRF.
	r.Get("/health", healthHandler)

	r.Get("/favicon.ico", public.Favicon)

	// Static assets from the embedded filesystem.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("static assets missing from embed: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	formLimiter := middleware.NewRateLimiter(formRateLimit, formRateWindow)

	// Public site. Canonical URLs carry a trailing slash; the bare form
	// 301s to it.
	r.Group(func(r chi.Router) {
		r.Use(csrf)

		r.Get("/", public.Home)

		r.Get("/services", redirectSlash("/services/"))
		r.Get("/services/", public.Services)
		r.Get("/services/{id}", redirectServiceDetail)
		r.Get("/services/{id}/", public.ServiceDetail)

		r.Get("/projects", redirectSlash("/projects/"))
		r.Get("/projects/", public.Projects)
		r.Get("/projects/{id}", redirectProjectDetail)
		r.Get("/projects/{id}/", public.ProjectDetail)

		r.Get("/about", redirectSlash("/about/"))
		r.Get("/about/", public.About)

		r.Get("/contact", redirectSlash("/contact/"))
		r.Get("/contact/", public.Contact)
		r.With(formLimiter.Middleware).Post("/contact/", public.SubmitContact)
		r.With(formLimiter.Middleware).Post("/subscribe/", public.Subscribe)
	})

	// Admin back office.
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrf)

		// Auth pages, reachable without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA pages require auth but not yet completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Post("/2fa/setup", auth.TwoFAVerifySubmit)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated, 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)

			crudRoutes(r, "/services", crudHandlers{
				list: admin.ServicesList, newForm: admin.ServiceNew, create: admin.ServiceCreate,
				edit: admin.ServiceEdit, update: admin.ServiceUpdate, del: admin.ServiceDelete,
			})
			crudRoutes(r, "/projects", crudHandlers{
				list: admin.ProjectsList, newForm: admin.ProjectNew, create: admin.ProjectCreate,
				edit: admin.ProjectEdit, update: admin.ProjectUpdate, del: admin.ProjectDelete,
			})
			crudRoutes(r, "/images", crudHandlers{
				list: admin.ImagesList, newForm: admin.ImageNew, create: admin.ImageCreate,
				edit: admin.ImageEdit, update: admin.ImageUpdate, del: admin.ImageDelete,
			})
			crudRoutes(r, "/testimonials", crudHandlers{
				list: admin.TestimonialsList, newForm: admin.TestimonialNew, create: admin.TestimonialCreate,
				edit: admin.TestimonialEdit, update: admin.TestimonialUpdate, del: admin.TestimonialDelete,
			})
			crudRoutes(r, "/technologies", crudHandlers{
				list: admin.TechnologiesList, newForm: admin.TechnologyNew, create: admin.TechnologyCreate,
				edit: admin.TechnologyEdit, update: admin.TechnologyUpdate, del: admin.TechnologyDelete,
			})

			// Settings singleton: edit-only, no add or delete routes.
			r.Get("/settings/", admin.SettingsEdit)
			r.Post("/settings/", admin.SettingsUpdate)

			// Submissions: read and mark-read only.
			r.Get("/submissions/", admin.SubmissionsList)
			r.Get("/submissions/{id}", admin.SubmissionDetail)
			r.Post("/submissions/{id}/read", admin.SubmissionSetRead)

			// Media library.
			r.Get("/media/", admin.MediaLibrary)
			r.Post("/media/upload", admin.MediaUpload)
			r.Post("/media/{id}/delete", admin.MediaDelete)

			// User management, admin role only.
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.UsersList)
				r.Get("/new", admin.UserNew)
				r.Post("/new", admin.UserCreate)
				r.Post("/{id}/reset-2fa", admin.UserResetTwoFA)
				r.Post("/{id}/delete", admin.UserDelete)
			})
		})
	})

	// Everything unmatched renders the site 404 with settings in context.
	r.NotFound(public.NotFound)

	return r
}

// crudHandlers bundles the six handlers every managed resource exposes.
type crudHandlers struct {
	list, newForm, create, edit, update, del http.HandlerFunc
}

// crudRoutes mounts the standard resource routes under prefix.
func crudRoutes(r chi.Router, prefix string, h crudHandlers) {
	r.Route(prefix, func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/new", h.newForm)
		r.Post("/new", h.create)
		r.Get("/{id}", h.edit)
		r.Post("/{id}", h.update)
		r.Post("/{id}/delete", h.del)
	})
}

// redirectSlash 301s a bare path to its trailing-slash canonical form.
func redirectSlash(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}
}

func redirectServiceDetail(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/services/"+chi.URLParam(r, "id")+"/", http.StatusMovedPermanently)
}

func redirectProjectDetail(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/projects/"+chi.URLParam(r, "id")+"/", http.StatusMovedPermanently)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
