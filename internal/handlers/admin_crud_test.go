// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"devportfolio/internal/cache"
	"devportfolio/internal/models"
)

// adminPost builds an authenticated form POST for admin handler tests.
func adminPost(t *testing.T, path string, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	sess := testSession(uuid.New(), "admin@example.test", "admin", true)
	return req.WithContext(ctxWithSession(req.Context(), sess))
}

func TestServiceCreate(t *testing.T) {
	env := newTestEnv(t)
	const name = "Test CRUD Service"
	cleanServices(t, env.DB, name)
	t.Cleanup(func() { cleanServices(t, env.DB, name) })

	// Seed the cache so we can observe invalidation.
	ctx := context.Background()
	env.PageCache.Set(ctx, cache.HomeKey(), []byte("stale"))

	form := url.Values{
		"name":        {name},
		"description": {"Full-stack development"},
		"price":       {"1500"},
		"sort_order":  {"3"},
		"is_active":   {"true"},
		"is_featured": {"true"},
	}
	rec := httptest.NewRecorder()
	env.Admin.ServiceCreate(rec, adminPost(t, "/admin/services/new", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303; body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/services/" {
		t.Errorf("Location = %q, want /admin/services/", loc)
	}

	var count int
	if err := env.DB.QueryRow("SELECT COUNT(*) FROM services WHERE name = $1", name).Scan(&count); err != nil {
		t.Fatalf("count services: %v", err)
	}
	if count != 1 {
		t.Errorf("service count = %d, want 1", count)
	}

	// Any admin write clears the page cache.
	if _, ok := env.PageCache.Get(ctx, cache.HomeKey()); ok {
		t.Error("page cache was not invalidated on create")
	}
}

func TestServiceCreateRejectsEmptyName(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{
		"name":        {"   "},
		"description": {"desc"},
	}
	rec := httptest.NewRecorder()
	env.Admin.ServiceCreate(rec, adminPost(t, "/admin/services/new", form))

	// Validation failures re-render the form instead of redirecting.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (re-rendered form)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Name is required") {
		t.Error("expected a name-required validation message in the form")
	}
}

func TestServiceUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	const name = "Test Update Service"
	cleanServices(t, env.DB, name, name+" v2")
	t.Cleanup(func() { cleanServices(t, env.DB, name, name+" v2") })

	svc, err := env.Services.Create(&models.Service{Name: name, Description: "d", IsActive: true})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	form := url.Values{
		"name":        {name + " v2"},
		"description": {"updated"},
		"is_active":   {"true"},
	}
	req := adminPost(t, "/admin/services/"+svc.ID.String(), form)
	req = withChiURLParam(req, "id", svc.ID.String())
	rec := httptest.NewRecorder()
	env.Admin.ServiceUpdate(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("update status = %d, want 303", rec.Code)
	}
	updated, err := env.Services.FindByID(svc.ID)
	if err != nil || updated == nil {
		t.Fatalf("reload service: %v", err)
	}
	if updated.Name != name+" v2" {
		t.Errorf("name = %q after update", updated.Name)
	}

	req = adminPost(t, "/admin/services/"+svc.ID.String()+"/delete", url.Values{})
	req = withChiURLParam(req, "id", svc.ID.String())
	rec = httptest.NewRecorder()
	env.Admin.ServiceDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d, want 303", rec.Code)
	}
	gone, err := env.Services.FindByID(svc.ID)
	if err != nil {
		t.Fatalf("reload after delete: %v", err)
	}
	if gone != nil {
		t.Error("service still present after delete")
	}
}

func TestTestimonialCreateRejectsRatingOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{
		"client_name": {"Jo Client"},
		"content":     {"Great work"},
		"rating":      {"7"},
	}
	rec := httptest.NewRecorder()
	env.Admin.TestimonialCreate(rec, adminPost(t, "/admin/testimonials/new", form))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (re-rendered form)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Rating") {
		t.Error("expected a rating validation message in the form")
	}
}

func TestTechnologyCreateRejectsProficiencyOutOfRange(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{
		"name":        {"Test Tech"},
		"category":    {"backend"},
		"proficiency": {"150"},
	}
	rec := httptest.NewRecorder()
	env.Admin.TechnologyCreate(rec, adminPost(t, "/admin/technologies/new", form))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (re-rendered form)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Proficiency") {
		t.Error("expected a proficiency validation message in the form")
	}
}

func TestImageCreateRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{
		"title":    {"Test Image"},
		"image":    {"https://cdn.example.test/x.jpg"},
		"category": {"not-a-category"},
	}
	rec := httptest.NewRecorder()
	env.Admin.ImageCreate(rec, adminPost(t, "/admin/images/new", form))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (re-rendered form)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "category") &&
		!strings.Contains(rec.Body.String(), "Category") {
		t.Error("expected a category validation message in the form")
	}
}

func TestSettingsUpdateMergesOntoSingleton(t *testing.T) {
	env := newTestEnv(t)

	before, err := env.Settings.GetOrCreate()
	if err != nil {
		t.Fatalf("settings GetOrCreate: %v", err)
	}
	t.Cleanup(func() { env.Settings.Save(before) })

	form := url.Values{
		"site_name":        {"Merged Site Name"},
		"site_description": {"Merged description"},
	}
	rec := httptest.NewRecorder()
	env.Admin.SettingsUpdate(rec, adminPost(t, "/admin/settings/", form))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303; body: %s", rec.Code, rec.Body.String())
	}

	after, err := env.Settings.Get()
	if err != nil || after == nil {
		t.Fatalf("reload settings: %v", err)
	}
	if after.SiteName != "Merged Site Name" {
		t.Errorf("SiteName = %q, want merged value", after.SiteName)
	}
	// The update merges onto the existing row; the singleton keeps its
	// identity.
	if after.ID != before.ID {
		t.Errorf("settings row ID changed: %s -> %s", before.ID, after.ID)
	}

	var count int
	if err := env.DB.QueryRow("SELECT COUNT(*) FROM site_settings").Scan(&count); err != nil {
		t.Fatalf("count settings rows: %v", err)
	}
	if count != 1 {
		t.Errorf("site_settings rows = %d, want exactly 1", count)
	}
}

func TestSubmissionDetailMarksRead(t *testing.T) {
	env := newTestEnv(t)
	const email = "reader@example.test"
	cleanSubmissions(t, env.DB, email)
	t.Cleanup(func() { cleanSubmissions(t, env.DB, email) })

	sub := &models.ContactSubmission{Name: "N", Email: email, Subject: "S", Message: "M"}
	if err := env.Submissions.Create(sub); err != nil {
		t.Fatalf("create submission: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/submissions/"+sub.ID.String(), nil)
	sess := testSession(uuid.New(), "admin@example.test", "admin", true)
	req = withChiURLParamAndSession(req, "id", sub.ID.String(), sess)
	rec := httptest.NewRecorder()
	env.Admin.SubmissionDetail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	reloaded, err := env.Submissions.FindByID(sub.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload submission: %v", err)
	}
	if !reloaded.IsRead {
		t.Error("viewing a submission should mark it read")
	}

	// Flip it back to unread through the explicit toggle.
	form := url.Values{"read": {"false"}}
	preq := adminPost(t, "/admin/submissions/"+sub.ID.String()+"/read", form)
	preq = withChiURLParam(preq, "id", sub.ID.String())
	prec := httptest.NewRecorder()
	env.Admin.SubmissionSetRead(prec, preq)

	if prec.Code != http.StatusSeeOther {
		t.Fatalf("toggle status = %d, want 303", prec.Code)
	}
	reloaded, _ = env.Submissions.FindByID(sub.ID)
	if reloaded.IsRead {
		t.Error("submission should be unread after toggle")
	}
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	sess := testSession(uuid.New(), "admin@example.test", "admin", true)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Admin.Dashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
}
