// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestMediaLibraryWithoutStorage(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/media/", nil)
	sess := testSession(uuid.New(), "admin@example.test", "admin", true)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Admin.MediaLibrary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// Storage is nil in the test env; the page should say so rather than
	// offer an upload form.
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Error("expected a storage-not-configured notice")
	}
}

func TestMediaUploadWithoutStorageRedirects(t *testing.T) {
	env := newTestEnv(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("\x89PNG\r\n\x1a\nnot really a png"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	sess := testSession(uuid.New(), "admin@example.test", "admin", true)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Admin.MediaUpload(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/media/" {
		t.Errorf("Location = %q, want /admin/media/", loc)
	}
}

func TestMediaDeleteUnknownID(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/media/"+id.String()+"/delete", nil)
	sess := testSession(uuid.New(), "admin@example.test", "admin", true)
	req = withChiURLParamAndSession(req, "id", id.String(), sess)
	rec := httptest.NewRecorder()
	env.Admin.MediaDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestExtensionFromType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
		{"image/svg+xml", ".svg"},
		{"application/pdf", ""},
	}
	for _, tt := range tests {
		if got := extensionFromType(tt.contentType); got != tt.want {
			t.Errorf("extensionFromType(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}
