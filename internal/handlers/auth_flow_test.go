// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"

	"devportfolio/internal/models"
	"devportfolio/internal/session"
)

const (
	testUserEmail    = "auth-flow@example.test"
	testUserPassword = "correct horse battery staple"
)

func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM users WHERE email = $1", e)
	}
}

func TestLoginPageAnonymous(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rec := httptest.NewRecorder()
	env.Auth.LoginPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "password") {
		t.Error("login page should contain a password field")
	}
}

func TestLoginSubmitInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{
		"email":    {"nobody@example.test"},
		"password": {"wrong"},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (re-rendered login)", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Error("expected an invalid-credentials message")
	}
	// No session may be issued on a failed login.
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			t.Error("session cookie set on failed login")
		}
	}
}

func TestLoginSubmitValidCredentialsRedirectsTo2FA(t *testing.T) {
	env := newTestEnv(t)
	cleanUsers(t, env.DB, testUserEmail)
	t.Cleanup(func() { cleanUsers(t, env.DB, testUserEmail) })

	if _, err := env.Users.Create(testUserEmail, testUserPassword, "Auth Flow", models.RoleEditor); err != nil {
		t.Fatalf("create user: %v", err)
	}

	form := url.Values{
		"email":    {testUserEmail},
		"password": {testUserPassword},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	// A fresh user has no TOTP secret, so login routes into enrollment.
	if loc := rec.Header().Get("Location"); loc != "/admin/2fa/setup" {
		t.Errorf("Location = %q, want /admin/2fa/setup", loc)
	}

	var sessionCookie string
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c.Value
		}
	}
	if sessionCookie == "" {
		t.Fatal("no session cookie issued on successful login")
	}
}

func TestTwoFAEnrollmentAndVerify(t *testing.T) {
	env := newTestEnv(t)
	cleanUsers(t, env.DB, testUserEmail)
	t.Cleanup(func() { cleanUsers(t, env.DB, testUserEmail) })

	user, err := env.Users.Create(testUserEmail, testUserPassword, "Auth Flow", models.RoleEditor)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	sess := testSession(user.ID, user.Email, string(user.Role), false)

	// Setup page stores a secret and renders the QR.
	req := httptest.NewRequest(http.MethodGet, "/admin/2fa/setup", nil)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Auth.TwoFASetupPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("setup status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "data:image/png;base64,") {
		t.Error("setup page should embed the QR code as a data URI")
	}

	enrolled, err := env.Users.FindByID(user.ID)
	if err != nil || enrolled == nil || enrolled.TOTPSecret == nil {
		t.Fatalf("expected a stored TOTP secret after setup, got user %+v err %v", enrolled, err)
	}
	if enrolled.TOTPEnabled {
		t.Error("TOTP must not be enabled before the first valid code")
	}

	// A wrong code during enrollment re-renders setup with the same secret.
	form := url.Values{"code": {"000000"}}
	req = httptest.NewRequest(http.MethodPost, "/admin/2fa/verify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec = httptest.NewRecorder()
	env.Auth.TwoFAVerifySubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("bad-code status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), *enrolled.TOTPSecret) {
		t.Error("re-rendered setup page should show the same secret")
	}

	// A valid code enables TOTP. Session update needs a live session in
	// Valkey, so create one for the request.
	code, err := totp.GenerateCode(*enrolled.TOTPSecret, time.Now())
	if err != nil {
		t.Fatalf("generate totp code: %v", err)
	}
	form = url.Values{"code": {code}}
	req = httptest.NewRequest(http.MethodPost, "/admin/2fa/verify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	seedRec := httptest.NewRecorder()
	token, err := env.Sessions.Create(req.Context(), seedRec, sess)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec = httptest.NewRecorder()
	env.Auth.TwoFAVerifySubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("good-code status = %d, want 303; body: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/" {
		t.Errorf("Location = %q, want /admin/", loc)
	}

	verified, _ := env.Users.FindByID(user.ID)
	if verified == nil || !verified.TOTPEnabled {
		t.Error("TOTP should be enabled after the first valid code")
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rec := httptest.NewRecorder()
	env.Auth.Logout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
}
