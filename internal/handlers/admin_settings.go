// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"devportfolio/internal/middleware"
	"devportfolio/internal/models"
	"devportfolio/internal/render"
)

var settingsResource = resourceMeta{
	Slug: "settings", Title: "Site Settings", Singular: "Site Settings",
}

// settingFields builds the form fields for the settings singleton.
func settingFields(st *models.SiteSetting) []formField {
	return []formField{
		{Name: "site_name", Label: "Site Name", Widget: "text", Value: st.SiteName, Required: true},
		{Name: "site_description", Label: "Site Description", Widget: "textarea", Value: st.SiteDescription},
		{Name: "logo", Label: "Logo", Widget: "image", Value: st.Logo},
		{Name: "favicon", Label: "Favicon", Widget: "image", Value: st.Favicon},
		{Name: "default_hero_image", Label: "Default Hero Image", Widget: "image", Value: st.DefaultHeroImage},
		{Name: "contact_background", Label: "Contact Page Background", Widget: "image", Value: st.ContactBackground},
		{Name: "admin_background", Label: "Admin Background", Widget: "image", Value: st.AdminBackground},
	}
}

// SettingsEdit renders the settings form. The singleton is created with
// defaults on first visit, so there is never an "add" flow: once a row
// exists every save merges onto it.
func (a *Admin) SettingsEdit(w http.ResponseWriter, r *http.Request) {
	st, err := a.settings.GetOrCreate()
	if err != nil {
		slog.Error("load site settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	a.renderForm(w, r, settingsResource, "/admin/settings/", false, settingFields(st), nil)
}

// SettingsUpdate saves the settings form. Save merges onto the existing
// row regardless of what identity the form claims, so a concurrent insert
// can never produce a second row through this path.
func (a *Admin) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	st := &models.SiteSetting{
		SiteName:          r.PostFormValue("site_name"),
		SiteDescription:   r.PostFormValue("site_description"),
		Logo:              r.PostFormValue("logo"),
		Favicon:           r.PostFormValue("favicon"),
		DefaultHeroImage:  r.PostFormValue("default_hero_image"),
		ContactBackground: r.PostFormValue("contact_background"),
		AdminBackground:   r.PostFormValue("admin_background"),
	}

	if strings.TrimSpace(st.SiteName) == "" {
		a.renderForm(w, r, settingsResource, "/admin/settings/", false, settingFields(st),
			[]string{"Site name is required."})
		return
	}

	if _, err := a.settings.Save(st); err != nil {
		slog.Error("save site settings failed", "error", err)
		a.renderForm(w, r, settingsResource, "/admin/settings/", false, settingFields(st),
			[]string{"Failed to save settings."})
		return
	}
	a.invalidatePages(r)
	http.Redirect(w, r, "/admin/settings/", http.StatusSeeOther)
}

// --- Contact Submissions ---

// SubmissionsList renders the inbox. Submissions are append-only from the
// public side; the admin can only flip the read flag.
func (a *Admin) SubmissionsList(w http.ResponseWriter, r *http.Request) {
	subs, err := a.submissions.List()
	if err != nil {
		slog.Error("list submissions failed", "error", err)
	}

	a.renderer.Admin(w, r, "submissions", &render.PageData{
		Title:    "Contact Submissions",
		Section:  "submissions",
		Settings: a.siteSettings(),
		Data:     map[string]any{"Submissions": subs},
	})
}

// SubmissionDetail renders one submission and marks it read on first view.
func (a *Admin) SubmissionDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	sub, err := a.submissions.FindByID(id)
	if err != nil || sub == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if !sub.IsRead {
		if err := a.submissions.SetRead(id, true); err != nil {
			slog.Error("mark submission read failed", "error", err, "id", id)
		} else {
			sub.IsRead = true
		}
	}

	a.renderer.Admin(w, r, "submission_detail", &render.PageData{
		Title:    sub.Subject,
		Section:  "submissions",
		Settings: a.siteSettings(),
		Data:     map[string]any{"Submission": sub},
	})
}

// SubmissionSetRead flips the read flag from the detail page buttons.
func (a *Admin) SubmissionSetRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	read := r.PostFormValue("read") == "true"
	if err := a.submissions.SetRead(id, read); err != nil {
		slog.Error("set submission read failed", "error", err, "id", id)
	}
	http.Redirect(w, r, "/admin/submissions/"+id.String(), http.StatusSeeOther)
}

// --- Users ---

// UsersList renders the user management page. Admin role only.
func (a *Admin) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.userStore.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
	}

	a.renderer.Admin(w, r, "users", &render.PageData{
		Title:    "Users",
		Section:  "users",
		Settings: a.siteSettings(),
		Data:     map[string]any{"Users": users},
	})
}

// UserNew renders the new user creation form.
func (a *Admin) UserNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Admin(w, r, "user_form", &render.PageData{
		Title:    "New User",
		Section:  "users",
		Settings: a.siteSettings(),
		Data:     map[string]any{},
	})
}

// UserCreate handles the new user form submission.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	displayName := strings.TrimSpace(r.FormValue("display_name"))
	password := r.FormValue("password")
	role := models.Role(r.FormValue("role"))

	var errMsg string
	switch {
	case email == "":
		errMsg = "Email is required."
	case displayName == "":
		errMsg = "Display name is required."
	case len(password) < 12:
		errMsg = "Password must be at least 12 characters."
	case role != models.RoleAdmin && role != models.RoleEditor:
		errMsg = "Invalid role."
	}

	if errMsg == "" {
		if existing, _ := a.userStore.FindByEmail(email); existing != nil {
			errMsg = "A user with this email already exists."
		}
	}

	if errMsg != "" {
		a.renderer.Admin(w, r, "user_form", &render.PageData{
			Title:    "New User",
			Section:  "users",
			Settings: a.siteSettings(),
			Flashes:  []render.Flash{{Type: "error", Message: errMsg}},
			Data: map[string]any{
				"Email":       email,
				"DisplayName": displayName,
			},
		})
		return
	}

	if _, err := a.userStore.Create(email, password, displayName, role); err != nil {
		slog.Error("create user failed", "error", err)
		a.renderer.Admin(w, r, "user_form", &render.PageData{
			Title:    "New User",
			Section:  "users",
			Settings: a.siteSettings(),
			Flashes:  []render.Flash{{Type: "error", Message: "Failed to create user."}},
			Data: map[string]any{
				"Email":       email,
				"DisplayName": displayName,
			},
		})
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	slog.Info("user created", "admin", sess.Email, "new_user", email, "role", role)
	http.Redirect(w, r, "/admin/users/", http.StatusSeeOther)
}

// UserResetTwoFA resets another user's 2FA, forcing re-enrollment on next
// login. You cannot reset your own.
func (a *Admin) UserResetTwoFA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if targetID == sess.UserID {
		http.Error(w, "Cannot reset your own 2FA", http.StatusForbidden)
		return
	}

	if err := a.userStore.ResetTOTP(targetID); err != nil {
		slog.Error("reset 2fa failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("2fa reset by admin", "admin", sess.Email, "target_user", targetID)
	http.Redirect(w, r, "/admin/users/", http.StatusSeeOther)
}

// UserDelete removes a user account. Self-deletion is blocked.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if targetID == sess.UserID {
		http.Error(w, "Cannot delete your own account", http.StatusForbidden)
		return
	}

	if err := a.userStore.Delete(targetID); err != nil {
		slog.Error("delete user failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("user deleted", "admin", sess.Email, "target_user", targetID)
	http.Redirect(w, r, "/admin/users/", http.StatusSeeOther)
}
