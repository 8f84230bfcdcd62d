// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Default values used when the settings row is created lazily.
const (
	DefaultSiteName        = "DevPortfolio"
	DefaultSiteDescription = "Professional Web Development Services"
)

// SiteSetting holds site-wide configuration. At most one row ever exists:
// an insert attempt while a row is present merges the incoming fields onto
// the existing row instead of creating a second one.
type SiteSetting struct {
	ID                uuid.UUID `json:"id"`
	SiteName          string    `json:"site_name"`
	SiteDescription   string    `json:"site_description"`
	Logo              string    `json:"logo"`
	Favicon           string    `json:"favicon"`
	DefaultHeroImage  string    `json:"default_hero_image"`
	ContactBackground string    `json:"contact_background"`
	AdminBackground   string    `json:"admin_background"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
