// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"devportfolio/internal/models"
)

// SiteSettingStore manages the singleton site configuration row.
// Invariant: the site_settings table holds at most one row. Save merges
// an insert attempt into the existing row rather than creating a second.
type SiteSettingStore struct {
	db *sql.DB
}

// NewSiteSettingStore returns a new SiteSettingStore backed by the given database.
func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

const settingColumns = `id, site_name, site_description, logo, favicon,
	default_hero_image, contact_background, admin_background, created_at, updated_at`

func scanSetting(scanner interface{ Scan(...any) error }) (*models.SiteSetting, error) {
	var st models.SiteSetting
	err := scanner.Scan(
		&st.ID, &st.SiteName, &st.SiteDescription, &st.Logo, &st.Favicon,
		&st.DefaultHeroImage, &st.ContactBackground, &st.AdminBackground,
		&st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Get returns the settings row, or nil when none exists yet.
func (s *SiteSettingStore) Get() (*models.SiteSetting, error) {
	row := s.db.QueryRow(`
		SELECT ` + settingColumns + `
		FROM site_settings ORDER BY created_at ASC LIMIT 1
	`)
	st, err := scanSetting(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site settings: %w", err)
	}
	return st, nil
}

// GetOrCreate returns the settings row, creating it with defaults when the
// table is empty. Every page handler calls this; it is idempotent and never
// produces a second row.
func (s *SiteSettingStore) GetOrCreate() (*models.SiteSetting, error) {
	st, err := s.Get()
	if err != nil {
		return nil, err
	}
	if st != nil {
		return st, nil
	}

	row := s.db.QueryRow(`
		INSERT INTO site_settings (site_name, site_description)
		VALUES ($1, $2)
		RETURNING `+settingColumns,
		models.DefaultSiteName, models.DefaultSiteDescription,
	)
	created, err := scanSetting(row)
	if err != nil {
		return nil, fmt.Errorf("create default site settings: %w", err)
	}
	return created, nil
}

// Save persists settings with upsert-as-singleton semantics: when a row
// already exists, every mutable field of the incoming value is copied onto
// that row and the incoming identity is discarded. A fresh row is inserted
// only when the table is empty. The read-then-write pair is not atomic
// against concurrent creators; that window is an accepted risk.
func (s *SiteSettingStore) Save(st *models.SiteSetting) (*models.SiteSetting, error) {
	existing, err := s.Get()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		row := s.db.QueryRow(`
			INSERT INTO site_settings (site_name, site_description, logo, favicon,
				default_hero_image, contact_background, admin_background)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+settingColumns,
			st.SiteName, st.SiteDescription, st.Logo, st.Favicon,
			st.DefaultHeroImage, st.ContactBackground, st.AdminBackground,
		)
		created, err := scanSetting(row)
		if err != nil {
			return nil, fmt.Errorf("insert site settings: %w", err)
		}
		return created, nil
	}

	row := s.db.QueryRow(`
		UPDATE site_settings SET
			site_name = $1, site_description = $2, logo = $3, favicon = $4,
			default_hero_image = $5, contact_background = $6,
			admin_background = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING `+settingColumns,
		st.SiteName, st.SiteDescription, st.Logo, st.Favicon,
		st.DefaultHeroImage, st.ContactBackground, st.AdminBackground,
		existing.ID,
	)
	updated, err := scanSetting(row)
	if err != nil {
		return nil, fmt.Errorf("merge site settings: %w", err)
	}
	return updated, nil
}

// Count returns the number of settings rows. The admin panel uses this to
// block the add action once the singleton exists.
func (s *SiteSettingStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM site_settings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count site settings: %w", err)
	}
	return count, nil
}
