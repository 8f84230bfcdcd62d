// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package store provides database access for all DevPortfolio entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devportfolio/internal/models"
)

// ServiceStore handles all service-related database operations.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

// serviceColumns lists the columns selected in service queries.
const serviceColumns = `id, name, description, price, price_description, icon,
	featured_image, background_image, sort_order, is_active, is_featured,
	created_at, updated_at`

// scanService scans a service row from the result set.
func scanService(scanner interface{ Scan(...any) error }) (*models.Service, error) {
	var s models.Service
	err := scanner.Scan(
		&s.ID, &s.Name, &s.Description, &s.Price, &s.PriceDescription, &s.Icon,
		&s.FeaturedImage, &s.BackgroundImage, &s.SortOrder, &s.IsActive,
		&s.IsFeatured, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// collectServices drains a result set into a slice.
func collectServices(rows *sql.Rows) ([]models.Service, error) {
	defer rows.Close()
	var items []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

// ListActive returns all active services in display order: sort order
// ascending, ties broken by ascending creation time.
func (s *ServiceStore) ListActive() ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT ` + serviceColumns + `
		FROM services
		WHERE is_active = TRUE
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	return collectServices(rows)
}

// ListFeatured returns up to limit services that are both active and
// featured, for the homepage.
func (s *ServiceStore) ListFeatured(limit int) ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT `+serviceColumns+`
		FROM services
		WHERE is_active = TRUE AND is_featured = TRUE
		ORDER BY sort_order ASC, created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured services: %w", err)
	}
	return collectServices(rows)
}

// List returns every service regardless of flags, for the admin panel.
func (s *ServiceStore) List() ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT ` + serviceColumns + `
		FROM services
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return collectServices(rows)
}

// FindByID retrieves a service by its UUID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	svc, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return svc, nil
}

// FindActiveByID retrieves a service that is also active. Detail pages use
// this so inactive services 404 instead of rendering.
func (s *ServiceStore) FindActiveByID(id uuid.UUID) (*models.Service, error) {
	row := s.db.QueryRow(`
		SELECT `+serviceColumns+`
		FROM services WHERE id = $1 AND is_active = TRUE
	`, id)
	svc, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active service by id: %w", err)
	}
	return svc, nil
}

// Create inserts a new service and returns it with the generated ID.
func (s *ServiceStore) Create(svc *models.Service) (*models.Service, error) {
	row := s.db.QueryRow(`
		INSERT INTO services (name, description, price, price_description, icon,
			featured_image, background_image, sort_order, is_active, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+serviceColumns,
		svc.Name, svc.Description, svc.Price, svc.PriceDescription, svc.Icon,
		svc.FeaturedImage, svc.BackgroundImage, svc.SortOrder, svc.IsActive, svc.IsFeatured,
	)
	created, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return created, nil
}

// Update modifies an existing service.
func (s *ServiceStore) Update(svc *models.Service) error {
	_, err := s.db.Exec(`
		UPDATE services SET
			name = $1, description = $2, price = $3, price_description = $4,
			icon = $5, featured_image = $6, background_image = $7,
			sort_order = $8, is_active = $9, is_featured = $10, updated_at = NOW()
		WHERE id = $11
	`, svc.Name, svc.Description, svc.Price, svc.PriceDescription, svc.Icon,
		svc.FeaturedImage, svc.BackgroundImage, svc.SortOrder, svc.IsActive,
		svc.IsFeatured, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete removes a service by ID.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// Count returns the total number of services.
func (s *ServiceStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return count, nil
}

// CountActive returns the number of active services, for the about page.
func (s *ServiceStore) CountActive() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM services WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active services: %w", err)
	}
	return count, nil
}
