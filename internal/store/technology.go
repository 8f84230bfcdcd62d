// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devportfolio/internal/models"
)

// TechnologyStore handles all technology-stack database operations.
type TechnologyStore struct {
	db *sql.DB
}

// NewTechnologyStore creates a new TechnologyStore with the given database connection.
func NewTechnologyStore(db *sql.DB) *TechnologyStore {
	return &TechnologyStore{db: db}
}

const technologyColumns = `id, name, icon, category, proficiency, sort_order, is_active`

func scanTechnology(scanner interface{ Scan(...any) error }) (*models.Technology, error) {
	var t models.Technology
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Icon, &t.Category, &t.Proficiency, &t.SortOrder, &t.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTechnologies(rows *sql.Rows) ([]models.Technology, error) {
	defer rows.Close()
	var items []models.Technology
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// List returns every technology in default order (category, sort order,
// name), for the admin panel.
func (s *TechnologyStore) List() ([]models.Technology, error) {
	rows, err := s.db.Query(`
		SELECT ` + technologyColumns + `
		FROM technologies
		ORDER BY category ASC, sort_order ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	return collectTechnologies(rows)
}

// ListActive returns active technologies in default order. A limit of 0
// means no cap (the services page shows the whole stack).
func (s *TechnologyStore) ListActive(limit int) ([]models.Technology, error) {
	q := `
		SELECT ` + technologyColumns + `
		FROM technologies
		WHERE is_active = TRUE
		ORDER BY category ASC, sort_order ASC, name ASC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(q+` LIMIT $1`, limit)
	} else {
		rows, err = s.db.Query(q)
	}
	if err != nil {
		return nil, fmt.Errorf("list active technologies: %w", err)
	}
	return collectTechnologies(rows)
}

// ListActiveByCategory returns active technologies of one category, for the
// grouped sections on the about page.
func (s *TechnologyStore) ListActiveByCategory(cat models.TechCategory) ([]models.Technology, error) {
	rows, err := s.db.Query(`
		SELECT `+technologyColumns+`
		FROM technologies
		WHERE category = $1 AND is_active = TRUE
		ORDER BY sort_order ASC, name ASC
	`, cat)
	if err != nil {
		return nil, fmt.Errorf("list technologies by category: %w", err)
	}
	return collectTechnologies(rows)
}

// FindByID retrieves a technology by its UUID. Returns nil if not found.
func (s *TechnologyStore) FindByID(id uuid.UUID) (*models.Technology, error) {
	row := s.db.QueryRow(`SELECT `+technologyColumns+` FROM technologies WHERE id = $1`, id)
	t, err := scanTechnology(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find technology by id: %w", err)
	}
	return t, nil
}

// Create inserts a new technology and returns it with the generated ID.
func (s *TechnologyStore) Create(t *models.Technology) (*models.Technology, error) {
	row := s.db.QueryRow(`
		INSERT INTO technologies (name, icon, category, proficiency, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+technologyColumns,
		t.Name, t.Icon, t.Category, t.Proficiency, t.SortOrder, t.IsActive,
	)
	created, err := scanTechnology(row)
	if err != nil {
		return nil, fmt.Errorf("create technology: %w", err)
	}
	return created, nil
}

// Update modifies an existing technology.
func (s *TechnologyStore) Update(t *models.Technology) error {
	_, err := s.db.Exec(`
		UPDATE technologies SET
			name = $1, icon = $2, category = $3, proficiency = $4,
			sort_order = $5, is_active = $6
		WHERE id = $7
	`, t.Name, t.Icon, t.Category, t.Proficiency, t.SortOrder, t.IsActive, t.ID)
	if err != nil {
		return fmt.Errorf("update technology: %w", err)
	}
	return nil
}

// Delete removes a technology by ID.
func (s *TechnologyStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM technologies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete technology: %w", err)
	}
	return nil
}

// Count returns the total number of technologies.
func (s *TechnologyStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM technologies`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count technologies: %w", err)
	}
	return count, nil
}
