// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devportfolio/internal/models"
)

// TestimonialStore handles all testimonial database operations.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, client_name, company, content, image, rating,
	is_featured, sort_order, created_at`

func scanTestimonial(scanner interface{ Scan(...any) error }) (*models.Testimonial, error) {
	var t models.Testimonial
	err := scanner.Scan(
		&t.ID, &t.ClientName, &t.Company, &t.Content, &t.Image, &t.Rating,
		&t.IsFeatured, &t.SortOrder, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTestimonials(rows *sql.Rows) ([]models.Testimonial, error) {
	defer rows.Close()
	var items []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// List returns every testimonial in display order: sort order ascending,
// ties broken by newest first.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	rows, err := s.db.Query(`
		SELECT ` + testimonialColumns + `
		FROM testimonials
		ORDER BY sort_order ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return collectTestimonials(rows)
}

// ListFeatured returns up to limit featured testimonials for the homepage.
func (s *TestimonialStore) ListFeatured(limit int) ([]models.Testimonial, error) {
	rows, err := s.db.Query(`
		SELECT `+testimonialColumns+`
		FROM testimonials
		WHERE is_featured = TRUE
		ORDER BY sort_order ASC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured testimonials: %w", err)
	}
	return collectTestimonials(rows)
}

// FindByID retrieves a testimonial by its UUID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	row := s.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id)
	t, err := scanTestimonial(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

// Create inserts a new testimonial and returns it with the generated ID.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	row := s.db.QueryRow(`
		INSERT INTO testimonials (client_name, company, content, image, rating, is_featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+testimonialColumns,
		t.ClientName, t.Company, t.Content, t.Image, t.Rating, t.IsFeatured, t.SortOrder,
	)
	created, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return created, nil
}

// Update modifies an existing testimonial.
func (s *TestimonialStore) Update(t *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials SET
			client_name = $1, company = $2, content = $3, image = $4,
			rating = $5, is_featured = $6, sort_order = $7
		WHERE id = $8
	`, t.ClientName, t.Company, t.Content, t.Image, t.Rating, t.IsFeatured,
		t.SortOrder, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

// Count returns the total number of testimonials, used as the client count
// on the about page.
func (s *TestimonialStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM testimonials`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count testimonials: %w", err)
	}
	return count, nil
}
