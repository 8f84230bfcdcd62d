// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devportfolio/internal/models"
)

// ImageStore handles all portfolio-image database operations.
type ImageStore struct {
	db *sql.DB
}

// NewImageStore creates a new ImageStore with the given database connection.
func NewImageStore(db *sql.DB) *ImageStore {
	return &ImageStore{db: db}
}

// imageColumns lists the columns selected in portfolio image queries.
const imageColumns = `id, title, image, category, description, is_active,
	sort_order, created_at`

// scanImage scans a portfolio image row from the result set.
func scanImage(scanner interface{ Scan(...any) error }) (*models.PortfolioImage, error) {
	var img models.PortfolioImage
	err := scanner.Scan(
		&img.ID, &img.Title, &img.Image, &img.Category, &img.Description,
		&img.IsActive, &img.SortOrder, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// collectImages drains a result set into a slice.
func collectImages(rows *sql.Rows) ([]models.PortfolioImage, error) {
	defer rows.Close()
	var items []models.PortfolioImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan portfolio image: %w", err)
		}
		items = append(items, *img)
	}
	return items, rows.Err()
}

// List returns every image in default order (category, sort order, newest
// first), for the admin panel.
func (s *ImageStore) List() ([]models.PortfolioImage, error) {
	rows, err := s.db.Query(`
		SELECT ` + imageColumns + `
		FROM portfolio_images
		ORDER BY category ASC, sort_order ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list portfolio images: %w", err)
	}
	return collectImages(rows)
}

// ListActiveByCategory returns up to limit active images of the given
// category, ordered by sort order then newest first.
func (s *ImageStore) ListActiveByCategory(cat models.ImageCategory, limit int) ([]models.PortfolioImage, error) {
	rows, err := s.db.Query(`
		SELECT `+imageColumns+`
		FROM portfolio_images
		WHERE category = $1 AND is_active = TRUE
		ORDER BY sort_order ASC, created_at DESC
		LIMIT $2
	`, cat, limit)
	if err != nil {
		return nil, fmt.Errorf("list images by category: %w", err)
	}
	return collectImages(rows)
}

// FirstActiveByCategory returns the first active image of a category by the
// entity's default ordering, or nil when the section has no image.
func (s *ImageStore) FirstActiveByCategory(cat models.ImageCategory) (*models.PortfolioImage, error) {
	row := s.db.QueryRow(`
		SELECT `+imageColumns+`
		FROM portfolio_images
		WHERE category = $1 AND is_active = TRUE
		ORDER BY sort_order ASC, created_at DESC
		LIMIT 1
	`, cat)
	img, err := scanImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("first image by category: %w", err)
	}
	return img, nil
}

// SectionImages returns one active image per requested category, keyed by
// category. Categories without an active image are absent from the map.
func (s *ImageStore) SectionImages(cats ...models.ImageCategory) (map[models.ImageCategory]*models.PortfolioImage, error) {
	sections := make(map[models.ImageCategory]*models.PortfolioImage, len(cats))
	for _, cat := range cats {
		img, err := s.FirstActiveByCategory(cat)
		if err != nil {
			return nil, err
		}
		if img != nil {
			sections[cat] = img
		}
	}
	return sections, nil
}

// FindByID retrieves an image by its UUID. Returns nil if not found.
func (s *ImageStore) FindByID(id uuid.UUID) (*models.PortfolioImage, error) {
	row := s.db.QueryRow(`SELECT `+imageColumns+` FROM portfolio_images WHERE id = $1`, id)
	img, err := scanImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find image by id: %w", err)
	}
	return img, nil
}

// Create inserts a new image and returns it with the generated ID.
func (s *ImageStore) Create(img *models.PortfolioImage) (*models.PortfolioImage, error) {
	row := s.db.QueryRow(`
		INSERT INTO portfolio_images (title, image, category, description, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+imageColumns,
		img.Title, img.Image, img.Category, img.Description, img.IsActive, img.SortOrder,
	)
	created, err := scanImage(row)
	if err != nil {
		return nil, fmt.Errorf("create portfolio image: %w", err)
	}
	return created, nil
}

// Update modifies an existing image.
func (s *ImageStore) Update(img *models.PortfolioImage) error {
	_, err := s.db.Exec(`
		UPDATE portfolio_images SET
			title = $1, image = $2, category = $3, description = $4,
			is_active = $5, sort_order = $6
		WHERE id = $7
	`, img.Title, img.Image, img.Category, img.Description, img.IsActive,
		img.SortOrder, img.ID,
	)
	if err != nil {
		return fmt.Errorf("update portfolio image: %w", err)
	}
	return nil
}

// Delete removes an image by ID. Gallery join rows cascade.
func (s *ImageStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM portfolio_images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete portfolio image: %w", err)
	}
	return nil
}

// Count returns the total number of portfolio images.
func (s *ImageStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM portfolio_images`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count portfolio images: %w", err)
	}
	return count, nil
}
