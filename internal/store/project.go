// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devportfolio/internal/models"
)

// ProjectStore handles all project-related database operations, including
// the many-to-many links to services and to gallery images.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// projectColumns lists the columns selected in project queries.
const projectColumns = `id, title, description, image, client_name, project_url,
	github_url, completion_date, is_featured, sort_order, created_at, updated_at`

// scanProject scans a project row from the result set.
func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Description, &p.Image, &p.ClientName, &p.ProjectURL,
		&p.GithubURL, &p.CompletionDate, &p.IsFeatured, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// collectProjects drains a result set into a slice.
func collectProjects(rows *sql.Rows) ([]models.Project, error) {
	defer rows.Close()
	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// List returns all projects in listing order: sort order ascending, then
// most recently completed first. DESC puts NULL completion dates ahead of
// dated ones, so in-progress work leads within each sort group.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY sort_order ASC, completion_date DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return collectProjects(rows)
}

// ListFeatured returns up to limit featured projects for the homepage.
func (s *ProjectStore) ListFeatured(limit int) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE is_featured = TRUE
		ORDER BY sort_order ASC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	return collectProjects(rows)
}

// ListByService returns up to limit projects that used the given service.
func (s *ProjectStore) ListByService(serviceID uuid.UUID, limit int) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE id IN (SELECT project_id FROM project_services WHERE service_id = $1)
		ORDER BY sort_order ASC, created_at DESC
		LIMIT $2
	`, serviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("list projects by service: %w", err)
	}
	return collectProjects(rows)
}

// ListRelated returns up to limit other projects sharing at least one
// service with the given project, deduplicated and excluding it.
func (s *ProjectStore) ListRelated(projectID uuid.UUID, limit int) ([]models.Project, error) {
	// EXISTS keeps each candidate row unique, so no DISTINCT is needed
	// even when two projects share several services.
	rows, err := s.db.Query(`
		SELECT `+projectColumns+`
		FROM projects p
		WHERE p.id <> $1
		AND EXISTS (
			SELECT 1 FROM project_services ps
			WHERE ps.project_id = p.id
			AND ps.service_id IN (
				SELECT service_id FROM project_services WHERE project_id = $1
			)
		)
		ORDER BY p.sort_order ASC, p.created_at DESC
		LIMIT $2
	`, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list related projects: %w", err)
	}
	return collectProjects(rows)
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with the generated ID.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	row := s.db.QueryRow(`
		INSERT INTO projects (title, description, image, client_name, project_url,
			github_url, completion_date, is_featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+projectColumns,
		p.Title, p.Description, p.Image, p.ClientName, p.ProjectURL,
		p.GithubURL, p.CompletionDate, p.IsFeatured, p.SortOrder,
	)
	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update modifies an existing project.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects SET
			title = $1, description = $2, image = $3, client_name = $4,
			project_url = $5, github_url = $6, completion_date = $7,
			is_featured = $8, sort_order = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Title, p.Description, p.Image, p.ClientName, p.ProjectURL,
		p.GithubURL, p.CompletionDate, p.IsFeatured, p.SortOrder, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID. Join rows cascade.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	if _, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Count returns the total number of projects, for the about page.
func (s *ProjectStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

// ServicesFor loads the services linked to a project, in service display order.
func (s *ProjectStore) ServicesFor(projectID uuid.UUID) ([]models.Service, error) {
	rows, err := s.db.Query(`
		SELECT `+serviceColumns+`
		FROM services
		WHERE id IN (SELECT service_id FROM project_services WHERE project_id = $1)
		ORDER BY sort_order ASC, created_at ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("services for project: %w", err)
	}
	return collectServices(rows)
}

// GalleryFor loads the gallery images linked to a project.
func (s *ProjectStore) GalleryFor(projectID uuid.UUID) ([]models.PortfolioImage, error) {
	rows, err := s.db.Query(`
		SELECT `+imageColumns+`
		FROM portfolio_images
		WHERE id IN (SELECT image_id FROM project_gallery WHERE project_id = $1)
		ORDER BY category ASC, sort_order ASC, created_at DESC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("gallery for project: %w", err)
	}
	return collectImages(rows)
}

// SetServices replaces the set of services linked to a project.
func (s *ProjectStore) SetServices(projectID uuid.UUID, serviceIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set services begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM project_services WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("set services clear: %w", err)
	}
	for _, sid := range serviceIDs {
		if _, err := tx.Exec(`
			INSERT INTO project_services (project_id, service_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, projectID, sid); err != nil {
			return fmt.Errorf("set services insert: %w", err)
		}
	}
	return tx.Commit()
}

// SetGallery replaces the set of gallery images linked to a project.
func (s *ProjectStore) SetGallery(projectID uuid.UUID, imageIDs []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set gallery begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM project_gallery WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("set gallery clear: %w", err)
	}
	for _, iid := range imageIDs {
		if _, err := tx.Exec(`
			INSERT INTO project_gallery (project_id, image_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING
		`, projectID, iid); err != nil {
			return fmt.Errorf("set gallery insert: %w", err)
		}
	}
	return tx.Commit()
}
