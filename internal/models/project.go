// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project. Projects relate many-to-many to
// Services (what was delivered) and to PortfolioImages (the gallery).
type Project struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Image          string     `json:"image"`
	ClientName     string     `json:"client_name"`
	ProjectURL     string     `json:"project_url"`
	GithubURL      string     `json:"github_url"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	IsFeatured     bool       `json:"is_featured"`
	SortOrder      int        `json:"sort_order"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Associations, loaded separately by the store.
	Services []Service        `json:"services,omitempty"`
	Gallery  []PortfolioImage `json:"gallery,omitempty"`
}

// CompletedIn returns the completion year formatted for display, or ""
// when the project has no completion date.
func (p *Project) CompletedIn() string {
	if p.CompletionDate == nil {
		return ""
	}
	return p.CompletionDate.Format("January 2006")
}
