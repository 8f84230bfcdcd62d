// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service represents one offered service (web apps, e-commerce, ...).
// SortOrder is a plain display ordinal with no uniqueness requirement;
// ties break on ascending creation time.
type Service struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            *float64  `json:"price,omitempty"` // nil means custom pricing
	PriceDescription string    `json:"price_description"`
	Icon             string    `json:"icon"` // FontAwesome class, e.g. "fas fa-code"
	FeaturedImage    string    `json:"featured_image"`
	BackgroundImage  string    `json:"background_image"`
	SortOrder        int       `json:"sort_order"`
	IsActive         bool      `json:"is_active"`
	IsFeatured       bool      `json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasPrice returns true when a concrete price is set.
func (s *Service) HasPrice() bool {
	return s.Price != nil
}

// DisplayPrice returns the price formatted for templates, or the
// custom-pricing label when no price is set.
func (s *Service) DisplayPrice() string {
	if s.Price == nil {
		return "Custom pricing"
	}
	return fmt.Sprintf("$%.0f", *s.Price)
}
