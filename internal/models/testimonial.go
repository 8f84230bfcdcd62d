// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for testimonials.
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial represents a client quote shown on the public site.
type Testimonial struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	Company    string    `json:"company"`
	Content    string    `json:"content"`
	Image      string    `json:"image"` // client photo, optional
	Rating     int       `json:"rating"`
	IsFeatured bool      `json:"is_featured"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

// Stars returns a slice of length Rating, for template range loops.
func (t *Testimonial) Stars() []struct{} {
	if t.Rating < MinRating || t.Rating > MaxRating {
		return nil
	}
	return make([]struct{}, t.Rating)
}
