// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageCategory routes a portfolio image to a specific display section.
// The set is closed; anything else is rejected before persistence.
type ImageCategory string

const (
	ImageCategoryHero        ImageCategory = "hero"
	ImageCategoryServices    ImageCategory = "services"
	ImageCategoryProjects    ImageCategory = "projects"
	ImageCategoryContact     ImageCategory = "contact"
	ImageCategoryAbout       ImageCategory = "about"
	ImageCategoryBackground  ImageCategory = "background"
	ImageCategoryPattern     ImageCategory = "pattern"
	ImageCategoryIcon        ImageCategory = "icon"
	ImageCategoryTestimonial ImageCategory = "testimonial"
	ImageCategoryCTA         ImageCategory = "cta"
	ImageCategoryGeneral     ImageCategory = "general"
)

// ImageCategories lists every valid category in display order. Used by the
// admin form select and by the homepage section lookup.
var ImageCategories = []ImageCategory{
	ImageCategoryHero,
	ImageCategoryServices,
	ImageCategoryProjects,
	ImageCategoryContact,
	ImageCategoryAbout,
	ImageCategoryBackground,
	ImageCategoryPattern,
	ImageCategoryIcon,
	ImageCategoryTestimonial,
	ImageCategoryCTA,
	ImageCategoryGeneral,
}

// imageCategoryLabels maps categories to their human-readable names.
var imageCategoryLabels = map[ImageCategory]string{
	ImageCategoryHero:        "Hero Section",
	ImageCategoryServices:    "Services Section",
	ImageCategoryProjects:    "Projects Section",
	ImageCategoryContact:     "Contact Section",
	ImageCategoryAbout:       "About Section",
	ImageCategoryBackground:  "Background Images",
	ImageCategoryPattern:     "Pattern Images",
	ImageCategoryIcon:        "Icon Images",
	ImageCategoryTestimonial: "Testimonial Background",
	ImageCategoryCTA:         "Call to Action Background",
	ImageCategoryGeneral:     "General Images",
}

// Valid reports whether the category belongs to the closed set.
func (c ImageCategory) Valid() bool {
	_, ok := imageCategoryLabels[c]
	return ok
}

// Label returns the human-readable name for the category.
func (c ImageCategory) Label() string {
	if l, ok := imageCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// PortfolioImage represents a section image used across the public site.
// Default ordering is category asc, sort order asc, newest first.
type PortfolioImage struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Image       string        `json:"image"`
	Category    ImageCategory `json:"category"`
	Description string        `json:"description"`
	IsActive    bool          `json:"is_active"`
	SortOrder   int           `json:"sort_order"`
	CreatedAt   time.Time     `json:"created_at"`
}
