// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"devportfolio/internal/models"
)

// Field length limits for admin forms. The public contact form is
// deliberately not validated; see SubmitContact.
const (
	maxNameLen        = 200
	maxDescriptionLen = 10_000
	maxURLLen         = 2_000
)

// validateService checks a service before persistence.
func validateService(svc *models.Service) []string {
	var errs []string
	if strings.TrimSpace(svc.Name) == "" {
		errs = append(errs, "Name is required.")
	}
	if utf8.RuneCountInString(svc.Name) > maxNameLen {
		errs = append(errs, fmt.Sprintf("Name is too long (max %d characters).", maxNameLen))
	}
	if utf8.RuneCountInString(svc.Description) > maxDescriptionLen {
		errs = append(errs, fmt.Sprintf("Description is too long (max %d characters).", maxDescriptionLen))
	}
	if svc.Price != nil && *svc.Price < 0 {
		errs = append(errs, "Price cannot be negative.")
	}
	return errs
}

// validateProject checks a project before persistence.
func validateProject(p *models.Project) []string {
	var errs []string
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, "Title is required.")
	}
	if utf8.RuneCountInString(p.Title) > maxNameLen {
		errs = append(errs, fmt.Sprintf("Title is too long (max %d characters).", maxNameLen))
	}
	if utf8.RuneCountInString(p.Description) > maxDescriptionLen {
		errs = append(errs, fmt.Sprintf("Description is too long (max %d characters).", maxDescriptionLen))
	}
	if utf8.RuneCountInString(p.ProjectURL) > maxURLLen || utf8.RuneCountInString(p.GithubURL) > maxURLLen {
		errs = append(errs, "URLs are too long.")
	}
	return errs
}

// validateImage checks a portfolio image, rejecting categories outside the
// closed set.
func validateImage(img *models.PortfolioImage) []string {
	var errs []string
	if strings.TrimSpace(img.Title) == "" {
		errs = append(errs, "Title is required.")
	}
	if strings.TrimSpace(img.Image) == "" {
		errs = append(errs, "Image URL is required.")
	}
	if !img.Category.Valid() {
		errs = append(errs, "Unknown image category.")
	}
	return errs
}

// validateTestimonial checks a testimonial, enforcing the rating bounds.
func validateTestimonial(t *models.Testimonial) []string {
	var errs []string
	if strings.TrimSpace(t.ClientName) == "" {
		errs = append(errs, "Client name is required.")
	}
	if strings.TrimSpace(t.Content) == "" {
		errs = append(errs, "Quote content is required.")
	}
	if t.Rating < models.MinRating || t.Rating > models.MaxRating {
		errs = append(errs, fmt.Sprintf("Rating must be between %d and %d.", models.MinRating, models.MaxRating))
	}
	return errs
}

// validateTechnology checks a technology, enforcing the proficiency bounds
// and the closed category set.
func validateTechnology(t *models.Technology) []string {
	var errs []string
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, "Name is required.")
	}
	if !t.Category.Valid() {
		errs = append(errs, "Unknown technology category.")
	}
	if t.Proficiency < models.MinProficiency || t.Proficiency > models.MaxProficiency {
		errs = append(errs, fmt.Sprintf("Proficiency must be between %d and %d.", models.MinProficiency, models.MaxProficiency))
	}
	return errs
}
