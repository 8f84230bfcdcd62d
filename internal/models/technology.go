// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package models

import "github.com/google/uuid"

// TechCategory groups stack entries into display sections on the about page.
type TechCategory string

const (
	TechCategoryFrontend TechCategory = "frontend"
	TechCategoryBackend  TechCategory = "backend"
	TechCategoryDatabase TechCategory = "database"
	TechCategoryTool     TechCategory = "tool"
	TechCategoryMobile   TechCategory = "mobile"
	TechCategoryCloud    TechCategory = "cloud"
)

// TechCategories lists every valid technology category.
var TechCategories = []TechCategory{
	TechCategoryFrontend,
	TechCategoryBackend,
	TechCategoryDatabase,
	TechCategoryTool,
	TechCategoryMobile,
	TechCategoryCloud,
}

// Proficiency bounds for technologies.
const (
	MinProficiency = 0
	MaxProficiency = 100
)

var techCategoryLabels = map[TechCategory]string{
	TechCategoryFrontend: "Frontend",
	TechCategoryBackend:  "Backend",
	TechCategoryDatabase: "Database",
	TechCategoryTool:     "Tools",
	TechCategoryMobile:   "Mobile",
	TechCategoryCloud:    "Cloud & DevOps",
}

// Label returns the human-readable section heading for the category.
func (c TechCategory) Label() string {
	if l, ok := techCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether the category belongs to the closed set.
func (c TechCategory) Valid() bool {
	for _, v := range TechCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Technology represents one entry of the technology stack.
// Default ordering is category asc, sort order asc, name asc.
type Technology struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon"` // FontAwesome class
	Category    TechCategory `json:"category"`
	Proficiency int          `json:"proficiency"` // 0-100
	SortOrder   int          `json:"sort_order"`
	IsActive    bool         `json:"is_active"`
}
