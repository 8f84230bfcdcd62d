// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user, the site settings row, and a starter set of services and
// technologies. It is a no-op when users already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Default admin. 2FA is not enabled — they must set it up on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@devportfolio.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// The settings row the public pages fall back to.
	_, err = db.Exec(`
		INSERT INTO site_settings (site_name, site_description)
		VALUES ($1, $2)
	`, "DevPortfolio", "Professional Web Development Services - Creating exceptional digital experiences that drive business growth and user engagement.")
	if err != nil {
		return fmt.Errorf("seed site settings: %w", err)
	}

	if err := seedTechnologies(db); err != nil {
		return err
	}
	if err := seedServices(db); err != nil {
		return err
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@devportfolio.local",
		"password", "admin",
	)

	return nil
}

// seedTechnologies inserts the starter technology stack.
func seedTechnologies(db *sql.DB) error {
	type tech struct {
		name, icon, category string
		proficiency          int
	}
	techs := []tech{
		{"React", "fab fa-react", "frontend", 90},
		{"Vue.js", "fab fa-vuejs", "frontend", 85},
		{"JavaScript", "fab fa-js", "frontend", 95},
		{"TypeScript", "fas fa-code", "frontend", 88},
		{"HTML5", "fab fa-html5", "frontend", 98},
		{"CSS3", "fab fa-css3-alt", "frontend", 95},
		{"Go", "fas fa-server", "backend", 92},
		{"Python", "fab fa-python", "backend", 95},
		{"Node.js", "fab fa-node-js", "backend", 85},
		{"PostgreSQL", "fas fa-database", "database", 88},
		{"Redis", "fas fa-memory", "database", 75},
		{"React Native", "fab fa-react", "mobile", 85},
		{"Flutter", "fas fa-mobile", "mobile", 78},
		{"AWS", "fab fa-aws", "cloud", 82},
		{"Docker", "fab fa-docker", "cloud", 80},
		{"Git", "fab fa-git-alt", "tool", 95},
	}

	for i, t := range techs {
		_, err := db.Exec(`
			INSERT INTO technologies (name, icon, category, proficiency, sort_order)
			VALUES ($1, $2, $3, $4, $5)
		`, t.name, t.icon, t.category, t.proficiency, i)
		if err != nil {
			return fmt.Errorf("seed technology %s: %w", t.name, err)
		}
	}
	return nil
}

// seedServices inserts the starter service catalogue.
func seedServices(db *sql.DB) error {
	type svc struct {
		name, description, icon string
		price                   float64
		featured                bool
	}
	svcs := []svc{
		{
			"Web Application Development",
			"Custom web applications built with modern technologies. Scalable full-stack solutions that grow with your business.",
			"fas fa-laptop-code", 5000, true,
		},
		{
			"E-commerce Solutions",
			"Complete online store development with payment integration, inventory management, and responsive design optimized for conversions.",
			"fas fa-shopping-cart", 7500, true,
		},
		{
			"Mobile App Development",
			"Cross-platform mobile applications that work seamlessly on iOS and Android, built for cost-effective development.",
			"fas fa-mobile-alt", 10000, true,
		},
		{
			"API Development & Integration",
			"RESTful API development and third-party service integration to connect your applications with external systems.",
			"fas fa-plug", 3000, false,
		},
	}

	for i, s := range svcs {
		_, err := db.Exec(`
			INSERT INTO services (name, description, price, price_description, icon, sort_order, is_featured)
			VALUES ($1, $2, $3, 'Starting at', $4, $5, $6)
		`, s.name, s.description, s.price, s.icon, i+1, s.featured)
		if err != nil {
			return fmt.Errorf("seed service %s: %w", s.name, err)
		}
	}
	return nil
}
