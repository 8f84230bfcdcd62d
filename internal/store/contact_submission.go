// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devportfolio/internal/models"
)

// SubmissionStore persists contact form submissions. Submissions are
// append-only from the public site; the admin panel may only read them and
// flip the read flag.
type SubmissionStore struct {
	db *sql.DB
}

// NewSubmissionStore returns a new SubmissionStore backed by the given database.
func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

const submissionColumns = `id, name, email, subject, message, is_read, submitted_at`

func scanSubmission(scanner interface{ Scan(...any) error }) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission
	err := scanner.Scan(
		&sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message,
		&sub.IsRead, &sub.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create stores a new submission and fills in its generated fields.
func (s *SubmissionStore) Create(sub *models.ContactSubmission) error {
	row := s.db.QueryRow(`
		INSERT INTO contact_submissions (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, submitted_at
	`, sub.Name, sub.Email, sub.Subject, sub.Message)
	if err := row.Scan(&sub.ID, &sub.IsRead, &sub.SubmittedAt); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// List returns all submissions, newest first.
func (s *SubmissionStore) List() ([]*models.ContactSubmission, error) {
	rows, err := s.db.Query(`
		SELECT ` + submissionColumns + `
		FROM contact_submissions
		ORDER BY submitted_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []*models.ContactSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// FindByID returns a submission, or nil when it does not exist.
func (s *SubmissionStore) FindByID(id uuid.UUID) (*models.ContactSubmission, error) {
	row := s.db.QueryRow(`
		SELECT `+submissionColumns+`
		FROM contact_submissions WHERE id = $1
	`, id)
	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return sub, nil
}

// SetRead marks a submission as read or unread.
func (s *SubmissionStore) SetRead(id uuid.UUID, read bool) error {
	_, err := s.db.Exec(`UPDATE contact_submissions SET is_read = $1 WHERE id = $2`, read, id)
	if err != nil {
		return fmt.Errorf("set submission read: %w", err)
	}
	return nil
}

// CountUnread returns the number of unread submissions, shown as a badge in
// the admin dashboard.
func (s *SubmissionStore) CountUnread() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions WHERE NOT is_read`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread submissions: %w", err)
	}
	return count, nil
}

// Count returns the total number of submissions.
func (s *SubmissionStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_submissions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return count, nil
}
