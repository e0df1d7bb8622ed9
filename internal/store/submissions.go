// store/submissions.go - Contact submission persistence
package store

import (
	"database/sql"

	"github.com/noor-latif/foliocms/internal/models"
)

// submissionScanner for DRY row scanning
type submissionScanner struct {
	dest *models.ContactSubmission
}

func (s submissionScanner) Scan(rows *sql.Rows) error {
	return rows.Scan(&s.dest.Name, &s.dest.Email, &s.dest.Message, &s.dest.SubmittedAt)
}

// AddSubmission appends a contact message to the log
func (db *DB) AddSubmission(sub *models.ContactSubmission) error {
	_, err := db.Exec(qSubmissionInsert, sub.Name, sub.Email, sub.Message, sub.SubmittedAt)
	return err
}

// ListSubmissions returns the full log in arrival order
func (db *DB) ListSubmissions() ([]models.ContactSubmission, error) {
	rows, err := db.Query(qSubmissionsAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows,
		func() *models.ContactSubmission { return &models.ContactSubmission{} },
		func(s *models.ContactSubmission) scanner { return submissionScanner{s} })
}
