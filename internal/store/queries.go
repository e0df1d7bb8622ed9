// store/queries.go - Centralized SQL queries for DRY
package store

const (
	contentTable    = `content`
	submissionTable = `submissions`

	submissionColumns = `name, email, message, submitted_at`
)

const (
	qContentUpsert = `INSERT INTO ` + contentTable + ` (section, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(section) DO UPDATE SET data=excluded.data, updated_at=CURRENT_TIMESTAMP`

	qContentAll = `SELECT section, data FROM ` + contentTable

	qSubmissionInsert = `INSERT INTO ` + submissionTable +
		` (` + submissionColumns + `) VALUES (?, ?, ?, ?)`

	qSubmissionsAll = `SELECT ` + submissionColumns + ` FROM ` + submissionTable +
		` ORDER BY id ASC`
)
