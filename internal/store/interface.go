// store/interface.go - Store interface for testability
package store

import "github.com/noor-latif/foliocms/internal/models"

type Store interface {
	// Content snapshot
	SaveSnapshot(data models.PortfolioData) error
	LoadSnapshot() (models.PortfolioData, bool, error)

	// Contact submissions
	AddSubmission(s *models.ContactSubmission) error
	ListSubmissions() ([]models.ContactSubmission, error)

	Close() error
}
