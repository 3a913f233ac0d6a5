package resumeRepo

import (
	"context"

	"smartresume/models"
)

// CollectionName is the collection resumes are stored in.
const CollectionName = "resumes"

// ResumeRepository defines methods for resume data access.
type ResumeRepository interface {
	// Create assigns id and timestamps to resume and inserts it.
	Create(ctx context.Context, resume *models.Resume) error
	// ListRecent returns up to limit resumes, most recently created first.
	ListRecent(ctx context.Context, limit int64) ([]models.Resume, error)
}
