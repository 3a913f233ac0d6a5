package resume

import (
	"context"

	resumeRepo "smartresume/database/repository/resume"
	"smartresume/metrics"
	"smartresume/models"
	"smartresume/utils"

	"go.uber.org/zap"
)

// ListLimit caps how many resumes List returns.
const ListLimit = 50

// ResumeService saves and lists resume documents.
type ResumeService interface {
	Save(ctx context.Context, in models.ResumeInput) (*models.Resume, error)
	List(ctx context.Context) ([]models.Resume, error)
}

// DefaultResumeService implements ResumeService over a ResumeRepository.
type DefaultResumeService struct {
	Repo   resumeRepo.ResumeRepository
	Logger *zap.Logger
}

// Save builds a resume with schema defaults and stores it.
func (s *DefaultResumeService) Save(ctx context.Context, in models.ResumeInput) (*models.Resume, error) {
	resume := models.NewResume(in)
	if err := s.Repo.Create(ctx, resume); err != nil {
		metrics.ObserveStoreOperation("save", err)
		return nil, utils.StoreError(err)
	}
	metrics.ObserveStoreOperation("save", nil)
	s.Logger.Debug("Resume saved", zap.String("id", resume.ID.Hex()), zap.String("layout", resume.Layout))
	return resume, nil
}

// List returns the most recently created resumes, newest first.
func (s *DefaultResumeService) List(ctx context.Context) ([]models.Resume, error) {
	resumes, err := s.Repo.ListRecent(ctx, ListLimit)
	metrics.ObserveStoreOperation("list", err)
	if err != nil {
		return nil, utils.StoreError(err)
	}
	if resumes == nil {
		resumes = []models.Resume{}
	}
	return resumes, nil
}
