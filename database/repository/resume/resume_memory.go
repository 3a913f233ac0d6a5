package resumeRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"smartresume/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryResumeRepo is an in-memory implementation of ResumeRepository.
type MemoryResumeRepo struct {
	mu   sync.RWMutex
	data []models.Resume
	now  func() time.Time
}

// NewMemoryResumeRepo constructs a MemoryResumeRepo. A nil now uses time.Now.
func NewMemoryResumeRepo(now func() time.Time) *MemoryResumeRepo {
	if now == nil {
		now = time.Now
	}
	return &MemoryResumeRepo{now: now}
}

// Create stores a copy of resume.
func (r *MemoryResumeRepo) Create(ctx context.Context, resume *models.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// BSON dates hold milliseconds; truncate so the saved copy matches later reads.
	now := r.now().UTC().Truncate(time.Millisecond)
	resume.CreatedAt = now
	resume.UpdatedAt = now
	if resume.ID.IsZero() {
		resume.ID = primitive.NewObjectID()
	}
	r.data = append(r.data, *resume)
	return nil
}

// ListRecent returns resumes newest first. Equal timestamps keep reverse insertion order.
func (r *MemoryResumeRepo) ListRecent(ctx context.Context, limit int64) ([]models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	docs := make([]models.Resume, 0, len(r.data))
	for i := len(r.data) - 1; i >= 0; i-- {
		docs = append(docs, r.data[i])
	}
	r.mu.RUnlock()

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if limit > 0 && int64(len(docs)) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}
