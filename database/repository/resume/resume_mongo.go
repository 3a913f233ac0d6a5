package resumeRepo

import (
	"context"
	"fmt"
	"time"

	"smartresume/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoResumeRepo implements ResumeRepository using MongoDB.
type MongoResumeRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
	now     func() time.Time
}

// NewMongoResumeRepo creates a repository over coll. Every operation is bounded by timeout.
func NewMongoResumeRepo(coll *mongo.Collection, timeout time.Duration) *MongoResumeRepo {
	return &MongoResumeRepo{coll: coll, timeout: timeout, now: time.Now}
}

// newContext derives a context bounded by the repository timeout.
func (r *MongoResumeRepo) newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a new resume document.
func (r *MongoResumeRepo) Create(ctx context.Context, resume *models.Resume) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	// BSON dates hold milliseconds; truncate so the saved copy matches later reads.
	now := r.now().UTC().Truncate(time.Millisecond)
	resume.CreatedAt = now
	resume.UpdatedAt = now
	if resume.ID.IsZero() {
		resume.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, resume); err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// ListRecent retrieves the newest resumes, sorted by creation time descending.
func (r *MongoResumeRepo) ListRecent(ctx context.Context, limit int64) ([]models.Resume, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer cursor.Close(ctx)

	resumes := make([]models.Resume, 0, limit)
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, fmt.Errorf("failed to decode resumes: %w", err)
	}
	return resumes, nil
}
