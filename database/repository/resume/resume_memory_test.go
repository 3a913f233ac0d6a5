package resumeRepo

import (
	"context"
	"testing"
	"time"

	"smartresume/models"
)

func TestMemoryResumeRepoListRecent(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	repo := NewMemoryResumeRepo(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, models.NewResume(models.ResumeInput{Name: string(rune('A' + i))})); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListRecent(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 resumes, got %d", len(got))
	}
	want := []string{"E", "D", "C"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestMemoryResumeRepoEqualTimestamps(t *testing.T) {
	fixed := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryResumeRepo(func() time.Time { return fixed })

	ctx := context.Background()
	_ = repo.Create(ctx, models.NewResume(models.ResumeInput{Name: "first"}))
	_ = repo.Create(ctx, models.NewResume(models.ResumeInput{Name: "second"}))

	got, err := repo.ListRecent(ctx, 50)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if got[0].Name != "second" {
		t.Fatalf("expected later insert first on ties, got %s", got[0].Name)
	}
}

func TestMemoryResumeRepoCanceledContext(t *testing.T) {
	repo := NewMemoryResumeRepo(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Create(ctx, models.NewResume(models.ResumeInput{})); err == nil {
		t.Fatalf("expected canceled context error")
	}
}

func TestMemoryResumeRepoTruncatesToMilliseconds(t *testing.T) {
	stamp := time.Date(2026, time.October, 14, 9, 11, 38, 445_702_235, time.UTC)
	repo := NewMemoryResumeRepo(func() time.Time { return stamp })

	resume := models.NewResume(models.ResumeInput{Name: "Alice"})
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := time.Date(2026, time.October, 14, 9, 11, 38, 445_000_000, time.UTC)
	if !resume.CreatedAt.Equal(want) || !resume.UpdatedAt.Equal(want) {
		t.Fatalf("expected millisecond timestamps %s, got %s / %s", want, resume.CreatedAt, resume.UpdatedAt)
	}

	listed, err := repo.ListRecent(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if !listed[0].CreatedAt.Equal(resume.CreatedAt) {
		t.Fatalf("saved and listed timestamps differ: %s vs %s", resume.CreatedAt, listed[0].CreatedAt)
	}
}
