package checklist

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/internquest/internquest/internal/gateway"
	"github.com/internquest/internquest/internal/progress"
	"github.com/internquest/internquest/pkg/models"
)

func newTestService(gw gateway.Gateway, now time.Time) *Service {
	svc := NewService(gw)
	svc.now = func() time.Time { return now }
	return svc
}

func TestLoadSeedsDefaults(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	svc := newTestService(gw, time.Now())

	items, err := svc.Load(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("failed to load checklist: %v", err)
	}

	if len(items) != 8 {
		t.Errorf("expected 8 seeded requirements, got %d", len(items))
	}
	for _, r := range items {
		if r.Status != models.StatusPending {
			t.Errorf("seeded requirement %s should be pending, got %s", r.ID, r.Status)
		}
	}

	// Second load must not reseed
	again, err := svc.Load(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("failed to reload checklist: %v", err)
	}
	if len(again) != len(items) {
		t.Errorf("reload changed item count: %d != %d", len(again), len(items))
	}
}

func TestLoadRecomputesOverdue(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	svc := newTestService(gw, now)

	if _, err := svc.Load(context.Background(), "student-1"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	yesterday := now.Add(-24 * time.Hour)
	if err := svc.SetDueDate(context.Background(), "student-1", "resume", &yesterday); err != nil {
		t.Fatalf("failed to set due date: %v", err)
	}

	r, err := svc.Get(context.Background(), "student-1", "resume")
	if err != nil {
		t.Fatalf("failed to get requirement: %v", err)
	}
	if r.Status != models.StatusOverdue {
		t.Errorf("expected overdue after past due date, got %s", r.Status)
	}
}

func TestAttachFileCompletesRequirement(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	svc := newTestService(gw, now)

	items, err := svc.Load(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	before := progress.Completion(items)

	r, err := svc.AttachFile(context.Background(), "student-1", "resume", "resume.pdf", []byte("pdf bytes"), "application/pdf")
	if err != nil {
		t.Fatalf("failed to attach file: %v", err)
	}

	if r.Status != models.StatusCompleted {
		t.Errorf("expected completed after upload, got %s", r.Status)
	}
	if len(r.UploadedFiles) != 1 {
		t.Fatalf("expected 1 uploaded file, got %d", len(r.UploadedFiles))
	}
	if r.UploadedFiles[0].Kind != models.FileKindInline {
		t.Errorf("small payload should be inlined, got %s", r.UploadedFiles[0].Kind)
	}
	if r.UploadedFiles[0].RecordID == "" {
		t.Error("expected admin index record id to be set")
	}

	items, err = svc.Load(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	after := progress.Completion(items)

	// One more required item complete: ratio rises by 1/requiredCount
	requiredCount := 0
	for _, item := range items {
		if item.IsRequired {
			requiredCount++
		}
	}
	want := before + 1.0/float64(requiredCount)
	if diff := after - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("progress after upload = %f, expected %f", after, want)
	}
}

func TestAttachLargeFileGoesToBlobStore(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	svc := newTestService(gw, time.Now())

	if _, err := svc.Load(context.Background(), "student-1"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	big := bytes.Repeat([]byte("x"), inlineThreshold+1)
	r, err := svc.AttachFile(context.Background(), "student-1", "portfolio", "portfolio.pdf", big, "application/pdf")
	if err != nil {
		t.Fatalf("failed to attach file: %v", err)
	}

	ref := r.UploadedFiles[0]
	if ref.Kind != models.FileKindBlob {
		t.Fatalf("large payload should be a blob, got %s", ref.Kind)
	}
	if !gw.HasBlob(ref.Path) {
		t.Errorf("blob not stored at %s", ref.Path)
	}
	if ref.URL == "" {
		t.Error("blob ref should carry a URL")
	}
}

// TestRemoveFileRevertsToPending pins the behavior that removing the last
// file reverts the status to pending even when the due date has passed;
// the overdue transition happens on the next load.
func TestRemoveFileRevertsToPending(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	svc := newTestService(gw, now)

	if _, err := svc.Load(context.Background(), "student-1"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	yesterday := now.Add(-24 * time.Hour)
	if err := svc.SetDueDate(context.Background(), "student-1", "resume", &yesterday); err != nil {
		t.Fatalf("failed to set due date: %v", err)
	}
	if _, err := svc.AttachFile(context.Background(), "student-1", "resume", "resume.pdf", []byte("data"), "application/pdf"); err != nil {
		t.Fatalf("failed to attach: %v", err)
	}

	r, err := svc.RemoveFile(context.Background(), "student-1", "resume", "resume.pdf")
	if err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if r.Status != models.StatusPending {
		t.Errorf("expected pending right after removal, got %s", r.Status)
	}

	// The next load recomputes overdue from the past due date
	reloaded, err := svc.Get(context.Background(), "student-1", "resume")
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if reloaded.Status != models.StatusOverdue {
		t.Errorf("expected overdue on next load, got %s", reloaded.Status)
	}
}

func TestRemoveBlobFileDeletesBlob(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	svc := newTestService(gw, time.Now())

	if _, err := svc.Load(context.Background(), "student-1"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	big := bytes.Repeat([]byte("x"), inlineThreshold+1)
	r, err := svc.AttachFile(context.Background(), "student-1", "resume", "resume.pdf", big, "application/pdf")
	if err != nil {
		t.Fatalf("failed to attach: %v", err)
	}
	blobPath := r.UploadedFiles[0].Path

	if _, err := svc.RemoveFile(context.Background(), "student-1", "resume", "resume.pdf"); err != nil {
		t.Fatalf("failed to remove: %v", err)
	}
	if gw.HasBlob(blobPath) {
		t.Error("blob should be deleted with the file ref")
	}
}

// failingBlobGateway makes blob deletes fail to exercise the best-effort
// path: record removal must still succeed.
type failingBlobGateway struct {
	*gateway.MemoryGateway
}

func (g *failingBlobGateway) DeleteBlob(ctx context.Context, path string) error {
	return errors.New("blob store unavailable")
}

func TestRemoveFileSurvivesBlobDeleteFailure(t *testing.T) {
	gw := &failingBlobGateway{gateway.NewMemoryGateway()}
	svc := newTestService(gw, time.Now())

	if _, err := svc.Load(context.Background(), "student-1"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	big := bytes.Repeat([]byte("x"), inlineThreshold+1)
	if _, err := svc.AttachFile(context.Background(), "student-1", "resume", "resume.pdf", big, "application/pdf"); err != nil {
		t.Fatalf("failed to attach: %v", err)
	}

	r, err := svc.RemoveFile(context.Background(), "student-1", "resume", "resume.pdf")
	if err != nil {
		t.Fatalf("removal should succeed despite blob delete failure: %v", err)
	}
	if len(r.UploadedFiles) != 0 {
		t.Errorf("file ref should be removed, got %d files", len(r.UploadedFiles))
	}
}

func TestSetNotes(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	svc := newTestService(gw, time.Now())

	if _, err := svc.Load(context.Background(), "student-1"); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	if err := svc.SetNotes(context.Background(), "student-1", "moa", "waiting for company signature"); err != nil {
		t.Fatalf("failed to set notes: %v", err)
	}

	r, err := svc.Get(context.Background(), "student-1", "moa")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if r.Notes != "waiting for company signature" {
		t.Errorf("notes not persisted: %q", r.Notes)
	}
}

func TestGetUnknownRequirement(t *testing.T) {
	gw := gateway.NewMemoryGateway()
	svc := newTestService(gw, time.Now())

	if _, err := svc.Get(context.Background(), "student-1", "no-such-id"); err != gateway.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
