package checklist

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/internquest/internquest/internal/gateway"
	"github.com/internquest/internquest/pkg/models"
)

const (
	collectionChecklists = "checklists"
	collectionFileIndex  = "uploaded_files"

	// inlineThreshold is the largest payload stored inline in the document
	// instead of the blob store.
	inlineThreshold = 32 * 1024
)

// Service loads and mutates a student's requirement checklist through the
// Gateway. All derived statuses are persisted back after each mutation.
type Service struct {
	gw gateway.Gateway

	// now is swappable in tests
	now func() time.Time
}

// NewService returns a checklist service over gw
func NewService(gw gateway.Gateway) *Service {
	return &Service{gw: gw, now: time.Now}
}

type checklistDoc struct {
	Items []models.Requirement `json:"items"`
}

// Load fetches the student's checklist, seeding the default requirements if
// none exists yet. Overdue transitions are recomputed on every load and
// persisted when anything changed.
func (s *Service) Load(ctx context.Context, studentID string) ([]models.Requirement, error) {
	data, err := s.gw.GetDocument(ctx, collectionChecklists, studentID)
	if err == gateway.ErrNotFound {
		items := models.DefaultRequirements()
		if err := s.save(ctx, studentID, items); err != nil {
			return nil, fmt.Errorf("failed to seed checklist: %w", err)
		}
		return items, nil
	}
	if err != nil {
		return nil, err
	}

	doc, err := decodeChecklist(data)
	if err != nil {
		return nil, err
	}

	now := s.now()
	changed := false
	for i := range doc.Items {
		derived := DeriveStatus(doc.Items[i], now)
		if doc.Items[i].Status != derived {
			doc.Items[i].Status = derived
			changed = true
		}
	}
	if changed {
		if err := s.save(ctx, studentID, doc.Items); err != nil {
			return nil, err
		}
	}
	return doc.Items, nil
}

// Get returns a single requirement by id
func (s *Service) Get(ctx context.Context, studentID, requirementID string) (*models.Requirement, error) {
	items, err := s.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == requirementID {
			return &items[i], nil
		}
	}
	return nil, gateway.ErrNotFound
}

// AttachFile uploads a file for a requirement, appends the FileRef and
// recomputes the status. Small payloads are inlined into the document;
// larger ones go to the blob store. The admin-side index record is a
// best-effort secondary write: its failure is logged, never surfaced.
func (s *Service) AttachFile(ctx context.Context, studentID, requirementID, fileName string, data []byte, contentType string) (*models.Requirement, error) {
	items, err := s.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(items, requirementID)
	if idx < 0 {
		return nil, gateway.ErrNotFound
	}

	ref := models.FileRef{
		Name:        fileName,
		ContentType: contentType,
		UploadedAt:  s.now(),
	}

	if len(data) <= inlineThreshold {
		ref.Kind = models.FileKindInline
		ref.InlineData = base64.StdEncoding.EncodeToString(data)
	} else {
		blobPath := path.Join("uploads", studentID, requirementID, fileName)
		if err := s.gw.UploadBlob(ctx, blobPath, data, contentType); err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}
		url, err := s.gw.GetBlobURL(ctx, blobPath)
		if err != nil {
			return nil, err
		}
		ref.Kind = models.FileKindBlob
		ref.Path = blobPath
		ref.URL = url
	}

	// Best-effort index record so administrators can list uploads without
	// scanning every checklist.
	recordID, err := s.gw.AddDocument(ctx, collectionFileIndex, map[string]any{
		"student_id":     studentID,
		"requirement_id": requirementID,
		"file_name":      fileName,
		"uploaded_at":    ref.UploadedAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("checklist: file index write failed for %s/%s: %v", studentID, requirementID, err)
	} else {
		ref.RecordID = recordID
	}

	items[idx].UploadedFiles = append(items[idx].UploadedFiles, ref)
	items[idx].Status = DeriveStatus(items[idx], s.now())

	if err := s.save(ctx, studentID, items); err != nil {
		return nil, err
	}
	return &items[idx], nil
}

// RemoveFile removes one uploaded file by name from a requirement. The blob
// and index record deletes are best-effort. When the last file is removed
// the status reverts to pending even if the due date has passed; the next
// Load recomputes overdue.
func (s *Service) RemoveFile(ctx context.Context, studentID, requirementID, fileName string) (*models.Requirement, error) {
	items, err := s.Load(ctx, studentID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(items, requirementID)
	if idx < 0 {
		return nil, gateway.ErrNotFound
	}

	files := items[idx].UploadedFiles
	fileIdx := -1
	for i, f := range files {
		if f.Name == fileName {
			fileIdx = i
			break
		}
	}
	if fileIdx < 0 {
		return nil, gateway.ErrNotFound
	}

	removed := files[fileIdx]
	switch removed.Kind {
	case models.FileKindBlob:
		if err := s.gw.DeleteBlob(ctx, removed.Path); err != nil {
			log.Printf("checklist: blob delete failed for %s: %v", removed.Path, err)
		}
	case models.FileKindLegacy, models.FileKindInline:
		// nothing stored outside the document
	}
	if removed.RecordID != "" {
		if err := s.gw.DeleteDocument(ctx, collectionFileIndex, removed.RecordID); err != nil {
			log.Printf("checklist: file index delete failed for %s: %v", removed.RecordID, err)
		}
	}

	items[idx].UploadedFiles = append(files[:fileIdx], files[fileIdx+1:]...)
	if len(items[idx].UploadedFiles) == 0 {
		items[idx].Status = models.StatusPending
	} else {
		items[idx].Status = DeriveStatus(items[idx], s.now())
	}

	if err := s.save(ctx, studentID, items); err != nil {
		return nil, err
	}
	return &items[idx], nil
}

// SetNotes updates the free-text notes on a requirement
func (s *Service) SetNotes(ctx context.Context, studentID, requirementID, notes string) error {
	items, err := s.Load(ctx, studentID)
	if err != nil {
		return err
	}

	idx := indexOf(items, requirementID)
	if idx < 0 {
		return gateway.ErrNotFound
	}

	items[idx].Notes = notes
	return s.save(ctx, studentID, items)
}

// SetDueDate sets or clears a requirement's due date and recomputes status
func (s *Service) SetDueDate(ctx context.Context, studentID, requirementID string, due *time.Time) error {
	items, err := s.Load(ctx, studentID)
	if err != nil {
		return err
	}

	idx := indexOf(items, requirementID)
	if idx < 0 {
		return gateway.ErrNotFound
	}

	items[idx].DueDate = due
	items[idx].Status = DeriveStatus(items[idx], s.now())
	return s.save(ctx, studentID, items)
}

func (s *Service) save(ctx context.Context, studentID string, items []models.Requirement) error {
	data, err := encodeChecklist(checklistDoc{Items: items})
	if err != nil {
		return err
	}
	return s.gw.SetDocument(ctx, collectionChecklists, studentID, data, false)
}

func indexOf(items []models.Requirement, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func encodeChecklist(doc checklistDoc) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func decodeChecklist(data map[string]any) (*checklistDoc, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	doc := &checklistDoc{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("corrupt checklist document: %w", err)
	}
	return doc, nil
}
