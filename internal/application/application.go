package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/internquest/internquest/internal/gateway"
	"github.com/internquest/internquest/pkg/models"
)

const collectionApplications = "applications"

// ErrInvalidTransition is returned for status changes the client is not
// allowed to make. Only not_applied -> pending originates here; approved
// and rejected are set by the coordinator side.
var ErrInvalidTransition = errors.New("invalid application status transition")

// ErrAlreadyApplied is returned when submitting to a company that already
// has a live application.
var ErrAlreadyApplied = errors.New("already applied to this company")

// CanTransition reports whether the client may move an application from one
// status to another. There is no way back to not_applied.
func CanTransition(from, to models.ApplicationStatus) bool {
	return from == models.AppNotApplied && to == models.AppPending
}

// Service manages a student's company applications through the Gateway
type Service struct {
	gw  gateway.Gateway
	now func() time.Time
}

// NewService returns an application service over gw
func NewService(gw gateway.Gateway) *Service {
	return &Service{gw: gw, now: time.Now}
}

// Submit creates a pending application for the company. If an application
// already exists in any status, submission is rejected.
func (s *Service) Submit(ctx context.Context, studentID string, company models.Company, notes string) (*models.Application, error) {
	existing, err := s.find(ctx, studentID, company.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == models.AppNotApplied {
			// stale placeholder record, overwrite it below
		} else {
			return nil, fmt.Errorf("%w (status: %s)", ErrAlreadyApplied, existing.Status)
		}
	}

	now := s.now()
	app := &models.Application{
		CompanyID: company.ID,
		Company:   company.Name,
		Status:    models.AppPending,
		AppliedAt: &now,
		Notes:     notes,
	}

	data, err := encodeApplication(app, studentID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		app.ID = existing.ID
		if err := s.gw.SetDocument(ctx, collectionApplications, existing.ID, data, false); err != nil {
			return nil, err
		}
		return app, nil
	}

	id, err := s.gw.AddDocument(ctx, collectionApplications, data)
	if err != nil {
		return nil, err
	}
	app.ID = id
	return app, nil
}

// List returns all of the student's applications
func (s *Service) List(ctx context.Context, studentID string) ([]*models.Application, error) {
	docs, err := s.gw.Query(ctx, collectionApplications, "student_id", gateway.OpEqual, studentID)
	if err != nil {
		return nil, err
	}

	apps := []*models.Application{}
	for _, doc := range docs {
		app, err := decodeApplication(doc)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// StatusFor returns the application status for one company, not_applied if
// the student never submitted.
func (s *Service) StatusFor(ctx context.Context, studentID, companyID string) (models.ApplicationStatus, error) {
	app, err := s.find(ctx, studentID, companyID)
	if err != nil {
		return "", err
	}
	if app == nil {
		return models.AppNotApplied, nil
	}
	return app.Status, nil
}

func (s *Service) find(ctx context.Context, studentID, companyID string) (*models.Application, error) {
	docs, err := s.gw.Query(ctx, collectionApplications, "student_id", gateway.OpEqual, studentID)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if doc.Data["company_id"] == companyID {
			return decodeApplication(doc)
		}
	}
	return nil, nil
}

func encodeApplication(app *models.Application, studentID string) (map[string]any, error) {
	raw, err := json.Marshal(app)
	if err != nil {
		return nil, err
	}
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	delete(data, "id")
	data["student_id"] = studentID
	return data, nil
}

func decodeApplication(doc gateway.Document) (*models.Application, error) {
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, err
	}
	app := &models.Application{}
	if err := json.Unmarshal(raw, app); err != nil {
		return nil, fmt.Errorf("corrupt application document %s: %w", doc.ID, err)
	}
	app.ID = doc.ID
	return app, nil
}
