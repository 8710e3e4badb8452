package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/internquest/internquest/internal/gateway"
	"github.com/internquest/internquest/pkg/models"
)

const (
	collectionUsers    = "users"
	collectionHourLogs = "hour_logs"
)

// Service loads and mutates the student's profile document
type Service struct {
	gw  gateway.Gateway
	now func() time.Time
}

// NewService returns a profile service over gw
func NewService(gw gateway.Gateway) *Service {
	return &Service{gw: gw, now: time.Now}
}

// Get fetches the profile, creating an empty one on first access
func (s *Service) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	data, err := s.gw.GetDocument(ctx, collectionUsers, userID)
	if err == gateway.ErrNotFound {
		p := &models.UserProfile{
			ID:        userID,
			Skills:    []string{},
			CreatedAt: s.now(),
			UpdatedAt: s.now(),
		}
		if err := s.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	p := &models.UserProfile{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("corrupt profile document %s: %w", userID, err)
	}
	p.ID = userID
	return p, nil
}

// Save writes the full profile document (merge off, last writer wins)
func (s *Service) Save(ctx context.Context, p *models.UserProfile) error {
	p.UpdatedAt = s.now()

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	return s.gw.SetDocument(ctx, collectionUsers, p.ID, data, false)
}

// AddSkill appends a skill, ignoring duplicates case-insensitively
func (s *Service) AddSkill(ctx context.Context, userID, skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return fmt.Errorf("skill name is required")
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	for _, existing := range p.Skills {
		if strings.EqualFold(existing, skill) {
			return nil
		}
	}
	p.Skills = append(p.Skills, skill)
	return s.Save(ctx, p)
}

// RemoveSkill removes a skill case-insensitively
func (s *Service) RemoveSkill(ctx context.Context, userID, skill string) error {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	kept := p.Skills[:0]
	for _, existing := range p.Skills {
		if !strings.EqualFold(existing, skill) {
			kept = append(kept, existing)
		}
	}
	p.Skills = kept
	return s.Save(ctx, p)
}

// LogHours records a worked-hours entry. Hours is kept as entered; the
// progress calculator skips entries that do not parse.
func (s *Service) LogHours(ctx context.Context, userID string, date time.Time, hours, activity string) (string, error) {
	return s.gw.AddDocument(ctx, collectionHourLogs, map[string]any{
		"student_id": userID,
		"date":       date.Format("2006-01-02"),
		"hours":      hours,
		"activity":   activity,
	})
}

// HourLogs returns the student's logged entries ordered by date
func (s *Service) HourLogs(ctx context.Context, userID string) ([]models.HourLog, error) {
	docs, err := s.gw.Query(ctx, collectionHourLogs, "student_id", gateway.OpEqual, userID)
	if err != nil {
		return nil, err
	}

	logs := []models.HourLog{}
	for _, doc := range docs {
		entry := models.HourLog{ID: doc.ID}
		if v, ok := doc.Data["hours"].(string); ok {
			entry.Hours = v
		}
		if v, ok := doc.Data["activity"].(string); ok {
			entry.Activity = v
		}
		if v, ok := doc.Data["date"].(string); ok {
			if t, err := time.Parse("2006-01-02", v); err == nil {
				entry.Date = t
			}
		}
		logs = append(logs, entry)
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	return logs, nil
}
