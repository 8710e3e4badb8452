package checklist

import (
	"time"

	"github.com/internquest/internquest/pkg/models"
)

// DeriveStatus maps a requirement and the current time to its displayed
// status. Uploading any file satisfies the requirement regardless of due
// date; with no files, a past due date means overdue, otherwise pending.
func DeriveStatus(r models.Requirement, now time.Time) models.RequirementStatus {
	if len(r.UploadedFiles) > 0 {
		return models.StatusCompleted
	}
	if r.DueDate != nil && r.DueDate.Before(now) {
		return models.StatusOverdue
	}
	return models.StatusPending
}

// dueDateFormats are accepted when parsing free-text due dates
var dueDateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseDueDate parses a free-text due date. A malformed or empty value is
// treated as no due date; this never returns an error so a bad date can
// never block rendering.
func ParseDueDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dueDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
