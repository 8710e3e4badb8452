package checklist

import (
	"testing"
	"time"

	"github.com/internquest/internquest/pkg/models"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	file := models.FileRef{Kind: models.FileKindBlob, Name: "resume.pdf"}

	tests := []struct {
		name     string
		req      models.Requirement
		expected models.RequirementStatus
	}{
		{
			name:     "no files, no due date",
			req:      models.Requirement{},
			expected: models.StatusPending,
		},
		{
			name:     "no files, future due date",
			req:      models.Requirement{DueDate: &tomorrow},
			expected: models.StatusPending,
		},
		{
			name:     "no files, past due date",
			req:      models.Requirement{DueDate: &yesterday},
			expected: models.StatusOverdue,
		},
		{
			name:     "file uploaded, no due date",
			req:      models.Requirement{UploadedFiles: []models.FileRef{file}},
			expected: models.StatusCompleted,
		},
		{
			name:     "file uploaded, past due date stays completed",
			req:      models.Requirement{DueDate: &yesterday, UploadedFiles: []models.FileRef{file}},
			expected: models.StatusCompleted,
		},
		{
			name: "multiple files, past due date",
			req: models.Requirement{
				DueDate:       &yesterday,
				UploadedFiles: []models.FileRef{file, {Kind: models.FileKindInline, Name: "scan.jpg"}},
			},
			expected: models.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeriveStatus(tt.req, now)
			if result != tt.expected {
				t.Errorf("DeriveStatus() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

// TestDeriveStatusAnyUploadCompletes verifies that uploading a file always
// satisfies a requirement regardless of what time it is.
func TestDeriveStatusAnyUploadCompletes(t *testing.T) {
	due := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	req := models.Requirement{
		DueDate:       &due,
		UploadedFiles: []models.FileRef{{Kind: models.FileKindLegacy, Name: "old.pdf"}},
	}

	times := []time.Time{
		time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		due,
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, now := range times {
		if got := DeriveStatus(req, now); got != models.StatusCompleted {
			t.Errorf("DeriveStatus at %v = %v, expected completed", now, got)
		}
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool // whether a date should parse
	}{
		{"empty", "", false},
		{"garbage", "not-a-date", false},
		{"iso date", "2026-09-15", true},
		{"rfc3339", "2026-09-15T08:00:00Z", true},
		{"slash format", "09/15/2026", true},
		{"partial number", "2026", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDueDate(tt.input)
			if (got != nil) != tt.want {
				t.Errorf("ParseDueDate(%q) = %v, expected parse=%v", tt.input, got, tt.want)
			}
		})
	}
}
