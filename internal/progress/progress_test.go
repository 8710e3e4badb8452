package progress

import (
	"testing"

	"github.com/internquest/internquest/pkg/models"
)

func req(status models.RequirementStatus, required bool) models.Requirement {
	return models.Requirement{Status: status, IsRequired: required}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name     string
		reqs     []models.Requirement
		expected float64
	}{
		{
			name:     "empty list has zero progress",
			reqs:     []models.Requirement{},
			expected: 0,
		},
		{
			name:     "nothing required has zero progress",
			reqs:     []models.Requirement{req(models.StatusCompleted, false)},
			expected: 0,
		},
		{
			name: "half complete",
			reqs: []models.Requirement{
				req(models.StatusCompleted, true),
				req(models.StatusPending, true),
			},
			expected: 0.5,
		},
		{
			name: "optional items excluded from denominator",
			reqs: []models.Requirement{
				req(models.StatusCompleted, true),
				req(models.StatusPending, false),
			},
			expected: 1,
		},
		{
			name: "overdue counts as incomplete",
			reqs: []models.Requirement{
				req(models.StatusOverdue, true),
				req(models.StatusCompleted, true),
			},
			expected: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Completion(tt.reqs)
			if got != tt.expected {
				t.Errorf("Completion() = %f, expected %f", got, tt.expected)
			}
		})
	}
}

// TestCompletionMonotonic verifies progress never decreases as required
// items flip to completed one at a time.
func TestCompletionMonotonic(t *testing.T) {
	reqs := []models.Requirement{
		req(models.StatusPending, true),
		req(models.StatusOverdue, true),
		req(models.StatusPending, true),
		req(models.StatusPending, false),
	}

	prev := Completion(reqs)
	for i := range reqs {
		reqs[i].Status = models.StatusCompleted
		current := Completion(reqs)
		if current < prev {
			t.Errorf("progress decreased from %f to %f after completing item %d", prev, current, i)
		}
		prev = current
	}
	if prev != 1 {
		t.Errorf("all required complete should give 1, got %f", prev)
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		name     string
		logs     []models.HourLog
		required float64
		expected float64
	}{
		{
			name:     "no required hours",
			logs:     []models.HourLog{{Hours: "8"}},
			required: 0,
			expected: 0,
		},
		{
			name:     "half done",
			logs:     []models.HourLog{{Hours: "4"}, {Hours: "6"}},
			required: 20,
			expected: 0.5,
		},
		{
			name:     "clamped at one",
			logs:     []models.HourLog{{Hours: "50"}},
			required: 20,
			expected: 1,
		},
		{
			name: "unparseable entries skipped silently",
			logs: []models.HourLog{
				{Hours: "8"},
				{Hours: "eight"},
				{Hours: ""},
				{Hours: "NaN"},
				{Hours: "Inf"},
				{Hours: "2"},
			},
			required: 20,
			expected: 0.5,
		},
		{
			name:     "whitespace tolerated",
			logs:     []models.HourLog{{Hours: " 10 "}},
			required: 20,
			expected: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hours(tt.logs, tt.required)
			if got != tt.expected {
				t.Errorf("Hours() = %f, expected %f", got, tt.expected)
			}
		})
	}
}

func TestSumLoggedHours(t *testing.T) {
	logs := []models.HourLog{
		{Hours: "7.5"},
		{Hours: "bad"},
		{Hours: "0.5"},
	}
	if got := SumLoggedHours(logs); got != 8 {
		t.Errorf("SumLoggedHours() = %f, expected 8", got)
	}
}
