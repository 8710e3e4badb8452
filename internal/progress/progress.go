package progress

import (
	"math"
	"strconv"
	"strings"

	"github.com/internquest/internquest/pkg/models"
)

// Completion returns the checklist completion ratio in [0,1]: completed
// required items over all required items. Returns 0 when nothing is
// required (never NaN).
func Completion(requirements []models.Requirement) float64 {
	required := 0
	completed := 0
	for _, r := range requirements {
		if !r.IsRequired {
			continue
		}
		required++
		if r.Status == models.StatusCompleted {
			completed++
		}
	}
	if required == 0 {
		return 0
	}
	return float64(completed) / float64(required)
}

// Hours returns the hour-based progress ratio in [0,1]: the sum of logged
// hours over requiredHours, clamped. Log entries whose hours field does not
// parse to a finite number are skipped silently.
func Hours(logs []models.HourLog, requiredHours float64) float64 {
	if requiredHours <= 0 {
		return 0
	}

	sum := 0.0
	for _, l := range logs {
		h, err := strconv.ParseFloat(strings.TrimSpace(l.Hours), 64)
		if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
			continue
		}
		sum += h
	}

	ratio := sum / requiredHours
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// SumLoggedHours totals the parseable hour entries, skipping anything that
// is not a finite number.
func SumLoggedHours(logs []models.HourLog) float64 {
	sum := 0.0
	for _, l := range logs {
		h, err := strconv.ParseFloat(strings.TrimSpace(l.Hours), 64)
		if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
			continue
		}
		sum += h
	}
	return sum
}
