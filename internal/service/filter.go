package service

import (
	"strings"

	"github.com/recoleta-app/collector-api/internal/models"
)

// BucketView names which calendar the bucket key of a filter refers to.
type BucketView string

const (
	BucketViewWeekly  BucketView = "weekly"
	BucketViewMonthly BucketView = "monthly"
)

// FilterCriteria narrows a record set for list rendering and chart
// drill-down. Empty fields are inactive; active fields combine conjunctively.
type FilterCriteria struct {
	Status     models.DiscardStatus
	Mode       models.DiscardMode
	Category   models.ReportCategory
	Text       string
	BucketKey  string
	BucketView BucketView
}

// IsZero reports whether no criterion is active.
func (c FilterCriteria) IsZero() bool {
	return c.Status == "" && c.Mode == "" && c.Category == "" && c.Text == "" && c.BucketKey == ""
}

// applyFilter returns the records matching every active criterion, preserving
// input order. With no active criteria the input is returned as is.
func applyFilter(discards []models.Discard, criteria FilterCriteria) []models.Discard {
	if criteria.IsZero() {
		return discards
	}

	needle := strings.ToLower(strings.TrimSpace(criteria.Text))

	filtered := make([]models.Discard, 0, len(discards))
	for _, d := range discards {
		if !matches(d, criteria, needle) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

func matches(d models.Discard, criteria FilterCriteria, needle string) bool {
	if criteria.Status != "" && d.Status != criteria.Status {
		return false
	}
	if criteria.Mode != "" && d.Mode != criteria.Mode {
		return false
	}
	if criteria.Category != "" && models.Category(d.Status) != criteria.Category {
		return false
	}
	if needle != "" && !matchesText(d, needle) {
		return false
	}
	if criteria.BucketKey != "" && !matchesBucket(d, criteria) {
		return false
	}
	return true
}

func matchesText(d models.Discard, needle string) bool {
	if d.Client != nil && strings.Contains(strings.ToLower(d.Client.Name), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(d.Description), needle)
}

// matchesBucket checks whether the record lands in the chart bucket the
// caller clicked. Records without a usable timestamp never match a bucket.
func matchesBucket(d models.Discard, criteria FilterCriteria) bool {
	if d.CreatedAt.IsZero() {
		return false
	}
	if criteria.BucketView == BucketViewWeekly {
		return weeklyPeriodKey(d.CreatedAt) == criteria.BucketKey
	}
	return monthlyPeriodKey(d.CreatedAt) == criteria.BucketKey
}
