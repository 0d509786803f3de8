package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/recoleta-app/collector-api/internal/dto"
	"github.com/recoleta-app/collector-api/internal/models"
)

var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

var monthLabels = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// weeklyBuckets returns the seven weekday slots, Sunday first, all zeroed.
// Charts rely on every slot being present regardless of data.
func weeklyBuckets() []dto.ReportBucket {
	buckets := make([]dto.ReportBucket, 7)
	for i := range buckets {
		buckets[i] = dto.ReportBucket{Label: weekdayLabels[i], PeriodKey: strconv.Itoa(i)}
	}
	return buckets
}

// monthlyBuckets returns the twelve month slots, January first, all zeroed.
func monthlyBuckets() []dto.ReportBucket {
	buckets := make([]dto.ReportBucket, 12)
	for i := range buckets {
		buckets[i] = dto.ReportBucket{Label: monthLabels[i], PeriodKey: fmt.Sprintf("%02d", i+1)}
	}
	return buckets
}

// weeklyPeriodKey is the slot key a record lands in on the weekly view.
func weeklyPeriodKey(createdAt time.Time) string {
	return strconv.Itoa(int(createdAt.Weekday()))
}

// monthlyPeriodKey is the slot key a record lands in on the yearly view.
// Only the month matters; records from different years share a bucket.
func monthlyPeriodKey(createdAt time.Time) string {
	return fmt.Sprintf("%02d", int(createdAt.Month()))
}

// bucketWeekly aggregates records into weekday buckets. Only records no older
// than the window (seven days by default) count, so each weekday slot holds a
// single week's activity rather than every Monday ever seen. Records with an
// unparsable timestamp are skipped.
func bucketWeekly(discards []models.Discard, now time.Time, window time.Duration) []dto.ReportBucket {
	buckets := weeklyBuckets()
	for _, d := range discards {
		if d.CreatedAt.IsZero() {
			continue
		}
		if now.Sub(d.CreatedAt) > window {
			continue
		}
		increment(&buckets[int(d.CreatedAt.Weekday())], d.Status)
	}
	return buckets
}

// bucketMonthly aggregates all records into calendar-month buckets.
func bucketMonthly(discards []models.Discard) []dto.ReportBucket {
	buckets := monthlyBuckets()
	for _, d := range discards {
		if d.CreatedAt.IsZero() {
			continue
		}
		increment(&buckets[int(d.CreatedAt.Month())-1], d.Status)
	}
	return buckets
}

func increment(bucket *dto.ReportBucket, status models.DiscardStatus) {
	switch models.Category(status) {
	case models.CategoryReceived:
		bucket.Received++
	case models.CategoryAccepted:
		bucket.Accepted++
	default:
		bucket.Pending++
	}
}

// stackedSeries projects buckets into stacked bar chart points.
func stackedSeries(buckets []dto.ReportBucket) []dto.StackedPoint {
	points := make([]dto.StackedPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, dto.StackedPoint{
			Label:    b.Label,
			Pending:  b.Pending,
			Accepted: b.Accepted,
			Received: b.Received,
		})
	}
	return points
}

// areaSeries projects buckets into the accepted-plus-received area chart.
func areaSeries(buckets []dto.ReportBucket) []dto.AreaPoint {
	points := make([]dto.AreaPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, dto.AreaPoint{Label: b.Label, Value: b.Accepted + b.Received})
	}
	return points
}

// categoryTotals counts records per report category. A positive window keeps
// only records created within it; zero or negative means no window.
func categoryTotals(discards []models.Discard, now time.Time, window time.Duration) dto.CategoryTotals {
	var totals dto.CategoryTotals
	for _, d := range discards {
		if window > 0 {
			if d.CreatedAt.IsZero() || now.Sub(d.CreatedAt) > window {
				continue
			}
		}
		switch models.Category(d.Status) {
		case models.CategoryReceived:
			totals.Received++
		case models.CategoryAccepted:
			totals.Accepted++
		default:
			totals.Pending++
		}
	}
	return totals
}
