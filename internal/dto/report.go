package dto

// ReportBucket is one dense calendar slot of the aggregation: a weekday in
// the weekly view or a month in the yearly view. Buckets always appear, even
// with all counts at zero, so charts can render a stable axis.
type ReportBucket struct {
	Label     string `json:"label"`
	PeriodKey string `json:"periodKey"`
	Pending   int    `json:"pendentes"`
	Accepted  int    `json:"aceitos"`
	Received  int    `json:"recebidos"`
}

// StackedPoint is a stacked bar chart point, a pass-through of bucket counts.
type StackedPoint struct {
	Label    string `json:"label"`
	Pending  int    `json:"pendentes"`
	Accepted int    `json:"aceitos"`
	Received int    `json:"recebidos"`
}

// AreaPoint is a cumulative area chart point: accepted plus received, the
// "resolved or in-progress" workload per bucket.
type AreaPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// CategoryTotals aggregates whole-set counts per report category.
type CategoryTotals struct {
	Pending  int `json:"pendentes"`
	Accepted int `json:"aceitos"`
	Received int `json:"recebidos"`
}

// DashboardResponse feeds the overview screen: weekly movement plus totals
// over the recent window.
type DashboardResponse struct {
	TotalsWindowDays int            `json:"totalsWindowDays"`
	Totals           CategoryTotals `json:"totals"`
	Week             []ReportBucket `json:"week"`
	Stacked          []StackedPoint `json:"stacked"`
	Area             []AreaPoint    `json:"area"`
}

// MonthSummary echoes the drilled-down bucket selected on the history chart.
type MonthSummary struct {
	PeriodKey string `json:"periodKey"`
	Label     string `json:"label"`
	Pending   int    `json:"pendentes"`
	Accepted  int    `json:"aceitos"`
	Received  int    `json:"recebidos"`
}

// HistoryResponse feeds the history screen: the twelve-month chart, quick
// totals and the filtered record table.
type HistoryResponse struct {
	Months   []ReportBucket `json:"months"`
	Stacked  []StackedPoint `json:"stacked"`
	Area     []AreaPoint    `json:"area"`
	Totals   CategoryTotals `json:"totals"`
	Selected *MonthSummary  `json:"selected,omitempty"`
	Records  []DiscardView  `json:"records"`
}
