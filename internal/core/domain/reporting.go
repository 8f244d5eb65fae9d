package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCounts maps a status to the number of entities in it.
type StatusCounts map[Status]int

// Total sums every status.
func (c StatusCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CategoryReportRow aggregates articles of one category.
type CategoryReportRow struct {
	CategoryID   int
	CategoryName string
	Total        int
	Published    int
	PublishRate  decimal.Decimal
}

// AuthorReportRow aggregates articles of one author.
type AuthorReportRow struct {
	AccountID   int
	AccountName string
	Counts      StatusCounts
}

// TimeBucket groups articles created within one period.
type TimeBucket struct {
	PeriodStart time.Time
	Total       int
	Published   int
}

// Granularity selects the bucket size of a time series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ReportRange limits reports to articles created in [From, To].
type ReportRange struct {
	From *time.Time
	To   *time.Time
}

// Statistics is the overview report.
type Statistics struct {
	Totals     StatusCounts
	ByCategory []CategoryReportRow
	ByAuthor   []AuthorReportRow
	ByMonth    []TimeBucket
}

// Dashboard summarises the workflow for the caller.
type Dashboard struct {
	Role              Role
	Articles          StatusCounts
	Categories        StatusCounts
	Tags              StatusCounts
	PendingModeration int
}

// Insights is the assistant generated overview of recent content.
type Insights struct {
	From        time.Time
	To          time.Time
	ByStatus    StatusCounts
	ByCategory  map[string]int
	TopKeywords []string
	Summary     string
}
