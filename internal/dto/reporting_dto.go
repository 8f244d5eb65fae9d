package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// ReportRangeParams limits a report to articles created between two dates, both inclusive.
type ReportRangeParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To   *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
}

// ToRange converts the query to a domain range.
func (p ReportRangeParams) ToRange() domain.ReportRange {
	return domain.ReportRange{From: p.From, To: endOfDay(p.To)}
}

// TimeSeriesParams selects the bucket size of the time series report.
type TimeSeriesParams struct {
	ReportRangeParams
	GroupBy string `form:"groupBy" binding:"omitempty,oneof=day week month"`
}

// StatusCountsResponse renders counts keyed by status name.
type StatusCountsResponse map[string]int

// ToStatusCountsResponse converts domain counts.
func ToStatusCountsResponse(counts domain.StatusCounts) StatusCountsResponse {
	out := make(StatusCountsResponse, len(counts))
	for status, n := range counts {
		out[status.String()] = n
	}
	return out
}

// CategoryReportRowResponse is one row of the category report.
type CategoryReportRowResponse struct {
	CategoryID   int             `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Total        int             `json:"total"`
	Published    int             `json:"published"`
	PublishRate  decimal.Decimal `json:"publishRate"`
}

// ToCategoryReportResponse converts category rows.
func ToCategoryReportResponse(rows []domain.CategoryReportRow) []CategoryReportRowResponse {
	return lo.Map(rows, func(r domain.CategoryReportRow, _ int) CategoryReportRowResponse {
		return CategoryReportRowResponse{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Total:        r.Total,
			Published:    r.Published,
			PublishRate:  r.PublishRate.Round(2),
		}
	})
}

// AuthorReportRowResponse is one row of the author report.
type AuthorReportRowResponse struct {
	AccountID   int                  `json:"accountID"`
	AccountName string               `json:"accountName"`
	Total       int                  `json:"total"`
	ByStatus    StatusCountsResponse `json:"byStatus"`
}

// ToAuthorReportResponse converts author rows.
func ToAuthorReportResponse(rows []domain.AuthorReportRow) []AuthorReportRowResponse {
	return lo.Map(rows, func(r domain.AuthorReportRow, _ int) AuthorReportRowResponse {
		return AuthorReportRowResponse{
			AccountID:   r.AccountID,
			AccountName: r.AccountName,
			Total:       r.Counts.Total(),
			ByStatus:    ToStatusCountsResponse(r.Counts),
		}
	})
}

// TimeBucketResponse is one period of the time series report.
type TimeBucketResponse struct {
	Period    string `json:"period"`
	Total     int    `json:"total"`
	Published int    `json:"published"`
}

// ToTimeSeriesResponse converts buckets, rendering each period by its first day.
func ToTimeSeriesResponse(buckets []domain.TimeBucket) []TimeBucketResponse {
	return lo.Map(buckets, func(b domain.TimeBucket, _ int) TimeBucketResponse {
		return TimeBucketResponse{Period: b.PeriodStart.Format("2006-01-02"), Total: b.Total, Published: b.Published}
	})
}

// StatisticsResponse is the overview report.
type StatisticsResponse struct {
	Total      int                         `json:"total"`
	ByStatus   StatusCountsResponse        `json:"byStatus"`
	ByCategory []CategoryReportRowResponse `json:"byCategory"`
	ByAuthor   []AuthorReportRowResponse   `json:"byAuthor"`
	ByMonth    []TimeBucketResponse        `json:"byMonth"`
}

// ToStatisticsResponse converts the overview report.
func ToStatisticsResponse(s *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Total:      s.Totals.Total(),
		ByStatus:   ToStatusCountsResponse(s.Totals),
		ByCategory: ToCategoryReportResponse(s.ByCategory),
		ByAuthor:   ToAuthorReportResponse(s.ByAuthor),
		ByMonth:    ToTimeSeriesResponse(s.ByMonth),
	}
}

// DashboardResponse summarises the workflow for the caller.
type DashboardResponse struct {
	Role              domain.Role          `json:"role"`
	Articles          StatusCountsResponse `json:"articles"`
	Categories        StatusCountsResponse `json:"categories"`
	Tags              StatusCountsResponse `json:"tags"`
	PendingModeration int                  `json:"pendingModeration"`
}

// ToDashboardResponse converts the dashboard.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Role:              d.Role,
		Articles:          ToStatusCountsResponse(d.Articles),
		Categories:        ToStatusCountsResponse(d.Categories),
		Tags:              ToStatusCountsResponse(d.Tags),
		PendingModeration: d.PendingModeration,
	}
}
