package repositories

import (
	"context"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// ReportingRepository defines aggregate queries over non-deleted content.
type ReportingRepository interface {
	// CountByStatus counts non-deleted entities of kind per status. Staff dashboards pass createdBy.
	CountByStatus(ctx context.Context, kind domain.Kind, createdBy *int, r domain.ReportRange) (domain.StatusCounts, error)

	// ArticlesByCategory aggregates article totals and published counts per category.
	ArticlesByCategory(ctx context.Context, r domain.ReportRange) ([]domain.CategoryReportRow, error)

	// ArticlesByAuthor aggregates article counts per author and status.
	ArticlesByAuthor(ctx context.Context, r domain.ReportRange) ([]domain.AuthorReportRow, error)

	// ArticleTimeSeries buckets article creation by granularity.
	ArticleTimeSeries(ctx context.Context, g domain.Granularity, r domain.ReportRange) ([]domain.TimeBucket, error)

	// TopTagNames returns the names of the tags used most by articles in range.
	TopTagNames(ctx context.Context, r domain.ReportRange, limit int) ([]string, error)
}
