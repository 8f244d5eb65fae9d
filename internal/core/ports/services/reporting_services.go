package services

import (
	"context"
	"io"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// ReportingService defines the Admin reports over moderated content
type ReportingService interface {
	// ExportArticlesCSV writes the articles visible to actor as CSV, newest first.
	ExportArticlesCSV(ctx context.Context, actor domain.Actor, filter domain.ListFilter, w io.Writer) error

	// Statistics returns totals per status plus the category, author and monthly breakdowns.
	Statistics(ctx context.Context, actor domain.Actor, r domain.ReportRange) (*domain.Statistics, error)

	// ByCategory returns per-category totals and publish rates.
	ByCategory(ctx context.Context, actor domain.Actor, r domain.ReportRange) ([]domain.CategoryReportRow, error)

	// ByAuthor returns per-author totals by status.
	ByAuthor(ctx context.Context, actor domain.Actor, r domain.ReportRange) ([]domain.AuthorReportRow, error)

	// TimeSeries buckets article creation by day, week or month.
	TimeSeries(ctx context.Context, actor domain.Actor, g domain.Granularity, r domain.ReportRange) ([]domain.TimeBucket, error)

	// Dashboard summarises the workflow for actor. Staff only see their own content.
	Dashboard(ctx context.Context, actor domain.Actor) (*domain.Dashboard, error)
}
