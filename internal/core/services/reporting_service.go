package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
)

var csvHeader = []string{"ArticleID", "Title", "Headline", "Category", "Status", "CreatedBy", "CreatedAt"}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	articles      portssvc.ArticleSvcFacade
	categoryRepo  portsrepo.WorkflowReader[domain.Category, int]
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates a new reporting service
func NewReportingService(
	repo portsrepo.ReportingRepository,
	articles portssvc.ArticleSvcFacade,
	categoryRepo portsrepo.WorkflowReader[domain.Category, int],
	accountRepo portsrepo.AccountReader,
) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
		articles:      articles,
		categoryRepo:  categoryRepo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ExportArticlesCSV writes the articles actor can list as CSV.
func (s *reportingService) ExportArticlesCSV(ctx context.Context, actor domain.Actor, filter domain.ListFilter, w io.Writer) error {
	if err := requireAdmin(actor, "export reports"); err != nil {
		return err
	}

	filter.Page = domain.Page{}
	articles, err := s.articles.List(ctx, actor, filter)
	if err != nil {
		return err
	}

	categoryNames, err := s.categoryNames(ctx)
	if err != nil {
		return err
	}
	authorNames := s.authorNames(ctx, lo.Uniq(lo.Map(articles, func(a domain.Article, _ int) int { return a.CreatedByID })))

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, a := range articles {
		category := ""
		if a.CategoryID != nil {
			category = categoryNames[*a.CategoryID]
		}
		record := []string{
			a.ArticleID,
			a.Title,
			a.Headline,
			category,
			a.Status.String(),
			authorNames[a.CreatedByID],
			a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	s.LogInfo(ctx, "Articles exported", slog.Int("row_count", len(articles)))
	return nil
}

func (s *reportingService) categoryNames(ctx context.Context) (map[int]string, error) {
	categories, err := s.categoryRepo.Query(ctx, workflow.Eq(domain.FieldIsDeleted, false), domain.Page{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load categories for export")
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return lo.SliceToMap(categories, func(c domain.Category) (int, string) {
		return c.CategoryID, c.Name
	}), nil
}

// authorNames resolves account names; unknown authors stay blank.
func (s *reportingService) authorNames(ctx context.Context, ids []int) map[int]string {
	names := make(map[int]string, len(ids))
	for _, id := range ids {
		account, err := s.accountRepo.FindAccountByID(ctx, id)
		if err != nil || account == nil {
			if err != nil && !isNotFound(err) {
				s.LogWarn(ctx, "Failed to resolve author name", slog.Int("account_id", id), slog.String("error", err.Error()))
			}
			continue
		}
		names[id] = account.Name
	}
	return names
}

// Statistics returns the overview report, running the aggregates concurrently.
func (s *reportingService) Statistics(ctx context.Context, actor domain.Actor, r domain.ReportRange) (*domain.Statistics, error) {
	if err := requireAdmin(actor, "view reports"); err != nil {
		return nil, err
	}
	if err := validateRange(r); err != nil {
		return nil, err
	}

	stats := &domain.Statistics{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.reportingRepo.CountByStatus(gctx, domain.KindArticle, nil, r)
		stats.Totals = totals
		return err
	})
	g.Go(func() error {
		rows, err := s.byCategory(gctx, r)
		stats.ByCategory = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.reportingRepo.ArticlesByAuthor(gctx, r)
		stats.ByAuthor = rows
		return err
	})
	g.Go(func() error {
		buckets, err := s.reportingRepo.ArticleTimeSeries(gctx, domain.GranularityMonth, r)
		stats.ByMonth = buckets
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build statistics")
		return nil, fmt.Errorf("failed to build statistics: %w", err)
	}
	if stats.Totals == nil {
		stats.Totals = domain.StatusCounts{}
	}
	return stats, nil
}

// ByCategory returns per-category totals ordered by article count.
func (s *reportingService) ByCategory(ctx context.Context, actor domain.Actor, r domain.ReportRange) ([]domain.CategoryReportRow, error) {
	if err := requireAdmin(actor, "view reports"); err != nil {
		return nil, err
	}
	if err := validateRange(r); err != nil {
		return nil, err
	}
	rows, err := s.byCategory(ctx, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to build category report")
		return nil, fmt.Errorf("failed to build category report: %w", err)
	}
	return rows, nil
}

func (s *reportingService) byCategory(ctx context.Context, r domain.ReportRange) ([]domain.CategoryReportRow, error) {
	rows, err := s.reportingRepo.ArticlesByCategory(ctx, r)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].PublishRate = publishRate(rows[i].Published, rows[i].Total)
	}
	slices.SortStableFunc(rows, func(a, b domain.CategoryReportRow) int {
		return b.Total - a.Total
	})
	return lo.Ternary(rows == nil, []domain.CategoryReportRow{}, rows), nil
}

// publishRate is the published share in percent, rounded to two places.
func publishRate(published, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(published)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

// ByAuthor returns per-author totals ordered by article count.
func (s *reportingService) ByAuthor(ctx context.Context, actor domain.Actor, r domain.ReportRange) ([]domain.AuthorReportRow, error) {
	if err := requireAdmin(actor, "view reports"); err != nil {
		return nil, err
	}
	if err := validateRange(r); err != nil {
		return nil, err
	}
	rows, err := s.reportingRepo.ArticlesByAuthor(ctx, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to build author report")
		return nil, fmt.Errorf("failed to build author report: %w", err)
	}
	slices.SortStableFunc(rows, func(a, b domain.AuthorReportRow) int {
		return b.Counts.Total() - a.Counts.Total()
	})
	return lo.Ternary(rows == nil, []domain.AuthorReportRow{}, rows), nil
}

// TimeSeries buckets article creation by g.
func (s *reportingService) TimeSeries(ctx context.Context, actor domain.Actor, g domain.Granularity, r domain.ReportRange) ([]domain.TimeBucket, error) {
	if err := requireAdmin(actor, "view reports"); err != nil {
		return nil, err
	}
	if err := validateRange(r); err != nil {
		return nil, err
	}
	switch g {
	case domain.GranularityDay, domain.GranularityWeek, domain.GranularityMonth:
	case "":
		g = domain.GranularityMonth
	default:
		return nil, apperrors.NewValidationError("groupBy", "groupBy must be one of day, week, month")
	}

	buckets, err := s.reportingRepo.ArticleTimeSeries(ctx, g, r)
	if err != nil {
		s.LogError(ctx, err, "Failed to build time series", slog.String("granularity", string(g)))
		return nil, fmt.Errorf("failed to build time series: %w", err)
	}
	return lo.Ternary(buckets == nil, []domain.TimeBucket{}, buckets), nil
}

// Dashboard returns global counts for Admin and own counts for Staff.
func (s *reportingService) Dashboard(ctx context.Context, actor domain.Actor) (*domain.Dashboard, error) {
	var createdBy *int
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleStaff:
		createdBy = lo.ToPtr(actor.AccountID)
	default:
		return nil, apperrors.Deny(apperrors.ErrForbidden, apperrors.ReasonRole, "Only Admin or Staff can view the dashboard.")
	}

	dashboard := &domain.Dashboard{Role: actor.Role}
	counts := map[domain.Kind]*domain.StatusCounts{
		domain.KindArticle:  &dashboard.Articles,
		domain.KindCategory: &dashboard.Categories,
		domain.KindTag:      &dashboard.Tags,
	}

	g, gctx := errgroup.WithContext(ctx)
	for kind, target := range counts {
		g.Go(func() error {
			c, err := s.reportingRepo.CountByStatus(gctx, kind, createdBy, domain.ReportRange{})
			if err != nil {
				return fmt.Errorf("failed to count %s entries: %w", kind, err)
			}
			if c == nil {
				c = domain.StatusCounts{}
			}
			*target = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard", slog.String("role", string(actor.Role)))
		return nil, err
	}

	if actor.Role == domain.RoleAdmin {
		dashboard.PendingModeration = dashboard.Articles[domain.StatusPending] +
			dashboard.Categories[domain.StatusPending] +
			dashboard.Tags[domain.StatusPending]
	}
	return dashboard, nil
}

func validateRange(r domain.ReportRange) error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return apperrors.NewValidationError("from", "from must not be after to ("+strconv.Quote(r.To.Format(time.DateOnly))+")")
	}
	return nil
}
