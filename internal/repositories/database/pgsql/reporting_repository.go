package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
)

// rangeCondition limits rows of alias to the report range bound at $from and $from+1.
func rangeCondition(alias string, from int) string {
	return fmt.Sprintf("($%[2]d::timestamptz IS NULL OR %[1]s.created_at >= $%[2]d) AND ($%[3]d::timestamptz IS NULL OR %[1]s.created_at <= $%[3]d)",
		alias, from, from+1)
}

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var kindTables = map[domain.Kind]string{
	domain.KindArticle:  "articles",
	domain.KindCategory: "categories",
	domain.KindTag:      "tags",
}

// CountByStatus counts non-deleted rows of a kind per status.
func (r *reportingRepository) CountByStatus(ctx context.Context, kind domain.Kind, createdBy *int, rng domain.ReportRange) (domain.StatusCounts, error) {
	table, ok := kindTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	query := fmt.Sprintf(`
		SELECT e.status, COUNT(*)
		FROM %s e
		WHERE NOT e.is_deleted
			AND ($1::int IS NULL OR e.created_by = $1)
			AND %s
		GROUP BY e.status`, table, rangeCondition("e", 2))

	rows, err := r.Pool.Query(ctx, query, createdBy, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("error counting %s by status: %w", table, err)
	}
	defer rows.Close()

	counts := domain.StatusCounts{}
	for rows.Next() {
		var status int16
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("error scanning %s status count: %w", table, err)
		}
		counts[domain.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s status counts: %w", table, err)
	}
	return counts, nil
}

// ArticlesByCategory aggregates articles per non-deleted category.
func (r *reportingRepository) ArticlesByCategory(ctx context.Context, rng domain.ReportRange) ([]domain.CategoryReportRow, error) {
	query := `
		SELECT c.category_id, c.name,
			COUNT(a.article_id) AS total,
			COUNT(a.article_id) FILTER (WHERE a.status = $1) AS published
		FROM categories c
		LEFT JOIN articles a ON a.category_id = c.category_id AND NOT a.is_deleted AND ` + rangeCondition("a", 2) + `
		WHERE NOT c.is_deleted
		GROUP BY c.category_id, c.name
		ORDER BY c.category_id`

	rows, err := r.Pool.Query(ctx, query, int16(domain.StatusPublished), rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("error querying articles by category: %w", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryReportRow, error) {
		var out domain.CategoryReportRow
		err := row.Scan(&out.CategoryID, &out.CategoryName, &out.Total, &out.Published)
		return out, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning category report rows: %w", err)
	}
	return result, nil
}

// ArticlesByAuthor aggregates article counts per author and status.
func (r *reportingRepository) ArticlesByAuthor(ctx context.Context, rng domain.ReportRange) ([]domain.AuthorReportRow, error) {
	query := `
		SELECT a.created_by, COALESCE(u.name, ''), a.status, COUNT(*)
		FROM articles a
		LEFT JOIN accounts u ON u.account_id = a.created_by
		WHERE NOT a.is_deleted AND ` + rangeCondition("a", 1) + `
		GROUP BY a.created_by, u.name, a.status
		ORDER BY a.created_by, a.status`

	rows, err := r.Pool.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("error querying articles by author: %w", err)
	}
	defer rows.Close()

	var result []domain.AuthorReportRow
	index := map[int]int{}
	for rows.Next() {
		var accountID, n int
		var name string
		var status int16
		if err := rows.Scan(&accountID, &name, &status, &n); err != nil {
			return nil, fmt.Errorf("error scanning author report row: %w", err)
		}
		i, ok := index[accountID]
		if !ok {
			i = len(result)
			index[accountID] = i
			result = append(result, domain.AuthorReportRow{AccountID: accountID, AccountName: name, Counts: domain.StatusCounts{}})
		}
		result[i].Counts[domain.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author report rows: %w", err)
	}
	if result == nil {
		return []domain.AuthorReportRow{}, nil
	}
	return result, nil
}

// ArticleTimeSeries buckets article creation. Weeks start on Monday (ISO).
func (r *reportingRepository) ArticleTimeSeries(ctx context.Context, g domain.Granularity, rng domain.ReportRange) ([]domain.TimeBucket, error) {
	query := `
		SELECT date_trunc($1::text, a.created_at AT TIME ZONE 'UTC') AS period,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE a.status = $2) AS published
		FROM articles a
		WHERE NOT a.is_deleted AND ` + rangeCondition("a", 3) + `
		GROUP BY period
		ORDER BY period`

	rows, err := r.Pool.Query(ctx, query, string(g), int16(domain.StatusPublished), rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("error querying article time series: %w", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TimeBucket, error) {
		var out domain.TimeBucket
		err := row.Scan(&out.PeriodStart, &out.Total, &out.Published)
		out.PeriodStart = out.PeriodStart.UTC()
		return out, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning time buckets: %w", err)
	}
	return result, nil
}

// TopTagNames returns the names of the tags attached to the most articles in range.
func (r *reportingRepository) TopTagNames(ctx context.Context, rng domain.ReportRange, limit int) ([]string, error) {
	query := `
		SELECT t.name
		FROM article_tags x
		JOIN articles a ON a.article_id = x.article_id
		JOIN tags t ON t.tag_id = x.tag_id
		WHERE NOT a.is_deleted AND NOT t.is_deleted AND ` + rangeCondition("a", 1) + `
		GROUP BY t.tag_id, t.name
		ORDER BY COUNT(*) DESC, t.name
		LIMIT $3`

	rows, err := r.Pool.Query(ctx, query, rng.From, rng.To, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top tags: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("error scanning top tags: %w", err)
	}
	return names, nil
}
