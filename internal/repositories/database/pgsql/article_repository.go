package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
	"github.com/SscSPs/news_management_app/internal/models"
	"github.com/SscSPs/news_management_app/internal/utils/mapping"
)

const articleSelect = `
	SELECT a.article_id, a.title, a.headline, a.content, a.source, a.category_id, a.image_url,
		COALESCE((SELECT array_agg(x.tag_id ORDER BY x.tag_id) FROM article_tags x WHERE x.article_id = a.article_id), '{}'::int[]),
		` + "%s" + `
	FROM articles a`

type PgxArticleRepository struct {
	BaseRepository
}

// newPgxArticleRepository creates a new repository for article data.
func newPgxArticleRepository(pool *pgxpool.Pool) portsrepo.ArticleRepositoryFacade {
	return &PgxArticleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

func selectArticles() string {
	return fmt.Sprintf(articleSelect, workflowSelect("a"))
}

func scanArticle(row rowScanner) (models.Article, error) {
	var m models.Article
	dest := append([]any{
		&m.ArticleID, &m.Title, &m.Headline, &m.Content, &m.Source, &m.CategoryID, &m.ImageURL, &m.TagIDs,
	}, workflowDest(&m.WorkflowColumns)...)
	err := row.Scan(dest...)
	return m, err
}

// FindByID retrieves an article, soft-deleted ones included.
func (r *PgxArticleRepository) FindByID(ctx context.Context, articleID string) (*domain.Article, error) {
	m, err := scanArticle(r.Pool.QueryRow(ctx, selectArticles()+" WHERE a.article_id = $1", articleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: article %s", apperrors.ErrNotFound, articleID)
		}
		return nil, fmt.Errorf("failed to find article %s: %w", articleID, err)
	}
	article := mapping.ToDomainArticle(m)
	return &article, nil
}

// FindByIDForUpdate reads the row directly; the version column guards the later Update.
func (r *PgxArticleRepository) FindByIDForUpdate(ctx context.Context, articleID string) (*domain.Article, error) {
	return r.FindByID(ctx, articleID)
}

// Query lists articles matching filter, newest first.
func (r *PgxArticleRepository) Query(ctx context.Context, filter workflow.Predicate, page domain.Page) ([]domain.Article, error) {
	where, args, err := compileFilter(articleTable, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit, args := pageClause(page, args)
	query := selectArticles() + " WHERE " + where + " ORDER BY a.created_at DESC, a.article_id" + limit

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Article, error) {
		return scanArticle(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}
	return mapping.ToDomainArticleSlice(ms), nil
}

// Exists reports whether the article id is taken.
func (r *PgxArticleRepository) Exists(ctx context.Context, articleID string) (bool, error) {
	found, err := r.exists(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", articleID)
	if err != nil {
		return false, fmt.Errorf("failed to check article %s: %w", articleID, err)
	}
	return found, nil
}

// Create inserts the article and its tag links in one transaction.
func (r *PgxArticleRepository) Create(ctx context.Context, article domain.Article) error {
	m := mapping.ToModelArticle(article)
	query := `INSERT INTO articles (article_id, title, headline, content, source, category_id, image_url, ` +
		workflowInsertColumns + `) VALUES (` + placeholders(1, 17) + `)`
	args := append([]any{m.ArticleID, m.Title, m.Headline, m.Content, m.Source, m.CategoryID, m.ImageURL},
		workflowInsertArgs(m.WorkflowColumns)...)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return mapWriteError(err, "article "+m.ArticleID)
		}
		return replaceArticleTags(ctx, tx, m.ArticleID, m.TagIDs)
	})
}

// Update persists the article when its version still matches, replacing its tag links.
func (r *PgxArticleRepository) Update(ctx context.Context, article domain.Article) error {
	m := mapping.ToModelArticle(article)
	query := `UPDATE articles SET title = $1, headline = $2, content = $3, source = $4, category_id = $5, image_url = $6, ` +
		workflowUpdateSet(7) + ` WHERE article_id = $14 AND version = $15`
	args := append([]any{m.Title, m.Headline, m.Content, m.Source, m.CategoryID, m.ImageURL},
		workflowUpdateArgs(m.WorkflowColumns)...)
	args = append(args, m.ArticleID, m.Version)

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return mapWriteError(err, "article "+m.ArticleID)
		}
		if cmdTag.RowsAffected() == 0 {
			return errVersionMiss
		}
		return replaceArticleTags(ctx, tx, m.ArticleID, m.TagIDs)
	})
	if errors.Is(err, errVersionMiss) {
		return r.versionMiss(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", m.ArticleID, "article")
	}
	return err
}

func replaceArticleTags(ctx context.Context, tx pgx.Tx, articleID string, tagIDs []int32) error {
	if _, err := tx.Exec(ctx, "DELETE FROM article_tags WHERE article_id = $1", articleID); err != nil {
		return fmt.Errorf("failed to clear tags of article %s: %w", articleID, err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx,
		"INSERT INTO article_tags (article_id, tag_id) SELECT DISTINCT $1::varchar, unnest($2::int[])",
		articleID, tagIDs)
	if err != nil {
		return mapWriteError(err, "tags of article "+articleID)
	}
	return nil
}
