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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func selectCategories() string {
	return "SELECT c.category_id, c.name, c.description, c.parent_category_id, c.image_url, " +
		workflowSelect("c") + " FROM categories c"
}

func scanCategory(row rowScanner) (models.Category, error) {
	var m models.Category
	dest := append([]any{&m.CategoryID, &m.Name, &m.Description, &m.ParentCategoryID, &m.ImageURL},
		workflowDest(&m.WorkflowColumns)...)
	err := row.Scan(dest...)
	return m, err
}

// FindByID retrieves a category, soft-deleted ones included.
func (r *PgxCategoryRepository) FindByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	m, err := scanCategory(r.Pool.QueryRow(ctx, selectCategories()+" WHERE c.category_id = $1", categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %d", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to find category %d: %w", categoryID, err)
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// FindByIDForUpdate reads the row directly; the version column guards the later Update.
func (r *PgxCategoryRepository) FindByIDForUpdate(ctx context.Context, categoryID int) (*domain.Category, error) {
	return r.FindByID(ctx, categoryID)
}

// Query lists categories matching filter, newest first.
func (r *PgxCategoryRepository) Query(ctx context.Context, filter workflow.Predicate, page domain.Page) ([]domain.Category, error) {
	where, args, err := compileFilter(categoryTable, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit, args := pageClause(page, args)

	rows, err := r.Pool.Query(ctx, selectCategories()+" WHERE "+where+" ORDER BY c.created_at DESC, c.category_id DESC"+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

// Exists reports whether the category id is taken.
func (r *PgxCategoryRepository) Exists(ctx context.Context, categoryID int) (bool, error) {
	found, err := r.exists(ctx, "SELECT EXISTS(SELECT 1 FROM categories WHERE category_id = $1)", categoryID)
	if err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", categoryID, err)
	}
	return found, nil
}

// MaxID returns the highest category id ever used.
func (r *PgxCategoryRepository) MaxID(ctx context.Context) (int, error) {
	return r.maxID(ctx, "categories", "category_id")
}

// Create inserts a category.
func (r *PgxCategoryRepository) Create(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `INSERT INTO categories (category_id, name, description, parent_category_id, image_url, ` +
		workflowInsertColumns + `) VALUES (` + placeholders(1, 15) + `)`
	args := append([]any{m.CategoryID, m.Name, m.Description, m.ParentCategoryID, m.ImageURL},
		workflowInsertArgs(m.WorkflowColumns)...)

	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return mapWriteError(err, fmt.Sprintf("category %d", m.CategoryID))
	}
	return nil
}

// Update persists the category when its version still matches.
func (r *PgxCategoryRepository) Update(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `UPDATE categories SET name = $1, description = $2, parent_category_id = $3, image_url = $4, ` +
		workflowUpdateSet(5) + ` WHERE category_id = $12 AND version = $13`
	args := append([]any{m.Name, m.Description, m.ParentCategoryID, m.ImageURL}, workflowUpdateArgs(m.WorkflowColumns)...)
	args = append(args, m.CategoryID, m.Version)

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("category %d", m.CategoryID))
	}
	if cmdTag.RowsAffected() == 0 {
		return r.versionMiss(ctx, "SELECT EXISTS(SELECT 1 FROM categories WHERE category_id = $1)", m.CategoryID, "category")
	}
	return nil
}
