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

type PgxTagRepository struct {
	BaseRepository
}

// newPgxTagRepository creates a new repository for tag data.
func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

func selectTags() string {
	return "SELECT t.tag_id, t.name, t.note, t.image_url, " + workflowSelect("t") + " FROM tags t"
}

func scanTag(row rowScanner) (models.Tag, error) {
	var m models.Tag
	dest := append([]any{&m.TagID, &m.Name, &m.Note, &m.ImageURL}, workflowDest(&m.WorkflowColumns)...)
	err := row.Scan(dest...)
	return m, err
}

// FindByID retrieves a tag, soft-deleted ones included.
func (r *PgxTagRepository) FindByID(ctx context.Context, tagID int) (*domain.Tag, error) {
	m, err := scanTag(r.Pool.QueryRow(ctx, selectTags()+" WHERE t.tag_id = $1", tagID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: tag %d", apperrors.ErrNotFound, tagID)
		}
		return nil, fmt.Errorf("failed to find tag %d: %w", tagID, err)
	}
	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

// FindByIDForUpdate reads the row directly; the version column guards the later Update.
func (r *PgxTagRepository) FindByIDForUpdate(ctx context.Context, tagID int) (*domain.Tag, error) {
	return r.FindByID(ctx, tagID)
}

// Query lists tags matching filter, newest first.
func (r *PgxTagRepository) Query(ctx context.Context, filter workflow.Predicate, page domain.Page) ([]domain.Tag, error) {
	where, args, err := compileFilter(tagTable, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	limit, args := pageClause(page, args)

	rows, err := r.Pool.Query(ctx, selectTags()+" WHERE "+where+" ORDER BY t.created_at DESC, t.tag_id DESC"+limit, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Tag, error) {
		return scanTag(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tags: %w", err)
	}
	return mapping.ToDomainTagSlice(ms), nil
}

// Exists reports whether the tag id is taken.
func (r *PgxTagRepository) Exists(ctx context.Context, tagID int) (bool, error) {
	found, err := r.exists(ctx, "SELECT EXISTS(SELECT 1 FROM tags WHERE tag_id = $1)", tagID)
	if err != nil {
		return false, fmt.Errorf("failed to check tag %d: %w", tagID, err)
	}
	return found, nil
}

// MaxID returns the highest tag id ever used.
func (r *PgxTagRepository) MaxID(ctx context.Context) (int, error) {
	return r.maxID(ctx, "tags", "tag_id")
}

// Create inserts a tag.
func (r *PgxTagRepository) Create(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)
	query := `INSERT INTO tags (tag_id, name, note, image_url, ` + workflowInsertColumns +
		`) VALUES (` + placeholders(1, 14) + `)`
	args := append([]any{m.TagID, m.Name, m.Note, m.ImageURL}, workflowInsertArgs(m.WorkflowColumns)...)

	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return mapWriteError(err, fmt.Sprintf("tag %d", m.TagID))
	}
	return nil
}

// Update persists the tag when its version still matches.
func (r *PgxTagRepository) Update(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)
	query := `UPDATE tags SET name = $1, note = $2, image_url = $3, ` +
		workflowUpdateSet(4) + ` WHERE tag_id = $11 AND version = $12`
	args := append([]any{m.Name, m.Note, m.ImageURL}, workflowUpdateArgs(m.WorkflowColumns)...)
	args = append(args, m.TagID, m.Version)

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("tag %d", m.TagID))
	}
	if cmdTag.RowsAffected() == 0 {
		return r.versionMiss(ctx, "SELECT EXISTS(SELECT 1 FROM tags WHERE tag_id = $1)", m.TagID, "tag")
	}
	return nil
}
