package pgsql

import (
	"fmt"

	"github.com/SscSPs/news_management_app/internal/models"
)

// workflowSelect lists the workflow columns of alias in scan order.
func workflowSelect(alias string) string {
	return fmt.Sprintf("%[1]s.status, %[1]s.created_by, %[1]s.updated_by, %[1]s.created_at, %[1]s.modified_at, "+
		"%[1]s.is_active, %[1]s.is_deleted, %[1]s.deleted_at, %[1]s.deleted_by, %[1]s.version", alias)
}

// workflowDest returns scan targets matching workflowSelect.
func workflowDest(w *models.WorkflowColumns) []any {
	return []any{
		&w.Status, &w.CreatedBy, &w.UpdatedBy, &w.CreatedAt, &w.ModifiedAt,
		&w.IsActive, &w.IsDeleted, &w.DeletedAt, &w.DeletedBy, &w.Version,
	}
}

// workflowUpdateSet is the SET fragment for mutable workflow columns starting at placeholder n.
// It consumes 7 arguments, see workflowUpdateArgs.
func workflowUpdateSet(n int) string {
	return fmt.Sprintf("status = $%d, updated_by = $%d, modified_at = $%d, is_active = $%d, "+
		"is_deleted = $%d, deleted_at = $%d, deleted_by = $%d, version = version + 1",
		n, n+1, n+2, n+3, n+4, n+5, n+6)
}

func workflowUpdateArgs(w models.WorkflowColumns) []any {
	return []any{w.Status, w.UpdatedBy, w.ModifiedAt, w.IsActive, w.IsDeleted, w.DeletedAt, w.DeletedBy}
}

// workflowInsertColumns are the workflow columns written on insert.
const workflowInsertColumns = "status, created_by, updated_by, created_at, modified_at, is_active, is_deleted, deleted_at, deleted_by, version"

func workflowInsertArgs(w models.WorkflowColumns) []any {
	version := w.Version
	if version == 0 {
		version = 1
	}
	return []any{w.Status, w.CreatedBy, w.UpdatedBy, w.CreatedAt, w.ModifiedAt, w.IsActive, w.IsDeleted, w.DeletedAt, w.DeletedBy, version}
}

// placeholders renders "$from, ..., $to".
func placeholders(from, count int) string {
	out := ""
	for i := 0; i < count; i++ {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("$%d", from+i)
	}
	return out
}
