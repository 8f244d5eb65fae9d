package models

import "time"

// AuditFields are the audit columns of the accounts table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     *int      `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy *int      `db:"last_updated_by"`
	Version       int64     `db:"version"`
}

// SoftDelete are the columns hiding a row without removing it.
type SoftDelete struct {
	IsDeleted bool       `db:"is_deleted"`
	DeletedAt *time.Time `db:"deleted_at"`
	DeletedBy *int       `db:"deleted_by"`
}

// WorkflowColumns are shared by the articles, categories and tags tables.
// Status is stored as a smallint code.
type WorkflowColumns struct {
	Status     int16      `db:"status"`
	CreatedBy  int        `db:"created_by"`
	UpdatedBy  *int       `db:"updated_by"`
	CreatedAt  time.Time  `db:"created_at"`
	ModifiedAt *time.Time `db:"modified_at"`
	IsActive   bool       `db:"is_active"`
	SoftDelete
	Version int64 `db:"version"`
}
