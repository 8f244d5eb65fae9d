package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// Account identifiers are integers; CreatedBy is nil for bootstrap records.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     *int      `json:"createdBy,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy *int      `json:"lastUpdatedBy,omitempty"`
	Version       int64     `json:"version"`
}

// SoftDelete marks a record hidden without removing it.
type SoftDelete struct {
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy *int       `json:"deletedBy,omitempty"`
}

// Page bounds a listing. Zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}
