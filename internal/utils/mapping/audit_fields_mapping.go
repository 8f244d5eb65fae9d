package mapping

import (
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
		Version:       d.Version,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
		Version:       m.Version,
	}
}

// ToModelSoftDelete converts the soft delete marker.
func ToModelSoftDelete(d domain.SoftDelete) models.SoftDelete {
	return models.SoftDelete{IsDeleted: d.IsDeleted, DeletedAt: d.DeletedAt, DeletedBy: d.DeletedBy}
}

// ToDomainSoftDelete converts the soft delete marker.
func ToDomainSoftDelete(m models.SoftDelete) domain.SoftDelete {
	return domain.SoftDelete{IsDeleted: m.IsDeleted, DeletedAt: m.DeletedAt, DeletedBy: m.DeletedBy}
}
