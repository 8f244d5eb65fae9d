package mapping

import (
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/models"
)

// ToModelWorkflow converts the workflow state to its columns.
func ToModelWorkflow(d domain.WorkflowState) models.WorkflowColumns {
	return models.WorkflowColumns{
		Status:     int16(d.Status),
		CreatedBy:  d.CreatedByID,
		UpdatedBy:  d.UpdatedByID,
		CreatedAt:  d.CreatedAt,
		ModifiedAt: d.ModifiedAt,
		IsActive:   d.IsActive,
		SoftDelete: ToModelSoftDelete(d.SoftDelete),
		Version:    d.Version,
	}
}

// ToDomainWorkflow converts workflow columns to the domain state.
func ToDomainWorkflow(m models.WorkflowColumns) domain.WorkflowState {
	return domain.WorkflowState{
		Status:      domain.Status(m.Status),
		CreatedByID: m.CreatedBy,
		UpdatedByID: m.UpdatedBy,
		CreatedAt:   m.CreatedAt,
		ModifiedAt:  m.ModifiedAt,
		IsActive:    m.IsActive,
		SoftDelete:  ToDomainSoftDelete(m.SoftDelete),
		Version:     m.Version,
	}
}
