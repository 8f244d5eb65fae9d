package mapping

import (
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/models"
)

// ToModelTag converts a domain Tag to a model Tag
func ToModelTag(d domain.Tag) models.Tag {
	return models.Tag{
		TagID:           d.TagID,
		Name:            d.Name,
		Note:            d.Note,
		ImageURL:        d.ImageURL,
		WorkflowColumns: ToModelWorkflow(d.WorkflowState),
	}
}

// ToDomainTag converts a model Tag to a domain Tag
func ToDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		TagID:         m.TagID,
		Name:          m.Name,
		Note:          m.Note,
		ImageURL:      m.ImageURL,
		WorkflowState: ToDomainWorkflow(m.WorkflowColumns),
	}
}

// ToDomainTagSlice converts a slice of model Tags to a slice of domain Tags
func ToDomainTagSlice(ms []models.Tag) []domain.Tag {
	ds := make([]domain.Tag, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTag(m)
	}
	return ds
}
