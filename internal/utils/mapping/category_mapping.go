package mapping

import (
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:       d.CategoryID,
		Name:             d.Name,
		Description:      d.Description,
		ParentCategoryID: d.ParentCategoryID,
		ImageURL:         d.ImageURL,
		WorkflowColumns:  ToModelWorkflow(d.WorkflowState),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:       m.CategoryID,
		Name:             m.Name,
		Description:      m.Description,
		ParentCategoryID: m.ParentCategoryID,
		ImageURL:         m.ImageURL,
		WorkflowState:    ToDomainWorkflow(m.WorkflowColumns),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to a slice of domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
