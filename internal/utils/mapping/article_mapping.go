package mapping

import (
	"github.com/SscSPs/news_management_app/internal/core/domain"
	"github.com/SscSPs/news_management_app/internal/models"
)

// ToModelArticle converts a domain Article to a model Article
func ToModelArticle(d domain.Article) models.Article {
	tagIDs := make([]int32, len(d.TagIDs))
	for i, id := range d.TagIDs {
		tagIDs[i] = int32(id)
	}
	return models.Article{
		ArticleID:       d.ArticleID,
		Title:           d.Title,
		Headline:        d.Headline,
		Content:         d.Content,
		Source:          d.Source,
		CategoryID:      d.CategoryID,
		ImageURL:        d.ImageURL,
		TagIDs:          tagIDs,
		WorkflowColumns: ToModelWorkflow(d.WorkflowState),
	}
}

// ToDomainArticle converts a model Article to a domain Article
func ToDomainArticle(m models.Article) domain.Article {
	tagIDs := make([]int, len(m.TagIDs))
	for i, id := range m.TagIDs {
		tagIDs[i] = int(id)
	}
	return domain.Article{
		ArticleID:     m.ArticleID,
		Title:         m.Title,
		Headline:      m.Headline,
		Content:       m.Content,
		Source:        m.Source,
		CategoryID:    m.CategoryID,
		TagIDs:        tagIDs,
		ImageURL:      m.ImageURL,
		WorkflowState: ToDomainWorkflow(m.WorkflowColumns),
	}
}

// ToDomainArticleSlice converts a slice of model Articles to a slice of domain Articles
func ToDomainArticleSlice(ms []models.Article) []domain.Article {
	ds := make([]domain.Article, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainArticle(m)
	}
	return ds
}
