package dto

import (
	"time"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// MaxPageSize bounds the limit of a listing page.
const MaxPageSize = 200

// ListParams defines the query parameters shared by article, category and tag listings.
type ListParams struct {
	Query      string     `form:"q" binding:"max=200"`
	CategoryID *int       `form:"categoryId"`
	TagID      *int       `form:"tagId"`
	Status     *int       `form:"status"`
	CreatedBy  *int       `form:"createdBy"`
	From       *time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To         *time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Limit      int        `form:"limit" binding:"min=0,max=200"`
	Offset     int        `form:"offset" binding:"min=0"`
	PageToken  string     `form:"pageToken"`
}

// ToFilter converts the query to a domain filter. To covers the whole day it names.
func (p ListParams) ToFilter() domain.ListFilter {
	return domain.ListFilter{
		Query:      p.Query,
		CategoryID: p.CategoryID,
		TagID:      p.TagID,
		Status:     statusPtr(p.Status),
		CreatedBy:  p.CreatedBy,
		From:       p.From,
		To:         endOfDay(p.To),
		Page:       domain.Page{Limit: p.Limit, Offset: p.Offset},
	}
}

func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Nanosecond)
	return &end
}

func statusPtr(code *int) *domain.Status {
	if code == nil {
		return nil
	}
	status := domain.Status(*code)
	return &status
}

// TransitionRequest optionally explains a moderation action.
type TransitionRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// TransitionResponse reports the status reached by an action.
type TransitionResponse struct {
	Status     domain.Status `json:"status"`
	StatusName string        `json:"statusName"`
}

// NewTransitionResponse builds the response for status.
func NewTransitionResponse(status domain.Status) TransitionResponse {
	return TransitionResponse{Status: status, StatusName: status.String()}
}

// WorkflowResponse holds the moderation fields returned with every entity.
type WorkflowResponse struct {
	Status     domain.Status `json:"status"`
	StatusName string        `json:"statusName"`
	IsActive   bool          `json:"isActive"`
	CreatedBy  int           `json:"createdBy"`
	UpdatedBy  *int          `json:"updatedBy,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	ModifiedAt *time.Time    `json:"modifiedAt,omitempty"`
	Version    int64         `json:"version"`
}

func toWorkflowResponse(s domain.WorkflowState) WorkflowResponse {
	return WorkflowResponse{
		Status:     s.Status,
		StatusName: s.Status.String(),
		IsActive:   s.IsActive,
		CreatedBy:  s.CreatedByID,
		UpdatedBy:  s.UpdatedByID,
		CreatedAt:  s.CreatedAt,
		ModifiedAt: s.ModifiedAt,
		Version:    s.Version,
	}
}

// ArticleRequest carries the editable fields of an article. Omitted fields stay unchanged on update.
type ArticleRequest struct {
	ArticleID  *string `json:"articleID"`
	Title      *string `json:"title"`
	Headline   *string `json:"headline"`
	Content    *string `json:"content"`
	Source     *string `json:"source"`
	CategoryID *int    `json:"categoryID"`
	TagIDs     []int   `json:"tagIDs"`
	ImageURL   *string `json:"imageURL"`
	Status     *int    `json:"status"`
}

// ToPayload converts the request to a domain payload.
func (r ArticleRequest) ToPayload() domain.ArticlePayload {
	return domain.ArticlePayload{
		ArticleID:  r.ArticleID,
		Title:      r.Title,
		Headline:   r.Headline,
		Content:    r.Content,
		Source:     r.Source,
		CategoryID: r.CategoryID,
		TagIDs:     r.TagIDs,
		ImageURL:   r.ImageURL,
		Status:     statusPtr(r.Status),
	}
}

// ArticleResponse is the representation of an article.
type ArticleResponse struct {
	ArticleID  string `json:"articleID"`
	Title      string `json:"title"`
	Headline   string `json:"headline"`
	Content    string `json:"content"`
	Source     string `json:"source"`
	CategoryID *int   `json:"categoryID,omitempty"`
	TagIDs     []int  `json:"tagIDs"`
	ImageURL   string `json:"imageURL,omitempty"`
	WorkflowResponse
}

// ToArticleResponse converts a domain article.
func ToArticleResponse(a *domain.Article) ArticleResponse {
	tagIDs := a.TagIDs
	if tagIDs == nil {
		tagIDs = []int{}
	}
	return ArticleResponse{
		ArticleID:        a.ArticleID,
		Title:            a.Title,
		Headline:         a.Headline,
		Content:          a.Content,
		Source:           a.Source,
		CategoryID:       a.CategoryID,
		TagIDs:           tagIDs,
		ImageURL:         a.ImageURL,
		WorkflowResponse: toWorkflowResponse(a.WorkflowState),
	}
}

// CategoryRequest carries the editable fields of a category.
type CategoryRequest struct {
	CategoryID       *int    `json:"categoryID"`
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	ParentCategoryID *int    `json:"parentCategoryID"`
	ImageURL         *string `json:"imageURL"`
	IsActive         *bool   `json:"isActive"`
	Status           *int    `json:"status"`
}

// ToPayload converts the request to a domain payload.
func (r CategoryRequest) ToPayload() domain.CategoryPayload {
	return domain.CategoryPayload{
		CategoryID:       r.CategoryID,
		Name:             r.Name,
		Description:      r.Description,
		ParentCategoryID: r.ParentCategoryID,
		ImageURL:         r.ImageURL,
		IsActive:         r.IsActive,
		Status:           statusPtr(r.Status),
	}
}

// CategoryResponse is the representation of a category.
type CategoryResponse struct {
	CategoryID       int    `json:"categoryID"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID *int   `json:"parentCategoryID,omitempty"`
	ImageURL         string `json:"imageURL,omitempty"`
	WorkflowResponse
}

// ToCategoryResponse converts a domain category.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:       c.CategoryID,
		Name:             c.Name,
		Description:      c.Description,
		ParentCategoryID: c.ParentCategoryID,
		ImageURL:         c.ImageURL,
		WorkflowResponse: toWorkflowResponse(c.WorkflowState),
	}
}

// TagRequest carries the editable fields of a tag.
type TagRequest struct {
	TagID    *int    `json:"tagID"`
	Name     *string `json:"name"`
	Note     *string `json:"note"`
	ImageURL *string `json:"imageURL"`
	IsActive *bool   `json:"isActive"`
	Status   *int    `json:"status"`
}

// ToPayload converts the request to a domain payload.
func (r TagRequest) ToPayload() domain.TagPayload {
	return domain.TagPayload{
		TagID:    r.TagID,
		Name:     r.Name,
		Note:     r.Note,
		ImageURL: r.ImageURL,
		IsActive: r.IsActive,
		Status:   statusPtr(r.Status),
	}
}

// TagResponse is the representation of a tag.
type TagResponse struct {
	TagID    int    `json:"tagID"`
	Name     string `json:"name"`
	Note     string `json:"note"`
	ImageURL string `json:"imageURL,omitempty"`
	WorkflowResponse
}

// ToTagResponse converts a domain tag.
func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		TagID:            t.TagID,
		Name:             t.Name,
		Note:             t.Note,
		ImageURL:         t.ImageURL,
		WorkflowResponse: toWorkflowResponse(t.WorkflowState),
	}
}

// ListResponse wraps a listing.
type ListResponse[T any] struct {
	Items     []T     `json:"items"`
	Count     int     `json:"count"`
	NextToken *string `json:"nextToken,omitempty"`
}

// NewListResponse converts items with convert.
func NewListResponse[E any, T any](items []E, convert func(*E) T) ListResponse[T] {
	out := make([]T, len(items))
	for i := range items {
		out[i] = convert(&items[i])
	}
	return ListResponse[T]{Items: out, Count: len(out)}
}
