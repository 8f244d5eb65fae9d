package domain

// Article is a news article moving through the moderation workflow.
type Article struct {
	ArticleID  string `json:"articleID"`
	Title      string `json:"title"`
	Headline   string `json:"headline"`
	Content    string `json:"content"`
	Source     string `json:"source"`
	CategoryID *int   `json:"categoryID,omitempty"`
	TagIDs     []int  `json:"tagIDs"`
	ImageURL   string `json:"imageURL,omitempty"`
	WorkflowState
}

func (Article) WorkflowKind() Kind { return KindArticle }

func (a *Article) Identity() string { return a.ArticleID }

func (a *Article) SetIdentity(id string) { a.ArticleID = id }

func (a *Article) FieldValue(field Field) any {
	switch field {
	case FieldTitle, FieldName:
		return a.Title
	case FieldContent:
		return a.Content
	case FieldCategoryID:
		if a.CategoryID == nil {
			return 0
		}
		return *a.CategoryID
	case FieldTagIDs:
		return a.TagIDs
	}
	v, _ := a.stateFieldValue(field)
	return v
}

// ArticlePayload is the set of editable article fields. Nil means "not supplied".
type ArticlePayload struct {
	ArticleID  *string
	Title      *string
	Headline   *string
	Content    *string
	Source     *string
	CategoryID *int
	TagIDs     []int
	ImageURL   *string
	Status     *Status
}

// HasContent reports whether any non-status field is present.
func (p ArticlePayload) HasContent() bool {
	return p.Title != nil || p.Headline != nil || p.Content != nil || p.Source != nil ||
		p.CategoryID != nil || p.TagIDs != nil || p.ImageURL != nil
}
