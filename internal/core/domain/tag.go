package domain

// Tag labels articles.
type Tag struct {
	TagID    int    `json:"tagID"`
	Name     string `json:"name"`
	Note     string `json:"note"`
	ImageURL string `json:"imageURL,omitempty"`
	WorkflowState
}

func (Tag) WorkflowKind() Kind { return KindTag }

func (t *Tag) Identity() int { return t.TagID }

func (t *Tag) SetIdentity(id int) { t.TagID = id }

func (t *Tag) FieldValue(field Field) any {
	switch field {
	case FieldName, FieldTitle:
		return t.Name
	case FieldContent:
		return t.Note
	}
	v, _ := t.stateFieldValue(field)
	return v
}

// TagPayload is the set of editable tag fields.
type TagPayload struct {
	TagID    *int
	Name     *string
	Note     *string
	ImageURL *string
	IsActive *bool
	Status   *Status
}

func (p TagPayload) HasContent() bool {
	return p.Name != nil || p.Note != nil || p.ImageURL != nil
}
