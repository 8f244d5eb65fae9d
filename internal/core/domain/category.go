package domain

// Category groups articles. Categories form a tree through ParentCategoryID.
type Category struct {
	CategoryID       int    `json:"categoryID"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID *int   `json:"parentCategoryID,omitempty"`
	ImageURL         string `json:"imageURL,omitempty"`
	WorkflowState
}

func (Category) WorkflowKind() Kind { return KindCategory }

func (c *Category) Identity() int { return c.CategoryID }

func (c *Category) SetIdentity(id int) { c.CategoryID = id }

func (c *Category) FieldValue(field Field) any {
	switch field {
	case FieldName, FieldTitle:
		return c.Name
	case FieldContent:
		return c.Description
	}
	v, _ := c.stateFieldValue(field)
	return v
}

// CategoryPayload is the set of editable category fields.
type CategoryPayload struct {
	CategoryID       *int
	Name             *string
	Description      *string
	ParentCategoryID *int
	ImageURL         *string
	IsActive         *bool
	Status           *Status
}

func (p CategoryPayload) HasContent() bool {
	return p.Name != nil || p.Description != nil || p.ParentCategoryID != nil || p.ImageURL != nil
}
