package models

// Category is a row of the categories table.
type Category struct {
	CategoryID       int    `db:"category_id"`
	Name             string `db:"name"`
	Description      string `db:"description"`
	ParentCategoryID *int   `db:"parent_category_id"`
	ImageURL         string `db:"image_url"`
	WorkflowColumns
}
