package models

// Tag is a row of the tags table.
type Tag struct {
	TagID    int    `db:"tag_id"`
	Name     string `db:"name"`
	Note     string `db:"note"`
	ImageURL string `db:"image_url"`
	WorkflowColumns
}
