package models

// Article is a row of the articles table. TagIDs is aggregated from article_tags.
type Article struct {
	ArticleID  string  `db:"article_id"`
	Title      string  `db:"title"`
	Headline   string  `db:"headline"`
	Content    string  `db:"content"`
	Source     string  `db:"source"`
	CategoryID *int    `db:"category_id"`
	ImageURL   string  `db:"image_url"`
	TagIDs     []int32 `db:"tag_ids"`
	WorkflowColumns
}
