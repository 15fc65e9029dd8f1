package models

import "time"

// Article statuses. The status column always holds one of these values.
const (
	ArticleStatusPublished = "published"
	ArticleStatusDraft     = "draft"
)

// Article represents a news/blog entry shown on the public site.
type Article struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Content  string    `json:"content"`
	ImageURL *string   `json:"imageUrl,omitempty"`
	Date     time.Time `json:"date"` // Assigned at creation, immutable afterwards.
	Status   string    `json:"status"`
}
