package entity

import "time"

// NewsItem is a news-feed entry for data transfer between layers.
type NewsItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	ImageURL     string    `json:"image_url,omitempty"`
	Author       string    `json:"author"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	PublishedAt  time.Time `json:"published_at"`
}
