package models

// Bookmark event operations
const (
	BookmarkAdded   = "add"
	BookmarkRemoved = "remove"
)

// BookmarkEvent is published to Kafka after a bookmark is added or removed.
type BookmarkEvent struct {
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Operation string `json:"operation"`
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}
