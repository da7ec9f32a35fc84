package models

import (
	"time"

	"github.com/google/uuid"
)

// BookmarkDB represents a bookmark record in the database
type BookmarkDB struct {
	BookmarkID         uuid.UUID `db:"id"`
	UserID             uuid.UUID `db:"user_id"`
	ArticleTitle       string    `db:"article_title"`
	ArticleDescription string    `db:"article_description"`
	ArticleURL         string    `db:"article_url"`
	ArticleImageURL    string    `db:"article_image_url"`
	CreatedAt          time.Time `db:"created_at"`
}

// Bookmark is the public projection of a saved article.
type Bookmark struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
}

// ToBookmark projects the database row to its public form.
func (b BookmarkDB) ToBookmark() Bookmark {
	return Bookmark{
		Title:       b.ArticleTitle,
		Description: b.ArticleDescription,
		URL:         b.ArticleURL,
		ImageURL:    b.ArticleImageURL,
	}
}
