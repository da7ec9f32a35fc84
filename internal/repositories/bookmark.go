package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
)

// BookmarkWriteRepository handles bookmark inserts and deletes.
type BookmarkWriteRepository struct {
	db *sqlx.DB
}

func NewBookmarkWriteRepository(db *sqlx.DB) *BookmarkWriteRepository {
	return &BookmarkWriteRepository{db: db}
}

// Save inserts a bookmark for the user. Duplicate URLs are allowed.
func (r *BookmarkWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, description, url, imageURL string) error {
	const query = `
		INSERT INTO bookmarks (id, user_id, article_title, article_description, article_url, article_image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{uuid.New(), userID, title, description, url, imageURL}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteByURL removes every bookmark of the user with the given URL
// and returns how many rows were deleted.
func (r *BookmarkWriteRepository) DeleteByURL(ctx context.Context, userID uuid.UUID, url string) (int64, error) {
	const query = `
		DELETE FROM bookmarks
		WHERE user_id = $1 AND article_url = $2
	`
	args := []any{userID, url}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// BookmarkReadRepository handles bookmark reads.
type BookmarkReadRepository struct {
	db *sqlx.DB
}

func NewBookmarkReadRepository(db *sqlx.DB) *BookmarkReadRepository {
	return &BookmarkReadRepository{db: db}
}

// ListByUserID returns all bookmarks of the user in store order.
func (r *BookmarkReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BookmarkDB, error) {
	const query = `
		SELECT id, user_id, article_title, article_description, article_url, article_image_url, created_at
		FROM bookmarks
		WHERE user_id = $1
	`

	var bookmarks []models.BookmarkDB
	err := r.db.SelectContext(ctx, &bookmarks, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(bookmarks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return bookmarks, nil
}
