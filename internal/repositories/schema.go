package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
)

// Schema creates the users and bookmarks tables.
// The UNIQUE constraint on users.email closes the sign-up check-then-insert race.
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS bookmarks (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		article_title TEXT NOT NULL,
		article_description TEXT NOT NULL,
		article_url TEXT NOT NULL,
		article_image_url TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_bookmarks_user_url ON bookmarks (user_id, article_url);
`

// Migrate applies Schema. It is safe to run on every start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, Schema)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(Schema), " "),
		"error", err,
	)

	return err
}
