package handlers

//go:generate mockgen -source=bookmark_add.go -destination=bookmark_add_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
)

// BookmarkAdder defines the interface that the service must implement.
type BookmarkAdder interface {
	Add(ctx context.Context, userID uuid.UUID, title, description, url, imageURL string) error
}

// AddBookmarkRequest represents the JSON body for saving an article.
// Every field must be present; empty strings are accepted.
// swagger:model AddBookmarkRequest
type AddBookmarkRequest struct {
	// Article title
	// required: true
	// default: Go 1.25 released
	Title *string `json:"title" validate:"required"`

	// Article description
	// required: true
	// default: Release notes
	Description *string `json:"description" validate:"required"`

	// Article URL
	// required: true
	// default: https://go.dev/blog/go1.25
	URL *string `json:"url" validate:"required"`

	// Article image URL
	// required: true
	// default: https://go.dev/images/go-logo-blue.svg
	ImageURL *string `json:"imageUrl" validate:"required"`
}

// NewAddBookmarkHandler returns an HTTP handler for saving a bookmark.
// @Summary Add bookmark
// @Description Saves an article for the signed-in user. Duplicate URLs are allowed.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param addBookmarkRequest body handlers.AddBookmarkRequest true "Bookmark"
// @Success 201 {object} models.MessageResponse "Bookmark added"
// @Failure 400 {object} models.ErrorResponse "Missing required fields"
// @Failure 401 {object} models.ErrorResponse "User not signed in"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /add_bookmark [post]
func NewAddBookmarkHandler(
	svc BookmarkAdder,
	sessionGetter func(ctx context.Context) *models.Session,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		session := sessionGetter(ctx)
		if session == nil {
			writeUnauthorized(w)
			return
		}

		var req AddBookmarkRequest
		if err := decodeRequest(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}

		err := svc.Add(ctx, session.UserID, *req.Title, *req.Description, *req.URL, *req.ImageURL)
		if err != nil {
			logger.Log.Errorw("failed to add bookmark", "user_id", session.UserID, "err", err)
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusCreated, models.MessageResponse{
			Message: "Bookmark added successfully!",
		})
	}
}
