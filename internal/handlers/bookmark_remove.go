package handlers

//go:generate mockgen -source=bookmark_remove.go -destination=bookmark_remove_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
)

// BookmarkRemover defines the interface that the service must implement.
type BookmarkRemover interface {
	Remove(ctx context.Context, userID uuid.UUID, url string) error
}

// RemoveBookmarkRequest represents the JSON body for removing bookmarks by URL
// swagger:model RemoveBookmarkRequest
type RemoveBookmarkRequest struct {
	// Article URL; every bookmark of the user with this URL is removed
	// required: true
	// default: https://go.dev/blog/go1.25
	URL string `json:"url" validate:"required"`
}

// NewRemoveBookmarkHandler returns an HTTP handler removing bookmarks by URL.
// @Summary Remove bookmark
// @Description Deletes every bookmark of the signed-in user with the given URL. Succeeds even when nothing matched.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param removeBookmarkRequest body handlers.RemoveBookmarkRequest true "Bookmark URL"
// @Success 200 {object} models.MessageResponse "Bookmark removed"
// @Failure 400 {object} models.ErrorResponse "Article URL is required"
// @Failure 401 {object} models.ErrorResponse "User not signed in"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /remove_bookmark [post]
func NewRemoveBookmarkHandler(
	svc BookmarkRemover,
	sessionGetter func(ctx context.Context) *models.Session,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		session := sessionGetter(ctx)
		if session == nil {
			writeUnauthorized(w)
			return
		}

		var req RemoveBookmarkRequest
		if err := decodeRequest(r, &req); err != nil {
			if _, missing := err.(*MissingFieldsError); missing {
				writeError(w, http.StatusBadRequest, models.KindBadRequest, "Article URL is required")
				return
			}
			writeBadRequest(w, err)
			return
		}

		if err := svc.Remove(ctx, session.UserID, req.URL); err != nil {
			logger.Log.Errorw("failed to remove bookmark", "user_id", session.UserID, "url", req.URL, "err", err)
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: "Bookmark removed successfully!",
		})
	}
}
