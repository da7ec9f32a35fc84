package handlers

//go:generate mockgen -source=bookmark_list.go -destination=bookmark_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
)

// BookmarkLister defines the interface that the service must implement.
type BookmarkLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Bookmark, error)
}

// NewListBookmarksHandler returns an HTTP handler listing the user's bookmarks.
// @Summary List bookmarks
// @Description Returns every bookmark of the signed-in user; an empty list when there are none
// @Tags bookmarks
// @Produce json
// @Success 200 {array} models.Bookmark "Bookmarks"
// @Failure 401 {object} models.ErrorResponse "User not signed in"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /bookmarks [get]
func NewListBookmarksHandler(
	svc BookmarkLister,
	sessionGetter func(ctx context.Context) *models.Session,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		session := sessionGetter(ctx)
		if session == nil {
			writeUnauthorized(w)
			return
		}

		bookmarks, err := svc.List(ctx, session.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list bookmarks", "user_id", session.UserID, "err", err)
			writeInternalError(w)
			return
		}
		if bookmarks == nil {
			bookmarks = []models.Bookmark{}
		}

		writeJSON(w, http.StatusOK, bookmarks)
	}
}
