package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
)

// Logouter clears server-side session state.
type Logouter interface {
	Logout(ctx context.Context, sessionID string) error
}

// CookieClearer expires the session cookie.
type CookieClearer interface {
	ClearCookie(w http.ResponseWriter)
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// It always answers 200, with or without a session.
// @Summary Logout
// @Description Clears the server-side session and expires the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse "Logged out"
// @Router /logout [post]
func NewLogoutHandler(
	svc Logouter,
	cookies CookieClearer,
	sessionGetter func(ctx context.Context) *models.Session,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if session := sessionGetter(ctx); session != nil {
			if err := svc.Logout(ctx, session.ID); err != nil {
				logger.Log.Errorw("failed to clear session on logout", "user_id", session.UserID, "err", err)
			}
		}

		cookies.ClearCookie(w)
		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: "Logged out successfully!",
		})
	}
}
