package handlers

//go:generate mockgen -source=signin.go -destination=signin_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
	"github.com/sbilibin2017/gw-bookmarks/internal/services"
)

// SignInner defines the interface that the sign-in service must implement.
type SignInner interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// CookieSetter writes the session cookie.
type CookieSetter interface {
	SetCookie(w http.ResponseWriter, token string)
}

// SignInRequest represents the JSON body for user sign-in
// swagger:model SignInRequest
type SignInRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewSignInHandler returns an HTTP handler for user sign-in.
// @Summary User sign-in
// @Description Verifies credentials and opens a server-side session delivered as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param signInRequest body handlers.SignInRequest true "Sign-in request"
// @Success 200 {object} models.MessageResponse "Session cookie set"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 404 {object} models.ErrorResponse "User does not exist"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /signin [post]
func NewSignInHandler(svc SignInner, cookies CookieSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if err := decodeRequest(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}

		token, err := svc.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusNotFound, models.KindNotFound, "User does not exist")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, models.KindUnauthorized, "Invalid credentials")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		cookies.SetCookie(w, token)
		writeJSON(w, http.StatusOK, models.MessageResponse{
			Message: "Sign-in successful!",
		})
	}
}
