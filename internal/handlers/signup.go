package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-bookmarks/internal/logger"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
	"github.com/sbilibin2017/gw-bookmarks/internal/services"
)

// SignUpper defines the interface that the service must implement.
type SignUpper interface {
	SignUp(ctx context.Context, username, email, password string) error
}

// SignUpRequest represents the JSON body for user registration
// swagger:model SignUpRequest
type SignUpRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewSignUpHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signUpRequest body handlers.SignUpRequest true "User registration request"
// @Success 201 {object} models.MessageResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "User already exists / missing fields"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /signup [post]
func NewSignUpHandler(svc SignUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if err := decodeRequest(r, &req); err != nil {
			writeBadRequest(w, err)
			return
		}

		err := svc.SignUp(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, models.KindConflict, "User already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.MessageResponse{
			Message: "User registered successfully!",
		})
	}
}
