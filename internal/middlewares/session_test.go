package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	session := &models.Session{ID: "sid", UserID: uuid.New(), Username: "alice"}

	tests := []struct {
		name        string
		mockSetup   func(tk *MockTokener, sr *MockSessionReader)
		wantSession *models.Session
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, sr *MockSessionReader) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
		},
		{
			name: "InvalidToken",
			mockSetup: func(tk *MockTokener, sr *MockSessionReader) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("badtoken", nil)
				tk.EXPECT().GetSessionID(gomock.Any(), "badtoken").Return("", errors.New("invalid token"))
			},
		},
		{
			name: "SessionCleared",
			mockSetup: func(tk *MockTokener, sr *MockSessionReader) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tk.EXPECT().GetSessionID(gomock.Any(), "token").Return("sid", nil)
				sr.EXPECT().Get(gomock.Any(), "sid").Return(nil, nil)
			},
		},
		{
			name: "StoreError",
			mockSetup: func(tk *MockTokener, sr *MockSessionReader) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tk.EXPECT().GetSessionID(gomock.Any(), "token").Return("sid", nil)
				sr.EXPECT().Get(gomock.Any(), "sid").Return(nil, errors.New("redis down"))
			},
		},
		{
			name: "ValidSession",
			mockSetup: func(tk *MockTokener, sr *MockSessionReader) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tk.EXPECT().GetSessionID(gomock.Any(), "token").Return("sid", nil)
				sr.EXPECT().Get(gomock.Any(), "sid").Return(session, nil)
			},
			wantSession: session,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokener := NewMockTokener(ctrl)
			sessions := NewMockSessionReader(ctrl)
			tt.mockSetup(tokener, sessions)

			nextCalled := false
			var gotSession *models.Session
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotSession = GetSessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := SessionMiddleware(tokener, sessions)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantSession, gotSession)
		})
	}
}

func TestSessionContext(t *testing.T) {
	assert.Nil(t, GetSessionFromContext(context.Background()))

	session := &models.Session{ID: "sid"}
	ctx := SetSessionToContext(context.Background(), session)
	assert.Same(t, session, GetSessionFromContext(ctx))
}
