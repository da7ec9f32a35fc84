package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-bookmarks/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSignInHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSignInner, c *MockCookieSetter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success sets cookie",
			body: `{"email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockSignInner, c *MockCookieSetter) {
				m.EXPECT().SignIn(gomock.Any(), "john@example.com", "secret").Return("signed-token", nil)
				c.EXPECT().SetCookie(gomock.Any(), "signed-token")
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Sign-in successful!"},
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"secret"}`,
			mockSetup: func(m *MockSignInner, c *MockCookieSetter) {
				m.EXPECT().SignIn(gomock.Any(), "ghost@example.com", "secret").Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]string{"error": "User does not exist", "kind": "not_found"},
		},
		{
			name: "wrong password",
			body: `{"email":"john@example.com","password":"wrong"}`,
			mockSetup: func(m *MockSignInner, c *MockCookieSetter) {
				m.EXPECT().SignIn(gomock.Any(), "john@example.com", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Invalid credentials", "kind": "unauthorized"},
		},
		{
			name: "internal error",
			body: `{"email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockSignInner, c *MockCookieSetter) {
				m.EXPECT().SignIn(gomock.Any(), "john@example.com", "secret").Return("", errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error", "kind": "internal_error"},
		},
		{
			name:         "missing password",
			body:         `{"email":"john@example.com"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Missing required fields: password", "kind": "bad_request"},
		},
		{
			name:         "invalid json",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body", "kind": "bad_request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockSignInner(ctrl)
			mockCookies := NewMockCookieSetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc, mockCookies)
			}

			handler := NewSignInHandler(mockSvc, mockCookies)

			req := httptest.NewRequest(http.MethodPost, "/signin", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
