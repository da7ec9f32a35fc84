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

func TestSignUpHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSignUpper)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockSignUpper) {
				m.EXPECT().SignUp(gomock.Any(), "john", "john@example.com", "secret").Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "User registered successfully!"},
		},
		{
			name: "user already exists",
			body: `{"username":"alice","email":"alice@example.com","password":"pass"}`,
			mockSetup: func(m *MockSignUpper) {
				m.EXPECT().SignUp(gomock.Any(), "alice", "alice@example.com", "pass").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "User already exists", "kind": "conflict"},
		},
		{
			name: "internal server error hides detail",
			body: `{"username":"bob","email":"bob@example.com","password":"pass"}`,
			mockSetup: func(m *MockSignUpper) {
				m.EXPECT().SignUp(gomock.Any(), "bob", "bob@example.com", "pass").
					Return(errors.New("pq: connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error", "kind": "internal_error"},
		},
		{
			name:         "missing fields",
			body:         `{"username":"bob"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Missing required fields: email, password", "kind": "bad_request"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body", "kind": "bad_request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockSignUpper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSignUpHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
