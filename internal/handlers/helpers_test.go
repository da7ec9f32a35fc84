package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookmarks/internal/models"
	"github.com/stretchr/testify/require"
)

var testSession = &models.Session{ID: "sid", UserID: uuid.MustParse("6f1c2a9e-3b4d-4c5e-9f7a-1b2c3d4e5f60"), Username: "alice"}

func withSession(session *models.Session) func(ctx context.Context) *models.Session {
	return func(context.Context) *models.Session { return session }
}

func noSession(context.Context) *models.Session { return nil }

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
