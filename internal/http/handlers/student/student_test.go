package student_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"records-api/internal/config"
	"records-api/internal/http/handlers/student"
	"records-api/internal/storage/sqlite"
)

type envelope struct {
	Data  map[string]int64 `json:"data"`
	Error string           `json:"error"`
	Msg   string           `json:"msg"`
}

func newTestHandler(t *testing.T) http.HandlerFunc {
	t.Helper()

	cfg := &config.Config{
		Env:         "dev",
		StoragePath: filepath.Join(t.TempDir(), "test.db"),
	}
	storage, err := sqlite.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { storage.Db.Close() })

	return student.Create(storage)
}

func do(t *testing.T, handler http.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/api/students", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestPostInsertsStudent(t *testing.T) {
	handler := newTestHandler(t)

	rec := do(t, handler, http.MethodPost,
		`{"name":"John Doe","roll":123,"city":"New York"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "data inserted successfully", env.Msg)
	assert.Greater(t, env.Data["id"], int64(0))
}

func TestPostMissingFieldsIsRejected(t *testing.T) {
	handler := newTestHandler(t)

	rec := do(t, handler, http.MethodPost, `{"name":"John Doe"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "data insertion unsuccessful", env.Msg)
	assert.Contains(t, env.Error, "field Roll is required")
	assert.Contains(t, env.Error, "field City is required")
}

func TestPostEmptyBodyIsRejected(t *testing.T) {
	handler := newTestHandler(t)

	rec := do(t, handler, http.MethodPost, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "request body is empty", decodeEnvelope(t, rec).Msg)
}

func TestNonPostVerbIsMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	rec := do(t, handler, http.MethodGet, "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "only POST allowed", decodeEnvelope(t, rec).Msg)
}
