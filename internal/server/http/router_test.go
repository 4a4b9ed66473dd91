package http

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/trattoria/internal/logging"
	"github.com/dmitrijs2005/trattoria/internal/server/repositories/repomanager"

	_ "modernc.org/sqlite"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mgr := &repomanager.SQLiteRepositoryManager{}
	require.NoError(t, mgr.RunMigrations(context.Background(), db))

	log := logging.NewJSON(io.Discard)
	return NewRouter(NewHandler(db, mgr, log), log)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetProfile_EmptyIsNull(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestProfile_SaveThenGet(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/api/profile", `{"email":"a@x.com","name":"A"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@x.com","name":"A"}`, w.Body.String())
}

func TestProfile_SecondSaveReplacesFirst(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/profile", `{"email":"a@x.com"}`).Code)
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/profile", `{"email":"b@x.com"}`).Code)

	w := doRequest(r, http.MethodGet, "/api/profile", "")
	assert.JSONEq(t, `{"email":"b@x.com"}`, w.Body.String())
}

func TestProfile_RejectsInvalidJSON(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodPost, "/api/profile", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOnboarding_DefaultFalse(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodGet, "/api/onboarding", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"completed":false}`, w.Body.String())
}

func TestOnboarding_SaveThenGet(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/onboarding", `{"completed":true}`).Code)

	w := doRequest(r, http.MethodGet, "/api/onboarding", "")
	assert.JSONEq(t, `{"completed":true}`, w.Body.String())
}

func TestOnboarding_RejectsInvalidJSON(t *testing.T) {
	w := doRequest(setupRouter(t), http.MethodPost, "/api/onboarding", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser_ClearsBothTables(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/profile", `{"email":"a@x.com"}`).Code)
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/api/onboarding", `{"completed":true}`).Code)

	w := doRequest(r, http.MethodDelete, "/api/user", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "null", doRequest(r, http.MethodGet, "/api/profile", "").Body.String())
	assert.JSONEq(t, `{"completed":false}`, doRequest(r, http.MethodGet, "/api/onboarding", "").Body.String())
}
