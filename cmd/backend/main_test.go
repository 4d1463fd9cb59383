package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Port: "4000",
		DB: DbConfig{
			Host: "db.internal.example.com",
			Port: "3306",
			Name: "ecommerce",
			User: "appuser",
		},
	}
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestApiPathsReturnStatus(t *testing.T) {
	handler := newRouter(testConfig())

	for _, path := range []string{"/", "/health", "/api", "/api/", "/api/health", "/api/products"} {
		rec := get(t, handler, path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var body statusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), path)
		assert.Equal(t, "backend", body.Service)
		assert.Equal(t, "ok", body.Status)
		assert.Equal(t, "db.internal.example.com", body.Database.Host)
		assert.Equal(t, "3306", body.Database.Port)
		assert.Equal(t, "ecommerce", body.Database.Name)
		assert.Equal(t, "appuser", body.Database.User)
	}
}

func TestResponseEchoesPath(t *testing.T) {
	handler := newRouter(testConfig())

	rec := get(t, handler, "/api/orders")
	var body statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/api/orders", body.Path)
}

// The response must never leak credentials, whatever ends up in the task
// environment.
func TestResponseNeverContainsPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "super-secret-generated-value")

	handler := newRouter(testConfig())
	for _, path := range []string{"/api", "/api/health", "/nope"} {
		rec := get(t, handler, path)
		body := strings.ToLower(rec.Body.String())
		assert.NotContains(t, body, "password", path)
		assert.NotContains(t, body, "super-secret-generated-value", path)
	}
}

func TestUnknownPathIs404JSON(t *testing.T) {
	handler := newRouter(testConfig())

	rec := get(t, handler, "/does/not/exist")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
}
