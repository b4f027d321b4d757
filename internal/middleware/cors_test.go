package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ubelabs/expense-tracker/internal/config"
)

func runCORS(cfg *config.Config, method, origin, requestMethod string) *httptest.ResponseRecorder {
	handler := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/currency", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if requestMethod != "" {
		req.Header.Set("Access-Control-Request-Method", requestMethod)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowsFrontendOriginWithCredentials(t *testing.T) {
	cfg := &config.Config{FrontendURL: "https://localhost:3000"}

	rec := runCORS(cfg, http.MethodGet, "https://localhost:3000", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSIgnoresOtherOrigins(t *testing.T) {
	cfg := &config.Config{FrontendURL: "https://localhost:3000"}

	rec := runCORS(cfg, http.MethodGet, "https://evil.example.com", "")

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{FrontendURL: "https://localhost:3000"}

	rec := runCORS(cfg, http.MethodOptions, "https://localhost:3000", http.MethodPut)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = runCORS(cfg, http.MethodOptions, "https://localhost:3000", http.MethodPatch)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "PATCH is not an API method")
}
