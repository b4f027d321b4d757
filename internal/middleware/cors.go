package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/ubelabs/expense-tracker/internal/config"
)

// CORS allows the frontend origin to call the API. Credentials must be
// allowed or the browser drops the session cookie on cross-origin
// requests.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.FrontendURL}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)
}
