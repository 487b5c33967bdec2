package httpapi

import (
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", app.pageHandler)
	mux.HandleFunc("/api/view", app.viewHandler)
	mux.HandleFunc("/api/products/", app.getProductHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	mux.HandleFunc("/openapi.yaml", app.openapiHandler)
	mux.HandleFunc("/docs", app.docsHandler)
	return WithRequestID(WithLogging(mux))
}
