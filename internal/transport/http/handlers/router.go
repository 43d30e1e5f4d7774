package handlers

import (
	"net/http"

	"github.com/danilom/inkbase/internal/transport/http/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Workspace *WorkspaceHandler
	Page      *PageHandler
	Record    *RecordHandler

	// AuthMW guards every route except register, login and health.
	AuthMW func(http.Handler) http.Handler

	// WS, when set, serves the workspace change feed.
	WS http.HandlerFunc
}

// NewRouter builds the full API surface under /api/v1, wrapped in CORS.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := deps.AuthMW

	// Public
	mux.HandleFunc("GET /api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /api/v1/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", deps.Auth.Login)

	// Workspaces
	mux.Handle("GET /api/v1/workspaces", auth(http.HandlerFunc(deps.Workspace.List)))
	mux.Handle("POST /api/v1/workspaces", auth(http.HandlerFunc(deps.Workspace.Create)))

	// Pages
	mux.Handle("GET /api/v1/workspaces/{id}/pages", auth(http.HandlerFunc(deps.Page.ListRoots)))
	mux.Handle("POST /api/v1/workspaces/{id}/pages", auth(http.HandlerFunc(deps.Page.Create)))
	mux.Handle("GET /api/v1/pages/{id}", auth(http.HandlerFunc(deps.Page.Get)))
	mux.Handle("PUT /api/v1/pages/{id}", auth(http.HandlerFunc(deps.Page.Update)))
	mux.Handle("DELETE /api/v1/pages/{id}", auth(http.HandlerFunc(deps.Page.Delete)))

	// Records
	mux.Handle("GET /api/v1/pages/{id}/records", auth(http.HandlerFunc(deps.Record.List)))
	mux.Handle("POST /api/v1/pages/{id}/records", auth(http.HandlerFunc(deps.Record.Create)))
	mux.Handle("PUT /api/v1/records/{id}", auth(http.HandlerFunc(deps.Record.Update)))
	mux.Handle("DELETE /api/v1/records/{id}", auth(http.HandlerFunc(deps.Record.Delete)))

	// Change feed (token auth happens inside the handler; WebSocket
	// clients can't set headers)
	if deps.WS != nil {
		mux.HandleFunc("GET /api/v1/ws", deps.WS)
	}

	return middleware.CORS(mux)
}
