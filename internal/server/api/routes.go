package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// route is one row of the endpoint-level authorization policy: which
// endpoints demand an authenticated principal before the handler runs.
//
// The policy is deliberately kept in one table so its gaps stay visible:
// account reads/updates/deletes require authentication but no ownership of
// the addressed account, and task reads/updates/deletes require neither.
// Ownership is enforced only where a handler states it (task creation, the
// "me"/"my account" lookups keyed by the principal's own username, and the
// cookie handling on self-deletion).
type route struct {
	method      string
	path        string
	handler     echo.HandlerFunc
	requireAuth bool
}

func (s *Server) routes() []route {
	return []route{
		{method: http.MethodPost, path: "/signup", handler: s.signup},
		{method: http.MethodPost, path: "/login", handler: s.login},
		{method: http.MethodPost, path: "/logout", handler: s.logout, requireAuth: true},
		{method: http.MethodGet, path: "/me", handler: s.me, requireAuth: true},
		{method: http.MethodGet, path: "/api/account", handler: s.myAccount},
		{method: http.MethodGet, path: "/username-check/:username", handler: s.usernameCheck},

		{method: http.MethodGet, path: "/accounts", handler: s.listAccounts, requireAuth: true},
		{method: http.MethodGet, path: "/accounts/:id", handler: s.getAccount, requireAuth: true},
		{method: http.MethodPut, path: "/accounts/:id", handler: s.updateAccount, requireAuth: true},
		{method: http.MethodDelete, path: "/accounts/:id", handler: s.deleteAccount, requireAuth: true},

		{method: http.MethodGet, path: "/accounts/:id/tasks", handler: s.listTasksForAccount},
		{method: http.MethodGet, path: "/tasks/:id", handler: s.getTask},
		{method: http.MethodPost, path: "/tasks", handler: s.createTask, requireAuth: true},
		{method: http.MethodPut, path: "/tasks/:id", handler: s.updateTask},
		{method: http.MethodDelete, path: "/tasks/:id", handler: s.deleteTask},
	}
}

func (s *Server) registerRoutes(e *echo.Echo) {
	for _, r := range s.routes() {
		if r.requireAuth {
			e.Add(r.method, r.path, r.handler, s.requireAuth)
		} else {
			e.Add(r.method, r.path, r.handler)
		}
	}
}
