package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/", app.handleIndex)
	mux.Get("/api/status", app.handleStatus)

	mux.Post("/api/users", app.handleAddUser)
	mux.Get("/api/users", app.handleListUsers)
	mux.Post("/api/users/{userId}/exercises", app.handleAddExercise)
	mux.Get("/api/users/{userId}/logs", app.handleUserLogs)

	mux.With(app.requireAdminToken).Delete("/api/admin/data", app.handleClearData)

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
