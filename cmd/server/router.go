package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/lunisolar-api/internal/api"
	apiMiddleware "github.com/phrazzld/lunisolar-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger(app.logger))
	r.Use(middleware.Recoverer)

	calendarHandler := api.NewCalendarHandler(app.conversionService, app.logger)

	r.Get("/solar-to-lunar/{year}/{month}/{day}", calendarHandler.SolarToLunar)
	r.Get("/lunar-to-solar/{year}/{month}/{day}", calendarHandler.LunarToSolar)
	r.Get("/health", api.Health)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	return r
}
