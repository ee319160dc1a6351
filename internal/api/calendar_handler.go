package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/lunisolar-api/internal/api/shared"
	"github.com/phrazzld/lunisolar-api/internal/platform/logger"
	"github.com/phrazzld/lunisolar-api/internal/service"
)

// CalendarHandler handles the date conversion endpoints.
type CalendarHandler struct {
	conversionService service.ConversionService
	logger            *slog.Logger
}

// NewCalendarHandler creates a new CalendarHandler.
// A nil logger falls back to slog.Default().
func NewCalendarHandler(conversionService service.ConversionService, logger *slog.Logger) *CalendarHandler {
	if conversionService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("conversionService cannot be nil for CalendarHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CalendarHandler{
		conversionService: conversionService,
		logger:            logger.With(slog.String("component", "calendar_handler")),
	}
}

// SolarToLunar handles GET /solar-to-lunar/{year}/{month}/{day} requests.
// It responds with the lunisolar month and day of the Gregorian date, or 400
// when the date is not a Gregorian date or lies outside the lunisolar table.
func (h *CalendarHandler) SolarToLunar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params, ok := h.parseParams(w, r, log)
	if !ok {
		return
	}

	result, err := h.conversionService.SolarToLunar(r.Context(), params.Year, params.Month, params.Day)
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := fmt.Sprintf("Couldn't convert %d/%d/%d", params.Year, params.Month, params.Day)
		if status >= http.StatusInternalServerError {
			message = GetSafeErrorMessage(err)
		}
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lunarResultToResponse(result))
}

// LunarToSolar handles GET /lunar-to-solar/{year}/{month}/{day} requests.
// It responds with every Gregorian date the lunisolar month/day can denote.
// An empty array is a successful response.
func (h *CalendarHandler) LunarToSolar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params, ok := h.parseParams(w, r, log)
	if !ok {
		return
	}

	results := h.conversionService.LunarToSolar(r.Context(), params.Year, params.Month, params.Day)
	shared.RespondWithJSON(w, r, http.StatusOK, solarResultsToResponse(results))
}

// parseParams parses the date path parameters, writing the 400 response
// itself when they are malformed.
func (h *CalendarHandler) parseParams(w http.ResponseWriter, r *http.Request, log *slog.Logger) (dateParams, bool) {
	params, err := parseDateParams(r)
	if err != nil {
		log.Debug("invalid path parameters", slog.String("path", r.URL.Path))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return dateParams{}, false
	}
	return params, true
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Error("Failed to write health check response", "error", err)
	}
}

// NotFound responds to requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed responds to known routes requested with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, msgNotAllowed)
}
