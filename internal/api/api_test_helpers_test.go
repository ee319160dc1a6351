package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/lunisolar-api/internal/domain/lunisolar"
)

// mockConversionService is a mock implementation of service.ConversionService.
type mockConversionService struct {
	solarToLunarFn func(ctx context.Context, year uint16, month, day uint8) (lunisolar.LunarResult, error)
	lunarToSolarFn func(ctx context.Context, year uint16, month, day uint8) []lunisolar.SolarResult
}

func (m *mockConversionService) SolarToLunar(
	ctx context.Context,
	year uint16,
	month, day uint8,
) (lunisolar.LunarResult, error) {
	return m.solarToLunarFn(ctx, year, month, day)
}

func (m *mockConversionService) LunarToSolar(
	ctx context.Context,
	year uint16,
	month, day uint8,
) []lunisolar.SolarResult {
	return m.lunarToSolarFn(ctx, year, month, day)
}

// newDateRequest builds a GET request whose chi route context carries the
// given year/month/day path parameters.
func newDateRequest(path, year, month, day string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(paramYear, year)
	rctx.URLParams.Add(paramMonth, month)
	rctx.URLParams.Add(paramDay, day)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
