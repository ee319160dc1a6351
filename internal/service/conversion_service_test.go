package service

import (
	"context"
	"testing"

	"github.com/phrazzld/lunisolar-api/internal/domain/lunisolar"
	"github.com/phrazzld/lunisolar-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversionService(t *testing.T) {
	t.Parallel()

	svc := NewConversionService(nil)
	require.NotNil(t, svc)

	impl, ok := svc.(*conversionServiceImpl)
	require.True(t, ok, "Expected *conversionServiceImpl type")
	assert.NotNil(t, impl.logger)
}

func TestConversionService_SolarToLunar(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	svc := NewConversionService(log)

	result, err := svc.SolarToLunar(context.Background(), 1991, 6, 6)
	require.NoError(t, err)
	assert.Equal(t, lunisolar.LunarResult{Month: 4, Day: 24}, result)

	entry := logger.FindLogEntry(t, buf, "converted solar date")
	require.NotNil(t, entry)
	assert.Equal(t, "conversion_service", entry["component"])
	assert.Equal(t, float64(4), entry["lunar_month"])
	assert.Equal(t, float64(24), entry["lunar_day"])
}

func TestConversionService_SolarToLunar_Errors(t *testing.T) {
	t.Parallel()

	svc := NewConversionService(nil)

	_, err := svc.SolarToLunar(context.Background(), 2000, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidSolarDate)

	_, err = svc.SolarToLunar(context.Background(), 1000, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestConversionService_UsesContextLogger(t *testing.T) {
	t.Parallel()

	serviceLog, serviceBuf := logger.GetTestLogger(t)
	requestLog, requestBuf := logger.GetTestLogger(t)
	svc := NewConversionService(serviceLog)

	ctx := logger.WithLogger(context.Background(), requestLog.With("trace_id", "abc"))
	_, err := svc.SolarToLunar(ctx, 2000, 0, 0)
	require.Error(t, err)

	assert.Empty(t, serviceBuf.String())
	entry := logger.FindLogEntry(t, requestBuf, "solar date not convertible")
	require.NotNil(t, entry)
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestConversionService_LunarToSolar(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	svc := NewConversionService(log)

	tests := []struct {
		name  string
		year  uint16
		month uint8
		day   uint8
		want  []lunisolar.SolarResult
	}{
		{"single", 2020, 1, 1, []lunisolar.SolarResult{{Year: 2020, Month: 1, Day: 25}}},
		{"leap pair", 2020, 4, 4, []lunisolar.SolarResult{
			{Year: 2020, Month: 4, Day: 26},
			{Year: 2020, Month: 5, Day: 26},
		}},
		{"none", 2020, 1, 30, []lunisolar.SolarResult{}},
	}
	for _, tc := range tests {
		got := svc.LunarToSolar(context.Background(), tc.year, tc.month, tc.day)
		assert.Equal(t, tc.want, got, tc.name)
	}

	entry := logger.FindLogEntry(t, buf, "converted lunisolar date")
	require.NotNil(t, entry)
	assert.Equal(t, float64(1), entry["candidates"])
}
