package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wildgrove/resort-booking-service/internal/pricing"
)

func TestRateForDate(t *testing.T) {
	rates := map[string]float64{
		"2026-03-14": 8500,
		"2026-03-15": 9000,
	}

	assert.Equal(t, 8500.0, pricing.RateForDate(rates, 7000, "2026-03-14"))
	assert.Equal(t, 9000.0, pricing.RateForDate(rates, 7000, "2026-03-15"))
	assert.Equal(t, 7000.0, pricing.RateForDate(rates, 7000, "2026-03-16"))
	assert.Equal(t, 7000.0, pricing.RateForDate(nil, 7000, "2026-03-14"))
}

func TestRateForDate_SanitizesMalformedValues(t *testing.T) {
	rates := map[string]float64{
		"2026-03-14": -500,
		"2026-03-15": math.NaN(),
		"2026-03-16": math.Inf(1),
	}

	assert.Equal(t, 0.0, pricing.RateForDate(rates, 7000, "2026-03-14"))
	assert.Equal(t, 0.0, pricing.RateForDate(rates, 7000, "2026-03-15"))
	assert.Equal(t, 0.0, pricing.RateForDate(rates, 7000, "2026-03-16"))
	assert.Equal(t, 0.0, pricing.RateForDate(rates, -100, "2026-03-17"))
}

func TestFallbackRate(t *testing.T) {
	// Берется значение самой ранней даты, не самое маленькое
	rates := map[string]float64{
		"2026-03-20": 6000,
		"2026-03-14": 9500,
		"2026-03-17": 5000,
	}
	assert.Equal(t, 9500.0, pricing.FallbackRate(rates, 7000))

	// Пустая карта деградирует в rack rate
	assert.Equal(t, 7000.0, pricing.FallbackRate(nil, 7000))
	assert.Equal(t, 7000.0, pricing.FallbackRate(map[string]float64{}, 7000))

	// Совсем без данных — ноль
	assert.Equal(t, 0.0, pricing.FallbackRate(nil, 0))
	assert.Equal(t, 0.0, pricing.FallbackRate(nil, -500))
}
