package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

func TestPeriodFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected domain.PeriodSelector
		ok       bool
	}{
		{"no params selects all time", "", domain.AllTime(), true},
		{"valid month", "?year=2026&month=8", domain.MonthOf(2026, time.August), true},
		{"year without month", "?year=2026", domain.PeriodSelector{}, false},
		{"month without year", "?month=8", domain.PeriodSelector{}, false},
		{"month out of range", "?year=2026&month=13", domain.PeriodSelector{}, false},
		{"zero month", "?year=2026&month=0", domain.PeriodSelector{}, false},
		{"non numeric year", "?year=abcd&month=8", domain.PeriodSelector{}, false},
		{"negative year", "?year=-1&month=8", domain.PeriodSelector{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/v1/statistics/summary"+tt.query, nil)

			selector, ok := periodFromQuery(r)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, selector)
			}
		})
	}
}
