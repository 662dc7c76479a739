package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"nil", nil, 0},
		{"float64", float64(45000), 45000},
		{"float64 fraction rounds", 45000.6, 45001},
		{"float32", float32(100), 100},
		{"int", 42, 42},
		{"int64", int64(99), 99},
		{"json number", json.Number("15000"), 15000},
		{"bad json number", json.Number("x"), 0},
		{"numeric string", "68000", 68000},
		{"numeric string with spaces", "  68000  ", 68000},
		{"float string", "123.4", 123},
		{"empty string", "", 0},
		{"garbage string", "abc", 0},
		{"negative string", "-5000", -5000},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"nan", math.NaN(), 0},
		{"positive inf", math.Inf(1), 0},
		{"negative inf", math.Inf(-1), 0},
		{"unsupported type", []int{1}, 0},
		{"map payload", map[string]any{"v": 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToAmount(tt.input))
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	got := ParseOptionalDate("2026-08-04")
	assert.NotNil(t, got)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, 8, int(got.Month()))
	assert.Equal(t, 4, got.Day())

	assert.Nil(t, ParseOptionalDate(""))
	assert.Nil(t, ParseOptionalDate("not a date"))
	assert.Nil(t, ParseOptionalDate("2026-13-45"))
	assert.Nil(t, ParseOptionalDate("2026/08/04"))
}
