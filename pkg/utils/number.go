package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToAmount coerces a loosely-typed monetary value into whole currency units.
// Anything that does not parse to a finite number becomes 0, so malformed
// storage data can never push NaN or Inf into a sum.
func ToAmount(v any) int {
	var f float64

	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(math.Round(f))
}
