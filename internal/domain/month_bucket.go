package domain

// MonthBucket holds one month's accumulated totals for the growth series.
// Buckets are rebuilt from the full record set on every pass and never
// persisted by the engine itself (the snapshot scheduler stores copies).
type MonthBucket struct {
	MonthKey         string `json:"month_key"` // yyyy-mm
	BenefitTotal     int    `json:"benefit_total"`
	IncomeTotal      int    `json:"income_total"`
	CostTotal        int    `json:"cost_total"`
	ExtraIncomeTotal int    `json:"extra_income_total"`
	EconomicValue    int    `json:"economic_value"` // may be negative
}

// DedupeBuckets merges a series that may contain repeated month keys,
// keeping the last-seen bucket for each key. The engine itself never emits
// duplicates; this is for callers merging externally sourced buckets.
// Chronological order of first appearance is preserved.
func DedupeBuckets(buckets []*MonthBucket) []*MonthBucket {
	byKey := make(map[string]int, len(buckets))
	out := make([]*MonthBucket, 0, len(buckets))

	for _, b := range buckets {
		if idx, seen := byKey[b.MonthKey]; seen {
			out[idx] = b
			continue
		}
		byKey[b.MonthKey] = len(out)
		out = append(out, b)
	}

	return out
}
