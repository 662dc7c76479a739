package domain

import (
	"math"
	"sort"
)

// AmountEntry is one row of a breakdown listing: a grouping key and its
// summed amount.
type AmountEntry struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// PeriodSummary is the aggregated view of one reporting window.
//
// Category totals always read the legacy scalar fields, while the detail
// totals read the itemized breakdowns (or their legacy fallback). The two
// are allowed to diverge: adding itemized detail without touching the
// scalars changes the detail view but not the headline numbers.
type PeriodSummary struct {
	TotalBenefit     int `json:"total_benefit"`
	TotalCashIncome  int `json:"total_cash_income"`
	TotalCost        int `json:"total_cost"`
	TotalExtraIncome int `json:"total_extra_income"`

	// ScheduleValue covers campaigns only; EconomicValue is the headline
	// blended metric including extra income.
	ScheduleValue int `json:"schedule_value"`
	EconomicValue int `json:"economic_value"`

	BenefitByCategory map[Category]int `json:"benefit_by_category"`
	IncomeByCategory  map[Category]int `json:"income_by_category"`
	CostByCategory    map[Category]int `json:"cost_by_category"`

	DetailIncomeTotal     int            `json:"detail_income_total"`
	DetailCostTotal       int            `json:"detail_cost_total"`
	IncomeDetailBreakdown map[string]int `json:"income_detail_breakdown"`
	CostDetailBreakdown   map[string]int `json:"cost_detail_breakdown"`

	GroupedExtraIncomes map[string]int `json:"grouped_extra_incomes"`

	// Display orderings. Entries with a zero amount are omitted; ties keep
	// first-seen order.
	BenefitEntries      []AmountEntry `json:"benefit_entries"`
	IncomeEntries       []AmountEntry `json:"income_entries"`
	CostEntries         []AmountEntry `json:"cost_entries"`
	IncomeDetailEntries []AmountEntry `json:"income_detail_entries"`
	CostDetailEntries   []AmountEntry `json:"cost_detail_entries"`
	ExtraIncomeEntries  []AmountEntry `json:"extra_income_entries"`
}

// PercentOf computes the rounded share of amount against a type total,
// rounding half away from zero. A zero total yields 0 for every entry
// instead of dividing by zero.
func PercentOf(amount, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(amount) / float64(total) * 100))
}

// SortedEntries turns an accumulated map into display rows sorted by
// descending amount. keysInOrder carries the first-seen insertion order so
// ties stay stable, and zero-amount entries produce no row.
func SortedEntries(amounts map[string]int, keysInOrder []string) []AmountEntry {
	entries := make([]AmountEntry, 0, len(keysInOrder))
	for _, key := range keysInOrder {
		if amounts[key] <= 0 {
			continue
		}
		entries = append(entries, AmountEntry{Label: key, Amount: amounts[key]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})

	return entries
}
