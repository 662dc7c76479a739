package domain

import "time"

// ExtraIncomeFallbackLabel groups extra incomes whose title is empty after
// trimming. They are never dropped from totals.
const ExtraIncomeFallbackLabel = "기타"

// RawExtraIncomeRecord is an extra-income row as stored by the client, with
// the amount untyped. See RawCampaignRecord for the loose-payload rationale.
type RawExtraIncomeRecord struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Amount any    `json:"amount"`
	Date   string `json:"date"`
	Memo   string `json:"memo"`
}

// ExtraIncomeRecord is the normalized supplementary-income shape. The title
// is trimmed but may still be empty; grouping under the fallback label only
// happens at aggregation time.
type ExtraIncomeRecord struct {
	ID     int        `json:"id"`
	Title  string     `json:"title"`
	Amount int        `json:"amount"`
	Date   *time.Time `json:"date,omitempty"`
	Memo   string     `json:"memo,omitempty"`
}
