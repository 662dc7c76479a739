package domain

import "time"

// RawCampaignRecord is a campaign row exactly as the client stored it. The
// payload is persisted as loose JSON, so the monetary fields arrive untyped
// (numbers, strings, null, or garbage) and the dates arrive as strings. Only
// the normalizer is allowed to consume this shape.
type RawCampaignRecord struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	VisitDate     string `json:"visit_date"`
	DeadlineDate  string `json:"deadline_date"`
	Benefit       any    `json:"benefit"`
	Income        any    `json:"income"`
	Cost          any    `json:"cost"`
	IncomeDetails string `json:"income_details"`
}

// CampaignRecord is the normalized in-memory shape used by the statistics
// engine. Monetary fields are whole currency units, already coerced.
type CampaignRecord struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Category      Category   `json:"category"`
	VisitDate     *time.Time `json:"visit_date,omitempty"`
	DeadlineDate  *time.Time `json:"deadline_date,omitempty"`
	Benefit       int        `json:"benefit"`
	Income        int        `json:"income"`
	Cost          int        `json:"cost"`
	IncomeDetails string     `json:"income_details,omitempty"`
}

// BucketingDate picks the date used to assign the campaign to a calendar
// month: visit date wins, deadline is the fallback, nil means undated.
func (c *CampaignRecord) BucketingDate() *time.Time {
	if c.VisitDate != nil {
		return c.VisitDate
	}
	return c.DeadlineDate
}

// LineItemKind discriminates itemized breakdown entries.
type LineItemKind string

const (
	LineItemIncome LineItemKind = "income"
	LineItemCost   LineItemKind = "cost"
)

// LineItem is one labeled entry of a campaign's itemized income/cost
// breakdown. Items are decoded transiently from the stored JSON payload and
// never persisted by the statistics engine itself.
type LineItem struct {
	Label  string       `json:"label"`
	Kind   LineItemKind `json:"kind"`
	Amount int          `json:"amount"`
}
