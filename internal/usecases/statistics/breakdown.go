package statistics

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
	"github.com/sujin-dev/revu-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BreakdownResult is the resolved itemized view of a single campaign:
// income/cost subtotals plus per-label sums. Label slices carry first-seen
// order so merged listings can break amount ties deterministically.
type BreakdownResult struct {
	IncomeTotal   int
	CostTotal     int
	IncomeByLabel map[string]int
	CostByLabel   map[string]int
	IncomeLabels  []string
	CostLabels    []string
}

// rawLineItem mirrors the stored JSON shape before coercion. The amount is
// untyped on purpose: clients have stored numbers and numeric strings.
type rawLineItem struct {
	Label  string `json:"label"`
	Kind   string `json:"kind"`
	Amount any    `json:"amount"`
}

// ResolveBreakdown decodes a campaign's itemized income/cost payload.
//
// A decoded non-empty item list is authoritative and the legacy income/cost
// scalars are ignored for the detail view (category totals still read them
// directly; the two views may diverge and that is intended). When the
// payload is absent, malformed, or yields no usable item, a fallback is
// synthesized from the legacy scalars: one unlabeled income item and one
// unlabeled cost item, so subtotals reconstruct the scalars exactly while
// the label maps stay empty. Benefit never appears as a line item.
func ResolveBreakdown(campaign *domain.CampaignRecord) BreakdownResult {
	result := BreakdownResult{
		IncomeByLabel: make(map[string]int),
		CostByLabel:   make(map[string]int),
	}

	for _, item := range decodeLineItems(campaign.IncomeDetails) {
		switch item.Kind {
		case domain.LineItemIncome:
			result.IncomeTotal += item.Amount
			if _, seen := result.IncomeByLabel[item.Label]; !seen {
				result.IncomeLabels = append(result.IncomeLabels, item.Label)
			}
			result.IncomeByLabel[item.Label] += item.Amount
		case domain.LineItemCost:
			result.CostTotal += item.Amount
			if _, seen := result.CostByLabel[item.Label]; !seen {
				result.CostLabels = append(result.CostLabels, item.Label)
			}
			result.CostByLabel[item.Label] += item.Amount
		}
	}

	if len(result.IncomeByLabel) == 0 && len(result.CostByLabel) == 0 {
		// Legacy fallback: unlabeled items, empty breakdown maps.
		if campaign.Income > 0 {
			result.IncomeTotal = campaign.Income
		}
		if campaign.Cost > 0 {
			result.CostTotal = campaign.Cost
		}
	}

	return result
}

// decodeLineItems parses the stored payload into validated line items. Any
// decode failure or shape mismatch is treated as "absent" rather than an
// error; items with an unrecognized kind are skipped.
func decodeLineItems(payload string) []domain.LineItem {
	if payload == "" {
		return nil
	}

	var raws []rawLineItem
	if err := json.UnmarshalFromString(payload, &raws); err != nil {
		return nil
	}

	items := make([]domain.LineItem, 0, len(raws))
	for _, raw := range raws {
		kind := domain.LineItemKind(raw.Kind)
		if kind != domain.LineItemIncome && kind != domain.LineItemCost {
			continue
		}

		items = append(items, domain.LineItem{
			Label:  raw.Label,
			Kind:   kind,
			Amount: utils.ToAmount(raw.Amount),
		})
	}

	return items
}
