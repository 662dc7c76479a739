package statistics

import "github.com/sujin-dev/revu-manager-api/internal/domain"

// ComputePeriodSummary folds the records in the selected window into the
// full dashboard aggregate: per-category totals over the legacy scalar
// fields, itemized detail totals over the resolved breakdowns, grouped
// extra incomes, and the blended schedule/economic values.
//
// Pure function of its inputs: calling it twice over equal collections
// yields identical output.
func ComputePeriodSummary(
	campaigns []*domain.CampaignRecord,
	extras []*domain.ExtraIncomeRecord,
	selector domain.PeriodSelector,
) *domain.PeriodSummary {
	filteredCampaigns, filteredExtras := FilterByPeriod(campaigns, extras, selector)

	summary := &domain.PeriodSummary{
		BenefitByCategory:     make(map[domain.Category]int),
		IncomeByCategory:      make(map[domain.Category]int),
		CostByCategory:        make(map[domain.Category]int),
		IncomeDetailBreakdown: make(map[string]int),
		CostDetailBreakdown:   make(map[string]int),
		GroupedExtraIncomes:   make(map[string]int),
	}

	var categoryOrder []domain.Category
	var incomeLabelOrder, costLabelOrder, extraTitleOrder []string

	seenCategories := make(map[domain.Category]bool)
	seenIncomeLabels := make(map[string]bool)
	seenCostLabels := make(map[string]bool)
	seenExtraTitles := make(map[string]bool)

	for _, campaign := range filteredCampaigns {
		category := campaign.Category
		if !seenCategories[category] {
			seenCategories[category] = true
			categoryOrder = append(categoryOrder, category)
		}

		// Category totals always read the legacy scalars, even when the
		// campaign carries an itemized breakdown.
		summary.BenefitByCategory[category] += campaign.Benefit
		summary.IncomeByCategory[category] += campaign.Income
		summary.CostByCategory[category] += campaign.Cost

		summary.TotalBenefit += campaign.Benefit
		summary.TotalCashIncome += campaign.Income
		summary.TotalCost += campaign.Cost

		resolved := ResolveBreakdown(campaign)
		summary.DetailIncomeTotal += resolved.IncomeTotal
		summary.DetailCostTotal += resolved.CostTotal

		for _, label := range resolved.IncomeLabels {
			if !seenIncomeLabels[label] {
				seenIncomeLabels[label] = true
				incomeLabelOrder = append(incomeLabelOrder, label)
			}
			summary.IncomeDetailBreakdown[label] += resolved.IncomeByLabel[label]
		}

		for _, label := range resolved.CostLabels {
			if !seenCostLabels[label] {
				seenCostLabels[label] = true
				costLabelOrder = append(costLabelOrder, label)
			}
			summary.CostDetailBreakdown[label] += resolved.CostByLabel[label]
		}
	}

	for _, extra := range filteredExtras {
		title := extra.Title
		if title == "" {
			title = domain.ExtraIncomeFallbackLabel
		}

		if !seenExtraTitles[title] {
			seenExtraTitles[title] = true
			extraTitleOrder = append(extraTitleOrder, title)
		}

		summary.GroupedExtraIncomes[title] += extra.Amount
		summary.TotalExtraIncome += extra.Amount
	}

	summary.ScheduleValue = summary.TotalBenefit + summary.TotalCashIncome - summary.TotalCost
	summary.EconomicValue = summary.ScheduleValue + summary.TotalExtraIncome

	summary.BenefitEntries = categoryEntries(summary.BenefitByCategory, categoryOrder)
	summary.IncomeEntries = categoryEntries(summary.IncomeByCategory, categoryOrder)
	summary.CostEntries = categoryEntries(summary.CostByCategory, categoryOrder)
	summary.IncomeDetailEntries = domain.SortedEntries(summary.IncomeDetailBreakdown, incomeLabelOrder)
	summary.CostDetailEntries = domain.SortedEntries(summary.CostDetailBreakdown, costLabelOrder)
	summary.ExtraIncomeEntries = domain.SortedEntries(summary.GroupedExtraIncomes, extraTitleOrder)

	return summary
}

// categoryEntries adapts a category-keyed map to the shared display sorter.
func categoryEntries(amounts map[domain.Category]int, order []domain.Category) []domain.AmountEntry {
	byLabel := make(map[string]int, len(amounts))
	labels := make([]string, 0, len(order))

	for _, category := range order {
		labels = append(labels, string(category))
		byLabel[string(category)] = amounts[category]
	}

	return domain.SortedEntries(byLabel, labels)
}
