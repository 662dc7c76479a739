package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

func TestComputePeriodSummary_blendedTotals(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{
			Category:  domain.CategoryBeauty,
			VisitDate: datePtr(2026, 8, 4),
			Benefit:   45000,
			Cost:      3000,
		},
		{
			Category:  domain.CategoryFood,
			VisitDate: datePtr(2026, 8, 12),
			Benefit:   68000,
			Income:    15000,
		},
	}
	extras := []*domain.ExtraIncomeRecord{
		{Title: "블로그 광고", Amount: 120000, Date: datePtr(2026, 8, 1)},
	}

	summary := ComputePeriodSummary(campaigns, extras, domain.MonthOf(2026, time.August))

	assert.Equal(t, 113000, summary.TotalBenefit)
	assert.Equal(t, 15000, summary.TotalCashIncome)
	assert.Equal(t, 3000, summary.TotalCost)
	assert.Equal(t, 120000, summary.TotalExtraIncome)
	// Schedule value excludes extra income, economic value includes it.
	assert.Equal(t, 125000, summary.ScheduleValue)
	assert.Equal(t, 245000, summary.EconomicValue)
}

func TestComputePeriodSummary_categoryTotalsIgnoreItemizedDetail(t *testing.T) {
	// The campaign carries an itemized breakdown that disagrees with its
	// legacy scalars. Category totals keep reading the scalars while the
	// detail totals read the items; the divergence is intended.
	campaigns := []*domain.CampaignRecord{
		{
			Category:      domain.CategoryProduct,
			VisitDate:     datePtr(2026, 8, 4),
			Income:        10000,
			Cost:          2000,
			IncomeDetails: `[{"label":"원고료","kind":"income","amount":30000}]`,
		},
	}

	summary := ComputePeriodSummary(campaigns, nil, domain.AllTime())

	assert.Equal(t, 10000, summary.IncomeByCategory[domain.CategoryProduct])
	assert.Equal(t, 2000, summary.CostByCategory[domain.CategoryProduct])
	assert.Equal(t, 30000, summary.DetailIncomeTotal)
	assert.Equal(t, 0, summary.DetailCostTotal)
	assert.Equal(t, map[string]int{"원고료": 30000}, summary.IncomeDetailBreakdown)
}

func TestComputePeriodSummary_detailLabelsMergeAcrossCampaigns(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{
			Category:      domain.CategoryBeauty,
			IncomeDetails: `[{"label":"원고료","kind":"income","amount":20000},{"label":"배송비","kind":"cost","amount":3000}]`,
		},
		{
			Category:      domain.CategoryFood,
			IncomeDetails: `[{"label":"원고료","kind":"income","amount":5000},{"label":"2차 사용료","kind":"income","amount":25000}]`,
		},
		// Legacy campaign: contributes to detail totals, not to label maps.
		{
			Category: domain.CategoryStay,
			Income:   7000,
			Cost:     1000,
		},
	}

	summary := ComputePeriodSummary(campaigns, nil, domain.AllTime())

	assert.Equal(t, 57000, summary.DetailIncomeTotal)
	assert.Equal(t, 4000, summary.DetailCostTotal)
	assert.Equal(t, map[string]int{"원고료": 25000, "2차 사용료": 25000}, summary.IncomeDetailBreakdown)

	// Descending by amount; the 25000 tie keeps first-seen order.
	assert.Equal(t, []domain.AmountEntry{
		{Label: "원고료", Amount: 25000},
		{Label: "2차 사용료", Amount: 25000},
	}, summary.IncomeDetailEntries)
}

func TestComputePeriodSummary_extraIncomeFallbackLabel(t *testing.T) {
	extras := []*domain.ExtraIncomeRecord{
		{Title: "블로그 광고", Amount: 50000},
		{Title: "", Amount: 35000},
		{Title: "", Amount: 10000},
		{Title: "기타", Amount: 5000},
	}

	summary := ComputePeriodSummary(nil, extras, domain.AllTime())

	// Untitled rows merge with an explicit 기타 row under one label.
	assert.Equal(t, map[string]int{
		"블로그 광고": 50000,
		"기타":     50000,
	}, summary.GroupedExtraIncomes)
	assert.Equal(t, 100000, summary.TotalExtraIncome)
}

func TestComputePeriodSummary_entriesOmitZeroAmounts(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{Category: domain.CategoryBeauty, Benefit: 45000},
		{Category: domain.CategoryFood, Benefit: 0, Income: 12000},
	}

	summary := ComputePeriodSummary(campaigns, nil, domain.AllTime())

	assert.Equal(t, []domain.AmountEntry{
		{Label: "뷰티", Amount: 45000},
	}, summary.BenefitEntries)
	assert.Equal(t, []domain.AmountEntry{
		{Label: "맛집", Amount: 12000},
	}, summary.IncomeEntries)
	assert.Empty(t, summary.CostEntries)
}

func TestComputePeriodSummary_monthFilterExcludesUndated(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{Category: domain.CategoryBeauty, VisitDate: datePtr(2026, 8, 4), Benefit: 45000},
		{Category: domain.CategoryFood, Benefit: 99000}, // undated
	}

	august := ComputePeriodSummary(campaigns, nil, domain.MonthOf(2026, time.August))
	allTime := ComputePeriodSummary(campaigns, nil, domain.AllTime())

	assert.Equal(t, 45000, august.TotalBenefit)
	assert.Equal(t, 144000, allTime.TotalBenefit)
}

func TestComputePeriodSummary_emptyWindow(t *testing.T) {
	summary := ComputePeriodSummary(nil, nil, domain.MonthOf(2026, time.August))

	assert.Equal(t, 0, summary.EconomicValue)
	assert.Empty(t, summary.BenefitEntries)
	assert.Empty(t, summary.ExtraIncomeEntries)
	assert.NotNil(t, summary.BenefitByCategory)
	assert.NotNil(t, summary.GroupedExtraIncomes)
}

func TestComputePeriodSummary_negativeEconomicValue(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{Category: domain.CategoryTravel, Benefit: 10000, Cost: 60000},
	}

	summary := ComputePeriodSummary(campaigns, nil, domain.AllTime())

	assert.Equal(t, -50000, summary.ScheduleValue)
	assert.Equal(t, -50000, summary.EconomicValue)
}

func TestComputePeriodSummary_isDeterministic(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{Category: domain.CategoryBeauty, Benefit: 45000, IncomeDetails: `[{"label":"원고료","kind":"income","amount":20000}]`},
		{Category: domain.CategoryFood, Benefit: 68000, Income: 15000},
	}
	extras := []*domain.ExtraIncomeRecord{
		{Title: "광고", Amount: 120000},
	}

	first := ComputePeriodSummary(campaigns, extras, domain.AllTime())
	second := ComputePeriodSummary(campaigns, extras, domain.AllTime())

	assert.Equal(t, first, second)
}
