package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

func TestComputeMonthlyGrowthSeries(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{Benefit: 45000, Cost: 3000, VisitDate: datePtr(2026, 8, 4)},
		{Benefit: 68000, Income: 15000, VisitDate: datePtr(2026, 8, 12)},
		{Benefit: 180000, Cost: 25000, DeadlineDate: datePtr(2026, 7, 28)},
		{Benefit: 99000}, // undated, contributes nothing
	}
	extras := []*domain.ExtraIncomeRecord{
		{Amount: 120000, Date: datePtr(2026, 8, 1)},
		{Amount: 30000, Date: datePtr(2026, 6, 15)},
	}

	series := ComputeMonthlyGrowthSeries(campaigns, extras, domain.AllTime())

	assert.Equal(t, []string{"2026-06", "2026-07", "2026-08"}, monthKeys(series))

	june, july, august := series[0], series[1], series[2]

	assert.Equal(t, &domain.MonthBucket{
		MonthKey:         "2026-06",
		ExtraIncomeTotal: 30000,
		EconomicValue:    30000,
	}, june)

	assert.Equal(t, &domain.MonthBucket{
		MonthKey:      "2026-07",
		BenefitTotal:  180000,
		CostTotal:     25000,
		EconomicValue: 155000,
	}, july)

	assert.Equal(t, &domain.MonthBucket{
		MonthKey:         "2026-08",
		BenefitTotal:     113000,
		IncomeTotal:      15000,
		CostTotal:        3000,
		ExtraIncomeTotal: 120000,
		EconomicValue:    245000,
	}, august)
}

func TestComputeMonthlyGrowthSeries_ignoresPeriodFilter(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{Benefit: 45000, VisitDate: datePtr(2026, 7, 4)},
		{Benefit: 68000, VisitDate: datePtr(2026, 8, 12)},
	}

	// Selecting August must not drop July from the trend.
	series := ComputeMonthlyGrowthSeries(campaigns, nil, domain.MonthOf(2026, time.August))

	assert.Equal(t, []string{"2026-07", "2026-08"}, monthKeys(series))
}

func TestComputeMonthlyGrowthSeries_synthesizesSelectedMonth(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{Benefit: 45000, VisitDate: datePtr(2026, 7, 4)},
	}

	series := ComputeMonthlyGrowthSeries(campaigns, nil, domain.MonthOf(2026, time.September))

	assert.Equal(t, []string{"2026-07", "2026-09"}, monthKeys(series))

	// The synthesized bucket mirrors the period summary for that month,
	// which is empty here.
	september := series[1]
	assert.Equal(t, 0, september.EconomicValue)
	assert.Equal(t, 0, september.BenefitTotal)
}

func TestComputeMonthlyGrowthSeries_empty(t *testing.T) {
	assert.Empty(t, ComputeMonthlyGrowthSeries(nil, nil, domain.AllTime()))

	series := ComputeMonthlyGrowthSeries(nil, nil, domain.MonthOf(2026, time.August))
	assert.Equal(t, []string{"2026-08"}, monthKeys(series))
}

func monthKeys(series []*domain.MonthBucket) []string {
	keys := make([]string, 0, len(series))
	for _, bucket := range series {
		keys = append(keys, bucket.MonthKey)
	}
	return keys
}
