package statistics

import (
	"sort"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

// ComputeMonthlyGrowthSeries folds the entire record set into per-month
// buckets and returns them in chronological order. The fold deliberately
// ignores the active period filter so the trend always reflects true
// history; the selector is only used to guarantee that the currently
// selected month appears in the output even when it has no records yet.
//
// Undated campaigns and undated extra incomes contribute nothing here.
func ComputeMonthlyGrowthSeries(
	campaigns []*domain.CampaignRecord,
	extras []*domain.ExtraIncomeRecord,
	selector domain.PeriodSelector,
) []*domain.MonthBucket {
	buckets := make(map[string]*domain.MonthBucket)

	bucketFor := func(key string) *domain.MonthBucket {
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthBucket{MonthKey: key}
			buckets[key] = bucket
		}
		return bucket
	}

	for _, campaign := range campaigns {
		date := campaign.BucketingDate()
		if date == nil {
			continue
		}

		bucket := bucketFor(domain.MonthKeyOf(*date))
		bucket.BenefitTotal += campaign.Benefit
		bucket.IncomeTotal += campaign.Income
		bucket.CostTotal += campaign.Cost
	}

	for _, extra := range extras {
		if extra.Date == nil {
			continue
		}

		bucketFor(domain.MonthKeyOf(*extra.Date)).ExtraIncomeTotal += extra.Amount
	}

	for _, bucket := range buckets {
		bucket.EconomicValue = bucket.BenefitTotal + bucket.IncomeTotal +
			bucket.ExtraIncomeTotal - bucket.CostTotal
	}

	// The selected month must render a trend point consistent with the
	// headline figure even before any record lands in it. UI-consistency
	// rule, not a data-integrity one.
	if key := selector.MonthKey(); key != "" {
		if _, ok := buckets[key]; !ok {
			buckets[key] = &domain.MonthBucket{
				MonthKey:      key,
				EconomicValue: ComputePeriodSummary(campaigns, extras, selector).EconomicValue,
			}
		}
	}

	// yyyy-mm keys sort chronologically as plain strings.
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make([]*domain.MonthBucket, 0, len(keys))
	for _, key := range keys {
		series = append(series, buckets[key])
	}

	return series
}
