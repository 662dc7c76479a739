package statistics

import "github.com/sujin-dev/revu-manager-api/internal/domain"

// FilterByPeriod narrows both collections to the selected window.
//
// A campaign is bucketed by its visit date, falling back to the deadline
// date. Undated campaigns are silently dropped from any month view but kept
// for all time; that is documented behavior, not a defect. Inputs are never
// mutated and original order is preserved.
func FilterByPeriod(
	campaigns []*domain.CampaignRecord,
	extras []*domain.ExtraIncomeRecord,
	selector domain.PeriodSelector,
) ([]*domain.CampaignRecord, []*domain.ExtraIncomeRecord) {
	if selector.IsAllTime() {
		filteredCampaigns := make([]*domain.CampaignRecord, len(campaigns))
		copy(filteredCampaigns, campaigns)
		filteredExtras := make([]*domain.ExtraIncomeRecord, len(extras))
		copy(filteredExtras, extras)
		return filteredCampaigns, filteredExtras
	}

	filteredCampaigns := make([]*domain.CampaignRecord, 0, len(campaigns))
	for _, campaign := range campaigns {
		date := campaign.BucketingDate()
		if date == nil {
			continue
		}
		if selector.Contains(*date) {
			filteredCampaigns = append(filteredCampaigns, campaign)
		}
	}

	filteredExtras := make([]*domain.ExtraIncomeRecord, 0, len(extras))
	for _, extra := range extras {
		if extra.Date == nil {
			continue
		}
		if selector.Contains(*extra.Date) {
			filteredExtras = append(filteredExtras, extra)
		}
	}

	return filteredCampaigns, filteredExtras
}
