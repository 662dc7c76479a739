package statistics

import (
	"strings"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
	"github.com/sujin-dev/revu-manager-api/pkg/utils"
)

// NormalizeCampaigns converts raw campaign rows into the strict shape the
// aggregation engine works on. Monetary fields are coerced (malformed values
// become 0), unknown categories fall back to 기타, and broken date strings
// degrade to nil. Pure function: the input is never mutated and no record is
// ever dropped.
func NormalizeCampaigns(raws []*domain.RawCampaignRecord) []*domain.CampaignRecord {
	campaigns := make([]*domain.CampaignRecord, 0, len(raws))

	for _, raw := range raws {
		if raw == nil {
			continue
		}

		campaigns = append(campaigns, &domain.CampaignRecord{
			ID:            raw.ID,
			Title:         raw.Title,
			Category:      domain.NormalizeCategory(raw.Category),
			VisitDate:     utils.ParseOptionalDate(raw.VisitDate),
			DeadlineDate:  utils.ParseOptionalDate(raw.DeadlineDate),
			Benefit:       utils.ToAmount(raw.Benefit),
			Income:        utils.ToAmount(raw.Income),
			Cost:          utils.ToAmount(raw.Cost),
			IncomeDetails: raw.IncomeDetails,
		})
	}

	return campaigns
}

// NormalizeExtraIncomes applies the same coercion contract to supplementary
// income rows. Titles are trimmed here; an empty title is preserved as empty
// and only grouped under the fallback label at aggregation time.
func NormalizeExtraIncomes(raws []*domain.RawExtraIncomeRecord) []*domain.ExtraIncomeRecord {
	extras := make([]*domain.ExtraIncomeRecord, 0, len(raws))

	for _, raw := range raws {
		if raw == nil {
			continue
		}

		extras = append(extras, &domain.ExtraIncomeRecord{
			ID:     raw.ID,
			Title:  strings.TrimSpace(raw.Title),
			Amount: utils.ToAmount(raw.Amount),
			Date:   utils.ParseOptionalDate(raw.Date),
			Memo:   raw.Memo,
		})
	}

	return extras
}
