package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

func TestFilterByPeriod_monthSelection(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{ID: 1, VisitDate: datePtr(2026, 8, 4)},
		{ID: 2, DeadlineDate: datePtr(2026, 8, 31)},
		{ID: 3, VisitDate: datePtr(2026, 7, 30)},
		// Visit date wins over deadline: bucketed into July, not August.
		{ID: 4, VisitDate: datePtr(2026, 7, 31), DeadlineDate: datePtr(2026, 8, 2)},
		{ID: 5},
	}
	extras := []*domain.ExtraIncomeRecord{
		{ID: 1, Date: datePtr(2026, 8, 1)},
		{ID: 2, Date: datePtr(2026, 9, 1)},
		{ID: 3},
	}

	gotCampaigns, gotExtras := FilterByPeriod(campaigns, extras, domain.MonthOf(2026, time.August))

	assert.Equal(t, []int{1, 2}, campaignIDs(gotCampaigns))
	assert.Len(t, gotExtras, 1)
	assert.Equal(t, 1, gotExtras[0].ID)
}

func TestFilterByPeriod_allTimeKeepsUndated(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{ID: 1, VisitDate: datePtr(2026, 8, 4)},
		{ID: 2},
	}
	extras := []*domain.ExtraIncomeRecord{
		{ID: 1},
	}

	gotCampaigns, gotExtras := FilterByPeriod(campaigns, extras, domain.AllTime())

	assert.Equal(t, []int{1, 2}, campaignIDs(gotCampaigns))
	assert.Len(t, gotExtras, 1)
}

func TestFilterByPeriod_emptyMonth(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{ID: 1, VisitDate: datePtr(2026, 8, 4)},
	}

	gotCampaigns, gotExtras := FilterByPeriod(campaigns, nil, domain.MonthOf(2031, time.January))

	assert.Empty(t, gotCampaigns)
	assert.Empty(t, gotExtras)
}

func TestFilterByPeriod_returnsCopies(t *testing.T) {
	campaigns := []*domain.CampaignRecord{
		{ID: 1, VisitDate: datePtr(2026, 8, 4)},
	}

	gotCampaigns, _ := FilterByPeriod(campaigns, nil, domain.AllTime())
	gotCampaigns[0] = nil

	assert.NotNil(t, campaigns[0])
}

func campaignIDs(campaigns []*domain.CampaignRecord) []int {
	ids := make([]int, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	return ids
}
