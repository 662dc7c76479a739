package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
)

func TestNormalizeCampaigns(t *testing.T) {
	tests := []struct {
		name     string
		raw      *domain.RawCampaignRecord
		expected *domain.CampaignRecord
	}{
		{
			name: "well formed record passes through",
			raw: &domain.RawCampaignRecord{
				ID:        1,
				Title:     "수분크림 체험단",
				Category:  "뷰티",
				VisitDate: "2026-08-04",
				Benefit:   float64(45000),
				Income:    float64(0),
				Cost:      float64(3000),
			},
			expected: &domain.CampaignRecord{
				ID:        1,
				Title:     "수분크림 체험단",
				Category:  domain.CategoryBeauty,
				VisitDate: datePtr(2026, 8, 4),
				Benefit:   45000,
				Cost:      3000,
			},
		},
		{
			name: "numeric strings are coerced",
			raw: &domain.RawCampaignRecord{
				ID:      2,
				Benefit: "68000",
				Income:  "15000",
				Cost:    "0",
			},
			expected: &domain.CampaignRecord{
				ID:       2,
				Category: domain.CategoryOther,
				Benefit:  68000,
				Income:   15000,
			},
		},
		{
			name: "garbage amounts and dates degrade to zero values",
			raw: &domain.RawCampaignRecord{
				ID:           3,
				Category:     "does-not-exist",
				VisitDate:    "not a date",
				DeadlineDate: "2026-13-45",
				Benefit:      "abc",
				Income:       nil,
				Cost:         true,
			},
			expected: &domain.CampaignRecord{
				ID:       3,
				Category: domain.CategoryOther,
				Cost:     1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCampaigns([]*domain.RawCampaignRecord{tt.raw})

			assert.Len(t, got, 1)
			assert.Equal(t, tt.expected, got[0])
		})
	}
}

func TestNormalizeCampaigns_skipsNilEntries(t *testing.T) {
	got := NormalizeCampaigns([]*domain.RawCampaignRecord{
		nil,
		{ID: 7, Category: "맛집"},
		nil,
	})

	assert.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)
}

func TestNormalizeCampaigns_doesNotMutateInput(t *testing.T) {
	raw := &domain.RawCampaignRecord{ID: 1, Benefit: "45000", Category: "뷰티"}

	NormalizeCampaigns([]*domain.RawCampaignRecord{raw})

	assert.Equal(t, "45000", raw.Benefit)
	assert.Equal(t, "뷰티", raw.Category)
}

func TestNormalizeExtraIncomes(t *testing.T) {
	tests := []struct {
		name     string
		raw      *domain.RawExtraIncomeRecord
		expected *domain.ExtraIncomeRecord
	}{
		{
			name: "title is trimmed but empty title survives",
			raw: &domain.RawExtraIncomeRecord{
				ID:     1,
				Title:  "  블로그 광고  ",
				Amount: float64(120000),
				Date:   "2026-08-01",
			},
			expected: &domain.ExtraIncomeRecord{
				ID:     1,
				Title:  "블로그 광고",
				Amount: 120000,
				Date:   datePtr(2026, 8, 1),
			},
		},
		{
			name: "whitespace only title becomes empty not fallback",
			raw: &domain.RawExtraIncomeRecord{
				ID:     2,
				Title:  "   ",
				Amount: "35000",
			},
			expected: &domain.ExtraIncomeRecord{
				ID:     2,
				Title:  "",
				Amount: 35000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeExtraIncomes([]*domain.RawExtraIncomeRecord{tt.raw})

			assert.Len(t, got, 1)
			assert.Equal(t, tt.expected, got[0])
		})
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
