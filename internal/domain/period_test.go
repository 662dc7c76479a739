package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKeyOf(t *testing.T) {
	assert.Equal(t, "2026-08", MonthKeyOf(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01", MonthKeyOf(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "0999-12", MonthKeyOf(time.Date(999, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodSelector(t *testing.T) {
	allTime := AllTime()
	august := MonthOf(2026, time.August)

	assert.True(t, allTime.IsAllTime())
	assert.False(t, august.IsAllTime())

	assert.Equal(t, "", allTime.MonthKey())
	assert.Equal(t, "2026-08", august.MonthKey())

	assert.Equal(t, "all", allTime.String())
	assert.Equal(t, "2026-08", august.String())
}

func TestPeriodSelector_Contains(t *testing.T) {
	august := MonthOf(2026, time.August)

	assert.True(t, august.Contains(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, august.Contains(time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, august.Contains(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, august.Contains(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)))

	assert.True(t, AllTime().Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBucketingDate(t *testing.T) {
	visit := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	both := &CampaignRecord{VisitDate: &visit, DeadlineDate: &deadline}
	assert.Equal(t, &visit, both.BucketingDate())

	deadlineOnly := &CampaignRecord{DeadlineDate: &deadline}
	assert.Equal(t, &deadline, deadlineOnly.BucketingDate())

	undated := &CampaignRecord{}
	assert.Nil(t, undated.BucketingDate())
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, CategoryBeauty, NormalizeCategory("뷰티"))
	assert.Equal(t, CategoryOther, NormalizeCategory("기타"))
	assert.Equal(t, CategoryOther, NormalizeCategory(""))
	assert.Equal(t, CategoryOther, NormalizeCategory("존재하지 않는 카테고리"))
	assert.Equal(t, CategoryOther, NormalizeCategory("beauty"))
}
