package domain

import (
	"fmt"
	"time"
)

// MonthKeyOf formats a date as the canonical year-month key used across the
// statistics engine. The yyyy-mm layout sorts chronologically as a string.
func MonthKeyOf(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// PeriodSelector is the active reporting window: one calendar month or all
// time. The zero value selects all time.
type PeriodSelector struct {
	year  int
	month time.Month
}

// AllTime selects the unfiltered full history.
func AllTime() PeriodSelector {
	return PeriodSelector{}
}

// MonthOf selects one calendar month.
func MonthOf(year int, month time.Month) PeriodSelector {
	return PeriodSelector{year: year, month: month}
}

// IsAllTime reports whether the selector spans the full history.
func (p PeriodSelector) IsAllTime() bool {
	return p.year == 0
}

// Contains reports whether a date falls inside the selected month, comparing
// year and month only. An all-time selector contains every date.
func (p PeriodSelector) Contains(t time.Time) bool {
	if p.IsAllTime() {
		return true
	}
	return t.Year() == p.year && t.Month() == p.month
}

// MonthKey returns the selected month's canonical key, or "" for all time.
func (p PeriodSelector) MonthKey() string {
	if p.IsAllTime() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}

func (p PeriodSelector) String() string {
	if p.IsAllTime() {
		return "all"
	}
	return p.MonthKey()
}
