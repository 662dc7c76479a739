package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/statistics"
	"github.com/sujin-dev/revu-manager-api/pkg/apiErrors"
)

// periodFromQuery resolves the reporting window from the year and month
// query parameters. Both absent selects all time; both present selects one
// calendar month; anything else is rejected.
func periodFromQuery(r *http.Request) (domain.PeriodSelector, bool) {
	rawYear := r.URL.Query().Get("year")
	rawMonth := r.URL.Query().Get("month")

	if rawYear == "" && rawMonth == "" {
		return domain.AllTime(), true
	}

	if rawYear == "" || rawMonth == "" {
		return domain.PeriodSelector{}, false
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 1 {
		return domain.PeriodSelector{}, false
	}

	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		return domain.PeriodSelector{}, false
	}

	return domain.MonthOf(year, time.Month(month)), true
}

// GetPeriodSummary returns the aggregated statistics for the selected
// reporting window.
func GetPeriodSummary(service statistics.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		selector, ok := periodFromQuery(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod,
				"year and month must be provided together and form a valid month", nil)
			return
		}

		summary, err := service.PeriodSummary(userID, selector)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
				"period":  selector.String(),
			}).Error("failed to compute period summary")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to compute summary", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetMonthlyGrowth returns the month-by-month trend series across the user's
// full history.
func GetMonthlyGrowth(service statistics.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		selector, ok := periodFromQuery(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod,
				"year and month must be provided together and form a valid month", nil)
			return
		}

		buckets, err := service.MonthlyGrowth(userID, selector)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
				"period":  selector.String(),
			}).Error("failed to compute growth series")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to compute growth series", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(buckets)
	}
}
