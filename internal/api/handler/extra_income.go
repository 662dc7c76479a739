package handler

import (
	"net/http"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/managing"
	"github.com/sujin-dev/revu-manager-api/pkg/apiErrors"
)

func ListExtraIncomes(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		extras, err := service.ListExtraIncomes(userID)
		if err != nil {
			handleManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extras)
	}
}

func CreateExtraIncome(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		var record domain.RawExtraIncomeRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		created, err := service.CreateExtraIncome(userID, &record)
		if err != nil {
			handleManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func DeleteExtraIncome(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		extraIncomeID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid extra income id", nil)
			return
		}

		if err := service.DeleteExtraIncome(userID, extraIncomeID); err != nil {
			handleManagingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
