package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sujin-dev/revu-manager-api/internal/domain"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/managing"
	"github.com/sujin-dev/revu-manager-api/pkg/apiErrors"
	"github.com/sujin-dev/revu-manager-api/pkg/middleware"
)

// currentUserID resolves the authenticated user from the request context.
func currentUserID(r *http.Request) (int, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// pathID parses the :id segment of the route.
func pathID(r *http.Request) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(raw)
}

func ListCampaigns(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		campaigns, err := service.ListCampaigns(userID)
		if err != nil {
			logrus.WithError(err).Error("failed to list campaigns")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "failed to list campaigns", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaigns)
	}
}

func CreateCampaign(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		var record domain.RawCampaignRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		created, err := service.CreateCampaign(userID, &record)
		if err != nil {
			handleManagingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateCampaign(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		campaignID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid campaign id", nil)
			return
		}

		var record domain.RawCampaignRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		record.ID = campaignID

		if err := service.UpdateCampaign(userID, &record); err != nil {
			handleManagingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteCampaign(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		campaignID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid campaign id", nil)
			return
		}

		if err := service.DeleteCampaign(userID, campaignID); err != nil {
			handleManagingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleManagingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, managing.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "campaign not found", nil)

	case errors.Is(err, managing.ErrExtraIncomeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrExtraIncomeNotFound, "extra income not found", nil)

	case errors.Is(err, managing.ErrMissingTitle):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "title is required", nil)

	default:
		logrus.WithError(err).Error("campaign management failure")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "operation failed", nil)
	}
}
