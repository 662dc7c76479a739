package handler

import (
	"net/http"

	"github.com/sujin-dev/revu-manager-api/internal/api/handler/router"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/authenticating"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/managing"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/statistics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Campaigns(service managing.CampaignManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
	}
}

func ExtraIncomes(service managing.CampaignManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/extra-incomes",
			Method:  http.MethodGet,
			Handler: ListExtraIncomes(service),
		},
		{
			Path:    "/v1/extra-incomes",
			Method:  http.MethodPost,
			Handler: CreateExtraIncome(service),
		},
		{
			Path:    "/v1/extra-incomes/:id",
			Method:  http.MethodDelete,
			Handler: DeleteExtraIncome(service),
		},
	}
}

func Statistics(service statistics.Provider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/statistics/summary",
			Method:  http.MethodGet,
			Handler: GetPeriodSummary(service),
		},
		{
			Path:    "/v1/statistics/growth",
			Method:  http.MethodGet,
			Handler: GetMonthlyGrowth(service),
		},
	}
}
