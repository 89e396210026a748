package handler

import (
	"net/http"

	"github.com/vfg2006/sales-comparison-api/internal/api/handler/router"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/session"
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

func Sessions(manager session.Manager, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(manager),
		},
		{
			Path:    "/v1/sessions/:id",
			Method:  http.MethodGet,
			Handler: GetSession(manager),
		},
		{
			Path:    "/v1/sessions/:id/dataset",
			Method:  http.MethodPost,
			Handler: UploadDataset(manager, maxUploadBytes),
		},
		{
			Path:    "/v1/sessions/:id/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(manager),
		},
		{
			Path:    "/v1/sessions/:id/products",
			Method:  http.MethodGet,
			Handler: ListProducts(manager),
		},
		{
			Path:    "/v1/sessions/:id/products",
			Method:  http.MethodPut,
			Handler: ConfirmProducts(manager),
		},
		{
			Path:    "/v1/sessions/:id/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(manager),
		},
		{
			Path:    "/v1/sessions/:id/ranges",
			Method:  http.MethodPut,
			Handler: ChooseRanges(manager),
		},
		{
			Path:    "/v1/sessions/:id/ranges/confirm",
			Method:  http.MethodPost,
			Handler: ConfirmRanges(manager),
		},
		{
			Path:    "/v1/sessions/:id/comparison",
			Method:  http.MethodGet,
			Handler: GetComparison(manager),
		},
		{
			Path:    "/v1/sessions/:id/trends/daily",
			Method:  http.MethodGet,
			Handler: GetDailyTrends(manager),
		},
		{
			Path:    "/v1/sessions/:id/trends/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrends(manager),
		},
		{
			Path:    "/v1/sessions/:id/export",
			Method:  http.MethodGet,
			Handler: ExportComparison(manager),
		},
	}
}

func Datasets(cache DatasetStatusProvider, refresher DatasetRefresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/status",
			Method:  http.MethodGet,
			Handler: DatasetStatus(cache, refresher),
		},
		{
			Path:    "/v1/datasets/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDataset(cache, refresher),
		},
	}
}
