package handler

import (
	"net/http"

	"github.com/vfg2006/ads-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/analyzing"
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

func Metrics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/campaigns",
			Method:  http.MethodGet,
			Handler: GetMetrics(service, domain.LevelCampaign),
		},
		{
			Path:    "/v1/meta/adsets",
			Method:  http.MethodGet,
			Handler: GetMetrics(service, domain.LevelAdSet),
		},
		{
			Path:    "/v1/meta/ads",
			Method:  http.MethodGet,
			Handler: GetMetrics(service, domain.LevelAd),
		},
	}
}

func Analyze(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/analyze",
			Method:  http.MethodGet,
			Handler: AnalyzeGet(service),
		},
		{
			Path:    "/v1/meta/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzePost(service),
		},
	}
}
