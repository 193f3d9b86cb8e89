package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/ads-analyzer-api/pkg/log"
	"github.com/vfg2006/ads-analyzer-api/pkg/utils"
)

// GetMetrics atende os endpoints de métricas normalizadas de um nível
// (campanhas, conjuntos ou anúncios)
func GetMetrics(service analyzing.Analyzer, level domain.Level) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := filtersFromQuery(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"level":  level,
			"period": filters.PeriodLabel(),
		}).Info("metrics: fetching normalized insights")

		records, err := service.GetMetrics(r.Context(), level, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"level": level,
				"error": err.Error(),
			}).Error("metrics: failed to fetch insights")

			writeDomainError(w, err)
			return
		}

		resp := domain.MetricsResponse{DatePreset: filters.PeriodLabel()}
		switch level {
		case domain.LevelCampaign:
			resp.Campaigns = records
		case domain.LevelAdSet:
			resp.AdSets = records
		case domain.LevelAd:
			resp.Ads = records
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
		}
	})
}

// filtersFromQuery monta os filtros temporais a partir da query string,
// validando o formato das datas. Retorna ok=false após escrever o erro
func filtersFromQuery(w http.ResponseWriter, r *http.Request) (*domain.InsightFilters, bool) {
	since := r.URL.Query().Get("since")
	until := r.URL.Query().Get("until")

	if err := utils.ValidateDate(since); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since inválido: use YYYY-MM-DD", nil)
		return nil, false
	}
	if err := utils.ValidateDate(until); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "until inválido: use YYYY-MM-DD", nil)
		return nil, false
	}

	filters := &domain.InsightFilters{
		DatePreset: r.URL.Query().Get("date_preset"),
		Since:      since,
		Until:      until,
	}
	if !filters.HasCustomRange() && filters.DatePreset == "" {
		filters.DatePreset = domain.DefaultDatePreset
	}

	return filters, true
}
