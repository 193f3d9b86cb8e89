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

// AnalyzeGet atende a análise via query string, sem histórico de conversa
func AnalyzeGet(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, ok := filtersFromQuery(w, r)
		if !ok {
			return
		}

		req := &domain.AnalyzeRequest{
			UserMessage:      r.URL.Query().Get("user_message"),
			DatePreset:       filters.DatePreset,
			Since:            filters.Since,
			Until:            filters.Until,
			IncludeCampaigns: r.URL.Query().Get("include_campaigns") == "true",
		}

		runAnalysis(w, r, service, req)
	})
}

// AnalyzePost atende a análise interativa, com histórico e níveis explícitos
func AnalyzePost(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		if err := utils.ValidateDate(req.Since); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since inválido: use YYYY-MM-DD", nil)
			return
		}
		if err := utils.ValidateDate(req.Until); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "until inválido: use YYYY-MM-DD", nil)
			return
		}

		runAnalysis(w, r, service, &req)
	})
}

func runAnalysis(w http.ResponseWriter, r *http.Request, service analyzing.Analyzer, req *domain.AnalyzeRequest) {
	logger := log.ForContext(r.Context())

	logger.WithFields(log.Fields{
		"date_preset":       req.DatePreset,
		"history_messages":  len(req.Messages),
		"include_campaigns": req.IncludeCampaigns,
	}).Info("analyze: analysis requested")

	resp, err := service.Analyze(r.Context(), req)
	if err != nil {
		logger.WithError(err).Error("analyze: analysis failed")
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.WithError(err).Error("analyze: failed to encode response")
	}
}
