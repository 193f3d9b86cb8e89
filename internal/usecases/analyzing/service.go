package analyzing

import (
	"context"
	"strings"

	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/pkg/log"
	"github.com/vfg2006/ads-analyzer-api/pkg/utils"
)

type Service struct {
	cfg         *config.Config
	meta        metaclient.Client
	completions openaiclient.Client
}

func NewService(cfg *config.Config, metaClient metaclient.Client, completions openaiclient.Client) Analyzer {
	return &Service{
		cfg:         cfg,
		meta:        metaClient,
		completions: completions,
	}
}

// GetMetrics busca, normaliza e valida os registros de um nível
func (s *Service) GetMetrics(ctx context.Context, level domain.Level, filters *domain.InsightFilters) ([]domain.AdMetricsRecord, error) {
	rows, err := s.meta.FetchInsights(ctx, level, filters)
	if err != nil {
		return nil, err
	}

	records := meta.Normalize(rows, level)
	for i := range records {
		if err := records[i].Validate(); err != nil {
			log.ForContext(ctx).WithError(err).WithField("level", level).
				Error("analyze: normalized record failed validation")
			return nil, err
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"level":   level,
		"records": len(records),
	}).Info("analyze: metrics fetched and normalized")

	return records, nil
}

// Analyze executa o fluxo completo: resolve os níveis a buscar a partir da
// pergunta, coleta as métricas, monta o prompt, gera a análise e sanitiza o
// texto final
func (s *Service) Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	filters := &domain.InsightFilters{
		DatePreset: req.DatePreset,
		Since:      req.Since,
		Until:      req.Until,
	}
	if !filters.HasCustomRange() && filters.DatePreset == "" {
		filters.DatePreset = domain.DefaultDatePreset
	}

	levels := s.resolveLevels(req)

	byLevel := make(map[domain.Level][]domain.AdMetricsRecord, len(levels))
	for _, level := range levels {
		records, err := s.GetMetrics(ctx, level, filters)
		if err != nil {
			// Qualquer nível com falha aborta a análise inteira; análise
			// parcial sobre dados incompletos engana mais do que ajuda
			return nil, err
		}
		byLevel[level] = records
	}

	intents := DetectIntents(req.UserMessage)

	query := req.UserMessage
	if len(intents) > 0 {
		query = query + "\n\nIntenção detectada: " + strings.Join(intents, ", ")
	}

	prompt := BuildPrompt(PromptInput{
		Campaigns:   byLevel[domain.LevelCampaign],
		AdSets:      byLevel[domain.LevelAdSet],
		Ads:         byLevel[domain.LevelAd],
		UserQuery:   query,
		PeriodLabel: filters.PeriodLabel(),
		Intents:     intents,
	})

	raw, err := s.completions.Complete(ctx, prompt, req.Messages)
	if err != nil {
		return nil, err
	}

	analysisID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	resp := &domain.AnalyzeResponse{
		AnalysisID:  analysisID,
		Analysis:    SanitizeAnalysis(raw),
		PeriodLabel: filters.PeriodLabel(),
	}
	if req.IncludeCampaigns {
		resp.Campaigns = byLevel[domain.LevelCampaign]
		resp.AdSets = byLevel[domain.LevelAdSet]
		resp.Ads = byLevel[domain.LevelAd]
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"analysis_id": resp.AnalysisID,
		"period":      resp.PeriodLabel,
		"intents":     intents,
	}).Info("analyze: analysis generated")

	return resp, nil
}

// resolveLevels decide quais níveis buscar: a lista explícita do cliente tem
// precedência; sem ela, a pergunta é inspecionada por menções a anúncios ou
// conjuntos, e na ausência de pistas os três níveis são buscados
func (s *Service) resolveLevels(req *domain.AnalyzeRequest) []domain.Level {
	if len(req.IncludeLevels) > 0 {
		var levels []domain.Level
		for _, raw := range req.IncludeLevels {
			if level, err := domain.ParseLevel(raw); err == nil {
				levels = append(levels, level)
			}
		}
		if len(levels) > 0 {
			return levels
		}
	}

	if req.UserMessage != "" {
		if mentionsAds(req.UserMessage) {
			return []domain.Level{domain.LevelCampaign, domain.LevelAdSet, domain.LevelAd}
		}
		if mentionsAdSets(req.UserMessage) {
			return []domain.Level{domain.LevelCampaign, domain.LevelAdSet}
		}
	}

	return domain.AllLevels
}
