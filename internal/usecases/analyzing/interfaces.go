package analyzing

import (
	"context"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/analyzer.go -package=mocks

// Analyzer é a interface exposta para a camada HTTP
type Analyzer interface {
	// GetMetrics busca e normaliza os insights de um nível para o período
	GetMetrics(ctx context.Context, level domain.Level, filters *domain.InsightFilters) ([]domain.AdMetricsRecord, error)

	// Analyze executa o fluxo completo: busca por nível, normalização,
	// montagem do prompt, geração pelo modelo e sanitização do texto
	Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalyzeResponse, error)
}
