package metaclient

import (
	"context"
	"net/http"

	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	// FetchInsights busca os insights da conta no nível solicitado, seguindo
	// a paginação até o fim e retornando todas as linhas na ordem do servidor
	FetchInsights(ctx context.Context, level domain.Level, filters *domain.InsightFilters) ([]metadomain.InsightRow, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Meta.Timeout,
		},
	}
}
