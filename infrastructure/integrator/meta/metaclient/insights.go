package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Campos de identificação incluídos conforme o nível solicitado
var levelFields = map[domain.Level][]string{
	domain.LevelCampaign: {"campaign_id", "campaign_name"},
	domain.LevelAdSet:    {"adset_id", "adset_name", "campaign_id"},
	domain.LevelAd:       {"ad_id", "ad_name", "adset_id", "campaign_id"},
}

// Métricas comuns a todos os níveis
var commonFields = []string{
	"impressions",
	"clicks",
	"spend",
	"cpm",
	"cpc",
	"ctr",
	"actions",
	"action_values",
}

func (c *MetaClient) FetchInsights(ctx context.Context, level domain.Level, filters *domain.InsightFilters) ([]metadomain.InsightRow, error) {
	if c.Cfg.Meta.AccessToken == "" {
		return nil, domain.ErrMissingMetaAccessToken
	}
	if c.Cfg.Meta.AdAccountID == "" {
		return nil, domain.ErrMissingAdAccountID
	}

	idFields, ok := levelFields[level]
	if !ok {
		return nil, fmt.Errorf("level inválido: %q", level)
	}

	fields := make([]string, 0, len(idFields)+len(commonFields))
	fields = append(fields, idFields...)
	fields = append(fields, commonFields...)

	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	params.Set("level", string(level))
	params.Set("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))
	params.Set("access_token", c.Cfg.Meta.AccessToken)
	// Contar ações por tempo de conversão (alinha com o Ads Manager)
	params.Set("action_report_time", "conversion")
	params.Set("use_unified_attribution_setting", "true")

	if filters.HasCustomRange() {
		params.Set("time_range", fmt.Sprintf(`{"since":%q,"until":%q}`, filters.Since, filters.Until))
	} else {
		preset := filters.DatePreset
		if preset == "" {
			preset = domain.DefaultDatePreset
		}
		params.Set("date_preset", preset)
	}

	requestURL := fmt.Sprintf("%s/act_%s/insights?%s", c.Cfg.Meta.URL, c.Cfg.Meta.AdAccountID, params.Encode())

	allRows := make([]metadomain.InsightRow, 0)
	pages := 0

	// Segue paging.next até esgotar; a URL da próxima página já carrega o
	// token, então nenhum parâmetro é reenviado
	for requestURL != "" {
		page, err := c.fetchPage(ctx, requestURL)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"level": level,
				"page":  pages + 1,
				"error": err.Error(),
			}).Error("insights: failed to fetch insights page")
			return nil, err
		}

		allRows = append(allRows, page.Data...)
		pages++

		requestURL = ""
		if page.Paging != nil {
			requestURL = page.Paging.Next
		}
	}

	logrus.WithFields(logrus.Fields{
		"level": level,
		"rows":  len(allRows),
		"pages": pages,
	}).Debug("insights: fetched all insight rows")

	return allRows, nil
}

func (c *MetaClient) fetchPage(ctx context.Context, requestURL string) (*metadomain.InsightsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	var page metadomain.InsightsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		// Corpo ilegível com status de erro ainda vira APIError
		if resp.StatusCode != http.StatusOK {
			return nil, metadomain.NewAPIError(resp.StatusCode, nil)
		}
		return nil, errors.Wrap(err, "erro ao decodificar JSON")
	}

	if resp.StatusCode != http.StatusOK || page.Error != nil {
		return nil, metadomain.NewAPIError(resp.StatusCode, page.Error)
	}

	return &page, nil
}
