package meta

import (
	"strconv"

	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/pkg/utils"
)

// DefaultName é o rótulo usado quando a API não retorna nome
const DefaultName = "(sem nome)"

// LevelDescriptor parametriza a normalização por nível: quais campos de
// identificação copiar e o rótulo usado quando o nome está ausente. A lógica
// numérica e a resolução de compras são idênticas para os três níveis
type LevelDescriptor struct {
	DefaultName string
	CopyIdent   func(rec *domain.AdMetricsRecord, row *metadomain.InsightRow, defaultName string)
}

var levelDescriptors = map[domain.Level]LevelDescriptor{
	domain.LevelCampaign: {
		DefaultName: DefaultName,
		CopyIdent: func(rec *domain.AdMetricsRecord, row *metadomain.InsightRow, defaultName string) {
			rec.CampaignID = row.CampaignID
			rec.CampaignName = orDefault(row.CampaignName, defaultName)
		},
	},
	domain.LevelAdSet: {
		DefaultName: DefaultName,
		CopyIdent: func(rec *domain.AdMetricsRecord, row *metadomain.InsightRow, defaultName string) {
			rec.AdsetID = row.AdsetID
			rec.AdsetName = orDefault(row.AdsetName, defaultName)
			rec.CampaignID = row.CampaignID
		},
	},
	domain.LevelAd: {
		DefaultName: DefaultName,
		CopyIdent: func(rec *domain.AdMetricsRecord, row *metadomain.InsightRow, defaultName string) {
			rec.AdID = row.AdID
			rec.AdName = orDefault(row.AdName, defaultName)
			rec.AdsetID = row.AdsetID
			rec.CampaignID = row.CampaignID
		},
	},
}

// Normalize converte as linhas brutas da Graph API em registros numéricos
// canônicos, um para um, preservando a ordem. Campos malformados ou ausentes
// degradam para zero em vez de abortar a normalização
func Normalize(rows []metadomain.InsightRow, level domain.Level) []domain.AdMetricsRecord {
	desc, ok := levelDescriptors[level]
	if !ok {
		desc = levelDescriptors[domain.LevelCampaign]
	}

	records := make([]domain.AdMetricsRecord, 0, len(rows))
	for i := range rows {
		row := &rows[i]

		impressions := toInt(row.Impressions)
		clicks := toInt(row.Clicks)
		spend := toFloat(row.Spend)
		cpm := toFloat(row.CPM)
		cpc := toFloat(row.CPC)
		ctrRaw := toFloat(row.CTR)

		// Recalcula o CTR em %; o valor reportado pela API só é usado
		// quando o recálculo resulta em zero
		ctrCalc := 0.0
		if impressions > 0 {
			ctrCalc = float64(clicks) / float64(impressions) * 100.0
		}
		ctr := ctrRaw
		if ctrCalc > 0 {
			ctr = ctrCalc
		}

		purchases := pickPurchaseCount(row.Actions)
		purchaseValue := pickPurchaseValue(row.ActionValues)

		roas := 0.0
		if spend > 0 {
			roas = purchaseValue / spend
		}

		rec := domain.AdMetricsRecord{
			Impressions:   impressions,
			Clicks:        clicks,
			Spend:         utils.RoundWithFourDecimalPlace(spend),
			CPM:           utils.RoundWithFourDecimalPlace(cpm),
			CPC:           utils.RoundWithFourDecimalPlace(cpc),
			CTR:           utils.RoundWithFourDecimalPlace(ctr),
			Purchases:     purchases,
			PurchaseValue: utils.RoundWithFourDecimalPlace(purchaseValue),
			ROAS:          utils.RoundWithFourDecimalPlace(roas),
		}
		desc.CopyIdent(&rec, row, desc.DefaultName)

		records = append(records, rec)
	}

	return records
}

func orDefault(name, defaultName string) string {
	if name == "" {
		return defaultName
	}
	return name
}

// toInt converte de forma leniente; a Graph API retorna inteiros como
// strings e ocasionalmente com casas decimais
func toInt(s string) int {
	return int(toFloat(s))
}

func toFloat(s string) float64 {
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return f
}
