package analyzing

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/pkg/utils"
)

// PromptInput reúne tudo que entra na montagem do prompt de análise
type PromptInput struct {
	Campaigns   []domain.AdMetricsRecord
	AdSets      []domain.AdMetricsRecord
	Ads         []domain.AdMetricsRecord
	UserQuery   string
	PeriodLabel string
	Intents     []string
}

const (
	noData       = "(sem dados)"
	noHighlights = "(sem destaques)"
	noStats      = "(sem estatísticas)"
	noneLabel    = "Nenhum dado disponível no período."
)

// Regras de fundamentação fixas: o modelo só pode usar o que está no prompt
const groundingRules = "Regras de fundamentação (obrigatórias):\n" +
	"- Use apenas os dados fornecidos nas seções abaixo. Não invente números, nomes ou resultados.\n" +
	"- Se alguma informação não estiver presente, diga 'Sem dados suficientes' e explique o que falta.\n" +
	"- Ao listar itens, inclua nome e ID (quando disponíveis) e as métricas exatas usadas (ex.: ROAS, compras, CTR, spend).\n" +
	"- Prefira valores com 2 casas decimais; não arredonde ao ponto de distorcer.\n" +
	"- Priorize o nível solicitado pela pergunta (Anúncios → Conjuntos → Campanhas).\n"

const outputFormat = "Formato de saída (siga estritamente):\n" +
	"1) Resposta direta (duas a três linhas) — responda exatamente o que foi perguntado.\n" +
	"2) Evidências (bullets) — liste até 5 itens com Nome/ID e métricas usadas.\n" +
	"3) Ações recomendadas (bullets) — passos objetivos e acionáveis.\n" +
	"4) Riscos/Observações (curto).\n" +
	"5) Próximos passos mensuráveis (bullets).\n"

// Métricas cobertas pelos benchmarks p25/p50/p75
var statsMetrics = []string{"roas", "purchases", "purchase_value", "ctr", "cpc", "spend"}

// Colunas base por nível, na ordem de saída do CSV
var baseColumns = map[domain.Level][]string{
	domain.LevelCampaign: {"campaign_id", "campaign_name", "impressions", "clicks", "spend", "cpm", "cpc", "ctr", "purchases", "purchase_value", "roas"},
	domain.LevelAdSet:    {"adset_id", "adset_name", "campaign_id", "impressions", "clicks", "spend", "cpm", "cpc", "ctr", "purchases", "purchase_value", "roas"},
	domain.LevelAd:       {"ad_id", "ad_name", "adset_id", "campaign_id", "impressions", "clicks", "spend", "cpm", "cpc", "ctr", "purchases", "purchase_value", "roas"},
}

// BuildPrompt monta o prompt de análise. Para entradas iguais a saída é
// idêntica byte a byte: nada aqui depende de relógio ou aleatoriedade
func BuildPrompt(in PromptInput) string {
	type levelData struct {
		level   domain.Level
		label   string
		records []domain.AdMetricsRecord
	}

	levels := []levelData{
		{domain.LevelCampaign, "Campanhas", in.Campaigns},
		{domain.LevelAdSet, "Conjuntos", in.AdSets},
		{domain.LevelAd, "Anúncios", in.Ads},
	}

	// (c) disponibilidade de dados: linhas e colunas por nível presente
	var summaryLines []string
	for _, ld := range levels {
		if len(ld.records) == 0 {
			continue
		}
		summaryLines = append(summaryLines, fmt.Sprintf("%s: %d linhas • colunas: %s",
			ld.label, len(ld.records), strings.Join(baseColumns[ld.level], ", ")))
	}
	availability := noneLabel
	if len(summaryLines) > 0 {
		availability = strings.Join(summaryLines, "\n")
	}

	// (d) benchmarks por nível
	var statsBlocks []string
	for _, ld := range levels {
		if len(ld.records) == 0 {
			continue
		}
		statsBlocks = append(statsBlocks, statsBlock(ld.label, ld.records))
	}
	statsText := noStats
	if len(statsBlocks) > 0 {
		statsText = strings.Join(statsBlocks, "\n")
	}

	// (e) destaques: top 5 por ROAS em todos os níveis; anúncios ganham
	// também rankings por compras e por CTR
	var highlightsParts []string
	if len(in.Campaigns) > 0 {
		highlightsParts = append(highlightsParts, "[Top Campanhas por ROAS]\n"+
			topN(in.Campaigns, "roas", 5, []string{"campaign_name", "campaign_id", "roas", "purchase_value", "purchases", "ctr", "cpc", "spend"}))
	}
	if len(in.AdSets) > 0 {
		highlightsParts = append(highlightsParts, "[Top Conjuntos por ROAS]\n"+
			topN(in.AdSets, "roas", 5, []string{"adset_name", "adset_id", "campaign_id", "roas", "purchase_value", "purchases", "ctr", "cpc", "spend"}))
	}
	if len(in.Ads) > 0 {
		highlightsParts = append(highlightsParts, "[Top Anúncios por ROAS]\n"+
			topN(in.Ads, "roas", 5, []string{"ad_name", "ad_id", "adset_id", "campaign_id", "roas", "purchase_value", "purchases", "ctr", "cpc", "spend"}))
		highlightsParts = append(highlightsParts, "[Top Anúncios por Compras]\n"+
			topN(in.Ads, "purchases", 5, []string{"ad_name", "ad_id", "purchases", "purchase_value", "roas", "ctr", "cpc", "spend"}))
		highlightsParts = append(highlightsParts, "[Top Anúncios por CTR]\n"+
			topN(in.Ads, "ctr", 5, []string{"ad_name", "ad_id", "ctr", "roas", "purchases", "spend"}))
	}
	highlights := noHighlights
	if len(highlightsParts) > 0 {
		highlights = strings.Join(highlightsParts, "\n\n")
	}

	// (f) dados completos com colunas derivadas de participação
	var csvSections []string
	if len(in.Campaigns) > 0 {
		csvSections = append(csvSections, "[Campanhas]\n"+dataTable(in.Campaigns, domain.LevelCampaign))
	}
	if len(in.AdSets) > 0 {
		csvSections = append(csvSections, "[Conjuntos]\n"+dataTable(in.AdSets, domain.LevelAdSet))
	}
	if len(in.Ads) > 0 {
		csvSections = append(csvSections, "[Anúncios]\n"+dataTable(in.Ads, domain.LevelAd))
	}
	csvView := noData
	if len(csvSections) > 0 {
		csvView = strings.Join(csvSections, "\n\n")
	}

	// (a) bloco de instruções: persona + regras + estilo por intenção + formato
	instructions := "Contexto: Você é um analista de mídia focado em Meta Ads.\n" +
		groundingRules + "\n" +
		"Evite clichês e conselhos genéricos. Não repita frases. Adapte o formato ao objetivo da pergunta.\n" +
		styleDirective(in.Intents) + "\n" +
		outputFormat

	periodSection := ""
	if in.PeriodLabel != "" {
		periodSection = fmt.Sprintf("Período analisado: %s\n", in.PeriodLabel)
	}
	userSection := ""
	if in.UserQuery != "" {
		userSection = fmt.Sprintf("\nPergunta do usuário: %s\n", in.UserQuery)
	}

	return instructions + "\n" + periodSection + userSection + "\n" +
		"Disponibilidade de dados:\n" + availability + "\n\n" +
		"Benchmarks (p25/p50/p75):\n" + statsText + "\n\n" +
		"Destaques calculados:\n" + highlights + "\n\n" +
		"Dados completos (CSV):\n" + csvView + "\n"
}

// styleDirective escolhe o modo de resposta conforme as intenções detectadas
func styleDirective(intents []string) string {
	var guidance []string

	if intentsContainAny(intents, IntentCreatives, "creative_strategy", "criativos") {
		guidance = append(guidance, "Modo: Relatório de criativos — comece listando os 3–5 melhores anúncios por objetivo (ROAS, compras, CTR), depois insights sobre padrões de criativos (formato, ângulos, hooks) e um plano de teste A/B multivariado (3 hipóteses).")
	}
	if intentsContainAny(intents, IntentBudget, "budget_plan", "escala", "growth") {
		guidance = append(guidance, "Modo: Plano de orçamento — traga uma tabela (texto) de realocação com campanha/conjunto/anúncio, spend_share atual → sugerido, e justificativa breve; finalize com regras automáticas (limiares de pausa/escala).")
	}
	if intentsContainAny(intents, IntentDiagnosis, "troubleshooting", "queda") {
		guidance = append(guidance, "Modo: Diagnóstico — destaque quedas versus mediana (p50) e aponte 3 causas prováveis por nível, com passos de correção imediatos.")
	}
	if intentsContainAny(intents, IntentNewOffer, "go_to_market", IntentStructure, "funnel", "funil") {
		guidance = append(guidance, "Modo: Go-to-market — proponha estrutura Prospecting/Retargeting/Retention, com metas de CTR/CPC/ROAS e orçamentos iniciais proporcionais; inclua timeline de 2 semanas com checkpoints.")
	}
	if len(guidance) == 0 {
		guidance = append(guidance, "Modo: Responda de forma específica para a pergunta do usuário, sem formato fixo, escolhendo o estilo mais adequado (lista, passos, mini-tabela, ou plano).")
	}

	return strings.Join(guidance, "\n")
}

func intentsContainAny(intents []string, wanted ...string) bool {
	for _, i := range intents {
		for _, w := range wanted {
			if i == w {
				return true
			}
		}
	}
	return false
}

// statsBlock formata os quartis p25/p50/p75 das métricas de um nível
func statsBlock(label string, records []domain.AdMetricsRecord) string {
	if len(records) == 0 {
		return fmt.Sprintf("[%s Stats]\n%s", label, noData)
	}

	parts := []string{fmt.Sprintf("[%s Stats]", label)}
	for _, m := range statsMetrics {
		values := make([]float64, 0, len(records))
		for i := range records {
			values = append(values, metricValue(&records[i], m))
		}
		q25 := quantile(values, 0.25)
		med := quantile(values, 0.50)
		q75 := quantile(values, 0.75)
		parts = append(parts, fmt.Sprintf("- %s: p25=%.2f · p50=%.2f · p75=%.2f", m, q25, med, q75))
	}

	return strings.Join(parts, "\n")
}

// quantile calcula o percentil por interpolação linear sobre os valores
// ordenados
func quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// topN retorna um CSV com os n melhores registros pela métrica, em ordem
// decrescente
func topN(records []domain.AdMetricsRecord, by string, n int, columns []string) string {
	if len(records) == 0 {
		return noData
	}

	sorted := sortedByMetricDesc(records, by)
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	var b strings.Builder
	writeCSVRow(&b, columns)
	for i := range sorted {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, cellValue(&sorted[i], col))
		}
		writeCSVRow(&b, row)
	}

	return b.String()
}

// dataTable gera o CSV completo de um nível, acrescentando as colunas
// derivadas spend_share e rev_share (percentual sobre o total do nível) e
// ordenando por ROAS decrescente
func dataTable(records []domain.AdMetricsRecord, level domain.Level) string {
	columns := append(append([]string{}, baseColumns[level]...), "spend_share", "rev_share")

	totalSpend := 0.0
	totalRevenue := 0.0
	for i := range records {
		totalSpend += records[i].Spend
		totalRevenue += records[i].PurchaseValue
	}
	// Evita divisão por zero quando não houve gasto/receita no período
	if totalSpend == 0 {
		totalSpend = 1.0
	}
	if totalRevenue == 0 {
		totalRevenue = 1.0
	}

	sorted := sortedByMetricDesc(records, "roas")

	var b strings.Builder
	writeCSVRow(&b, columns)
	for i := range sorted {
		rec := &sorted[i]
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			switch col {
			case "spend_share":
				row = append(row, formatFloat(utils.RoundWithFourDecimalPlace(rec.Spend/totalSpend*100)))
			case "rev_share":
				row = append(row, formatFloat(utils.RoundWithFourDecimalPlace(rec.PurchaseValue/totalRevenue*100)))
			default:
				row = append(row, cellValue(rec, col))
			}
		}
		writeCSVRow(&b, row)
	}

	return b.String()
}

// sortedByMetricDesc devolve uma cópia ordenada de forma estável, para que
// empates preservem a ordem de chegada do servidor
func sortedByMetricDesc(records []domain.AdMetricsRecord, metric string) []domain.AdMetricsRecord {
	sorted := make([]domain.AdMetricsRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metricValue(&sorted[i], metric) > metricValue(&sorted[j], metric)
	})
	return sorted
}

func metricValue(rec *domain.AdMetricsRecord, metric string) float64 {
	switch metric {
	case "impressions":
		return float64(rec.Impressions)
	case "clicks":
		return float64(rec.Clicks)
	case "spend":
		return rec.Spend
	case "cpm":
		return rec.CPM
	case "cpc":
		return rec.CPC
	case "ctr":
		return rec.CTR
	case "purchases":
		return float64(rec.Purchases)
	case "purchase_value":
		return rec.PurchaseValue
	case "roas":
		return rec.ROAS
	}
	return 0
}

func cellValue(rec *domain.AdMetricsRecord, col string) string {
	switch col {
	case "campaign_id":
		return rec.CampaignID
	case "campaign_name":
		return rec.CampaignName
	case "adset_id":
		return rec.AdsetID
	case "adset_name":
		return rec.AdsetName
	case "ad_id":
		return rec.AdID
	case "ad_name":
		return rec.AdName
	case "impressions":
		return strconv.Itoa(rec.Impressions)
	case "clicks":
		return strconv.Itoa(rec.Clicks)
	case "purchases":
		return strconv.Itoa(rec.Purchases)
	default:
		return formatFloat(metricValue(rec, col))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeCSVRow escreve uma linha CSV com aspas apenas quando a célula exige
// (nomes de campanha podem conter vírgulas)
func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvEscape(cell))
	}
	b.WriteByte('\n')
}

func csvEscape(cell string) string {
	if strings.ContainsAny(cell, ",\"\n") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}
