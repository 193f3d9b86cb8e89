package analyzing

import "strings"

// Classificação grosseira da pergunta do usuário em intenções, usada para
// escolher o estilo narrativo da análise e para decidir quais níveis buscar
const (
	IntentCreatives = "analise_criativos"
	IntentBudget    = "alocacao_orcamento"
	IntentDiagnosis = "diagnostico"
	IntentNewOffer  = "novo_produto"
	IntentStructure = "estrutura"
)

var intentKeywords = []struct {
	tag      string
	keywords []string
}{
	{IntentCreatives, []string{"criativo", "criativos", "anuncio", "anúncio", "ads"}},
	{IntentBudget, []string{"orçamento", "budget", "gastar", "investir", "escala"}},
	{IntentDiagnosis, []string{"problema", "cairam", "queda", "troubleshooting"}},
	{IntentNewOffer, []string{"novo produto", "novos produtos", "lançar", "lançamento", "go to market"}},
	{IntentStructure, []string{"estrutura", "funnel", "funil", "campanhas", "conjuntos"}},
}

// DetectIntents extrai as intenções da pergunta, na ordem fixa acima
func DetectIntents(message string) []string {
	if message == "" {
		return nil
	}

	t := strings.ToLower(message)

	var intents []string
	for _, group := range intentKeywords {
		for _, k := range group.keywords {
			if strings.Contains(t, k) {
				intents = append(intents, group.tag)
				break
			}
		}
	}

	return intents
}

var adLevelKeywords = []string{"criativo", "criativos", "anuncio", "anúncio", "ads"}
var adSetLevelKeywords = []string{"conjunto", "conjuntos", "adset"}

func mentionsAds(message string) bool {
	return containsAny(strings.ToLower(message), adLevelKeywords)
}

func mentionsAdSets(message string) bool {
	return containsAny(strings.ToLower(message), adSetLevelKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
