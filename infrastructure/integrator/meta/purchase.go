package meta

import (
	"strings"

	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
)

// purchasePriority é a ordem de preferência entre atribuições de compra que
// se sobrepõem. Quando mais de um desses tipos está presente, usar apenas o
// primeiro evita contagem dupla
var purchasePriority = []string{
	"omni_purchase",
	"offsite_conversion.fb_pixel_purchase",
	"offsite_conversion.purchase",
	"onsite_conversion.purchase",
	"fb_pixel_purchase",
	"purchase",
}

// Tipos aceitos pelo predicado de compra, além dos sufixos
// ".purchase"/"_purchase"
var purchaseAllowed = map[string]struct{}{
	"purchase":                             {},
	"fb_pixel_purchase":                    {},
	"offsite_conversion.purchase":          {},
	"offsite_conversion.fb_pixel_purchase": {},
	"onsite_conversion.purchase":           {},
	"omni_purchase":                        {},
}

func isPurchaseType(actionType string) bool {
	at := strings.ToLower(actionType)
	if _, ok := purchaseAllowed[at]; ok {
		return true
	}
	return strings.HasSuffix(at, ".purchase") || strings.HasSuffix(at, "_purchase")
}

// resolvePurchaseAmount escolhe o valor de compra entre as entradas de ação:
// primeiro tenta a lista de prioridade; se nenhum tipo preferido existir,
// soma todas as entradas que casam com o predicado. A soma pode contar duas
// vezes atribuições sobrepostas de origens de rastreamento diferentes;
// comportamento mantido do pipeline original
func resolvePurchaseAmount(entries []metadomain.ActionEntry) float64 {
	byType := make(map[string]string, len(entries))
	for _, e := range entries {
		byType[strings.ToLower(e.ActionType)] = e.Value
	}

	for _, t := range purchasePriority {
		if v, ok := byType[t]; ok {
			return toFloat(v)
		}
	}

	total := 0.0
	for _, e := range entries {
		if isPurchaseType(e.ActionType) {
			total += toFloat(e.Value)
		}
	}

	return total
}

func pickPurchaseCount(actions []metadomain.ActionEntry) int {
	return int(resolvePurchaseAmount(actions))
}

func pickPurchaseValue(actionValues []metadomain.ActionEntry) float64 {
	return resolvePurchaseAmount(actionValues)
}
