package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntents(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{
			name:    "mensagem vazia não tem intenção",
			message: "",
			want:    nil,
		},
		{
			name:    "pergunta sobre criativos",
			message: "Quais criativos estão performando melhor?",
			want:    []string{IntentCreatives},
		},
		{
			name:    "pergunta sobre orçamento",
			message: "Como devo distribuir o budget entre as campanhas?",
			want:    []string{IntentBudget, IntentStructure},
		},
		{
			name:    "diagnóstico de queda",
			message: "Por que as vendas tiveram queda essa semana?",
			want:    []string{IntentDiagnosis},
		},
		{
			name:    "lançamento de produto",
			message: "Vou lançar um novo produto, como estruturar?",
			want:    []string{IntentNewOffer, IntentStructure},
		},
		{
			name:    "caixa alta é normalizada",
			message: "ANÁLISE DE CRIATIVOS",
			want:    []string{IntentCreatives},
		},
		{
			name:    "várias intenções mantêm a ordem fixa",
			message: "criativos com queda de orçamento no funil",
			want:    []string{IntentCreatives, IntentBudget, IntentDiagnosis, IntentStructure},
		},
		{
			name:    "sem palavra-chave não há intenção",
			message: "Bom dia, tudo bem?",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntents(tt.message))
		})
	}
}

func TestMentionsAds(t *testing.T) {
	assert.True(t, mentionsAds("melhores anúncios do mês"))
	assert.True(t, mentionsAds("analise os CRIATIVOS"))
	assert.False(t, mentionsAds("como estão as campanhas"))
}

func TestMentionsAdSets(t *testing.T) {
	assert.True(t, mentionsAdSets("qual conjunto escalar"))
	assert.True(t, mentionsAdSets("o adset de retargeting"))
	assert.False(t, mentionsAdSets("visão geral da conta"))
}
