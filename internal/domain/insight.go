package domain

import "fmt"

// DefaultDatePreset é a janela temporal usada quando nenhuma é informada
const DefaultDatePreset = "last_7d"

// InsightFilters define a janela temporal da consulta: ou um preset nomeado
// da Graph API (last_7d, last_14d, last_30d, maximum...) ou um intervalo
// explícito since/until no formato YYYY-MM-DD
type InsightFilters struct {
	DatePreset string
	Since      string
	Until      string
}

// HasCustomRange indica se um intervalo explícito foi informado
func (f *InsightFilters) HasCustomRange() bool {
	return f.Since != "" && f.Until != ""
}

// PeriodLabel é o rótulo do período exibido no prompt e na resposta
func (f *InsightFilters) PeriodLabel() string {
	if f.HasCustomRange() {
		return fmt.Sprintf("%s até %s", f.Since, f.Until)
	}
	if f.DatePreset != "" {
		return f.DatePreset
	}
	return DefaultDatePreset
}
