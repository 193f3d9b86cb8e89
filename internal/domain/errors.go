package domain

import "fmt"

// ConfigError indica credencial obrigatória ausente. É verificado antes de
// qualquer chamada de rede
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuração ausente: %s", e.Missing)
}

var (
	ErrMissingMetaAccessToken = &ConfigError{Missing: "META_ACCESS_TOKEN"}
	ErrMissingAdAccountID     = &ConfigError{Missing: "META_AD_ACCOUNT_ID"}
	ErrMissingOpenAIKey       = &ConfigError{Missing: "OPENAI_API_KEY"}
)

// ValidationError indica um registro normalizado fora do esquema canônico
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("registro inválido: campo %s: %s", e.Field, e.Reason)
}

// GenerationError encapsula qualquer falha na geração da análise pelo modelo
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("erro ao gerar análise: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
