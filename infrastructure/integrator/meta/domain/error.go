package metadomain

import "fmt"

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// APIError representa uma falha reportada pela Meta Graph API: status HTTP
// diferente de sucesso ou um objeto "error" embutido no corpo. A busca
// inteira é abortada; nenhum resultado parcial é retornado
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func NewAPIError(statusCode int, details *ErrorDetails) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if details != nil {
		apiErr.Details = *details
	}
	if apiErr.Details.Message == "" {
		apiErr.Details.Message = "Erro ao consultar Meta Graph API"
	}
	return apiErr
}

func (e *APIError) Error() string {
	if e.Details.FBTraceID != "" {
		return fmt.Sprintf("meta graph api: %s (status %d, fbtrace_id %s)", e.Details.Message, e.StatusCode, e.Details.FBTraceID)
	}
	return fmt.Sprintf("meta graph api: %s (status %d)", e.Details.Message, e.StatusCode)
}
