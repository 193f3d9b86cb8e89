package handler

import (
	"net/http"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
)

// writeDomainError traduz os erros das camadas internas para a resposta
// HTTP padronizada
func writeDomainError(w http.ResponseWriter, err error) {
	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingConfiguration, cfgErr.Error(), nil)
		return
	}

	var metaErr *metadomain.APIError
	if errors.As(err, &metaErr) {
		apiErrors.WriteError(w, apiErrors.ErrMetaAPI, metaErr.Error(), metaErr.Details)
		return
	}

	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRecord, valErr.Error(), nil)
		return
	}

	var genErr *domain.GenerationError
	if errors.As(err, &genErr) {
		apiErrors.WriteError(w, apiErrors.ErrGeneration, genErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
