package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/ads-analyzer-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetMetrics_CampaignLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().
		GetMetrics(gomock.Any(), domain.LevelCampaign, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Level, filters *domain.InsightFilters) ([]domain.AdMetricsRecord, error) {
			// Sem parâmetros a janela padrão é aplicada
			assert.Equal(t, domain.DefaultDatePreset, filters.DatePreset)

			return []domain.AdMetricsRecord{
				{CampaignID: "c1", CampaignName: "Campanha A", Spend: 100, ROAS: 2},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/meta/campaigns", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockAnalyzer, domain.LevelCampaign).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.MetricsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Campaigns, 1)
	assert.Equal(t, "c1", resp.Campaigns[0].CampaignID)
	assert.Empty(t, resp.AdSets)
	assert.Empty(t, resp.Ads)
	assert.Equal(t, domain.DefaultDatePreset, resp.DatePreset)
}

func TestGetMetrics_AdLevelWithCustomRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().
		GetMetrics(gomock.Any(), domain.LevelAd, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Level, filters *domain.InsightFilters) ([]domain.AdMetricsRecord, error) {
			assert.Equal(t, "2026-03-01", filters.Since)
			assert.Equal(t, "2026-03-31", filters.Until)
			return []domain.AdMetricsRecord{{AdID: "a1"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/meta/ads?since=2026-03-01&until=2026-03-31", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockAnalyzer, domain.LevelAd).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.MetricsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Ads, 1)
	assert.Equal(t, "a1", resp.Ads[0].AdID)
}

func TestGetMetrics_InvalidSinceFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().GetMetrics(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodGet, "/v1/meta/adsets?since=01%2F03%2F2026", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockAnalyzer, domain.LevelAdSet).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
}

func TestGetMetrics_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().
		GetMetrics(gomock.Any(), domain.LevelCampaign, gomock.Any()).
		Return(nil, domain.ErrMissingMetaAccessToken)

	req := httptest.NewRequest(http.MethodGet, "/v1/meta/campaigns", nil)
	rec := httptest.NewRecorder()

	GetMetrics(mockAnalyzer, domain.LevelCampaign).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrMissingConfiguration, apiErr.Code)
}
