package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-analyzer-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-analyzer-api/internal/config"
	"github.com/vfg2006/ads-analyzer-api/internal/domain"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			URL:         baseURL,
			AccessToken: "token-teste",
			AdAccountID: "999",
			PageLimit:   100,
			Timeout:     5 * time.Second,
		},
	}
}

func TestFetchInsights_MissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want error
	}{
		{
			name: "sem access token",
			cfg: &config.Config{
				Meta: config.Meta{AdAccountID: "999"},
			},
			want: domain.ErrMissingMetaAccessToken,
		},
		{
			name: "sem ad account id",
			cfg: &config.Config{
				Meta: config.Meta{AccessToken: "token"},
			},
			want: domain.ErrMissingAdAccountID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.cfg)
			rows, err := client.FetchInsights(context.Background(), domain.LevelCampaign, &domain.InsightFilters{})

			assert.Nil(t, rows)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchInsights_FollowsPagination(t *testing.T) {
	calls := 0
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")

		switch calls {
		case 1:
			assert.Equal(t, "campaign", r.URL.Query().Get("level"))
			assert.Equal(t, "token-teste", r.URL.Query().Get("access_token"))
			assert.Equal(t, "conversion", r.URL.Query().Get("action_report_time"))
			assert.Equal(t, "last_7d", r.URL.Query().Get("date_preset"))

			fmt.Fprintf(w, `{
				"data": [{"campaign_id": "1", "campaign_name": "A"}],
				"paging": {"next": %q}
			}`, server.URL+"/page2")
		case 2:
			assert.Equal(t, "/page2", r.URL.Path)
			fmt.Fprint(w, `{"data": [{"campaign_id": "2", "campaign_name": "B"}]}`)
		default:
			t.Errorf("chamada inesperada: %d", calls)
		}
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	rows, err := client.FetchInsights(context.Background(), domain.LevelCampaign, &domain.InsightFilters{
		DatePreset: "last_7d",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].CampaignID)
	assert.Equal(t, "2", rows[1].CampaignID)
}

func TestFetchInsights_CustomRangeUsesTimeRange(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `{"since":"2026-01-01","until":"2026-01-31"}`, r.URL.Query().Get("time_range"))
		assert.Empty(t, r.URL.Query().Get("date_preset"))
		fmt.Fprint(w, `{"data": []}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	rows, err := client.FetchInsights(context.Background(), domain.LevelCampaign, &domain.InsightFilters{
		Since: "2026-01-01",
		Until: "2026-01-31",
	})

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFetchInsights_ErrorEnvelopeAbortsFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{
			"error": {
				"message": "Invalid OAuth access token",
				"type": "OAuthException",
				"code": 190,
				"fbtrace_id": "AbCdEf"
			}
		}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	rows, err := client.FetchInsights(context.Background(), domain.LevelCampaign, &domain.InsightFilters{})

	assert.Nil(t, rows)

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, 190, apiErr.Details.Code)
	assert.Contains(t, apiErr.Error(), "AbCdEf")
}

func TestFetchInsights_EmbeddedErrorWithOKStatus(t *testing.T) {
	// A Graph API pode devolver 200 com um envelope de erro no corpo
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": {"message": "rate limit", "code": 17}}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	rows, err := client.FetchInsights(context.Background(), domain.LevelCampaign, &domain.InsightFilters{})

	assert.Nil(t, rows)

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 17, apiErr.Details.Code)
}

func TestFetchInsights_UnreadableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `<html>bad gateway</html>`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.FetchInsights(context.Background(), domain.LevelCampaign, &domain.InsightFilters{})

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestFetchInsights_InvalidLevel(t *testing.T) {
	client := NewClient(testConfig("http://localhost"))
	_, err := client.FetchInsights(context.Background(), domain.Level("pais"), &domain.InsightFilters{})

	assert.Error(t, err)
}

func TestFetchInsights_AdLevelRequestsParentFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields := r.URL.Query().Get("fields")
		assert.Contains(t, fields, "ad_id")
		assert.Contains(t, fields, "adset_id")
		assert.Contains(t, fields, "campaign_id")
		assert.Contains(t, fields, "action_values")
		fmt.Fprint(w, `{"data": []}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.FetchInsights(context.Background(), domain.LevelAd, &domain.InsightFilters{})

	assert.NoError(t, err)
}
