package metaclient

import (
	"fmt"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	metadomain "github.com/profitlens/profit-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetDailyInsights(accountExternalID string, startDate, endDate time.Time) ([]metadomain.DailyInsight, error)
}

type MetaClient struct {
	cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg: cfg,
	}
}

// GetDailyInsights busca os insights diários de uma conta no nível de
// campanha, seguindo a paginação por cursor da Graph API
func (c *MetaClient) GetDailyInsights(accountExternalID string, startDate, endDate time.Time) ([]metadomain.DailyInsight, error) {
	params := url.Values{}
	params.Set("fields", "account_id,campaign_id,campaign_name,adset_id,spend,impressions,clicks,actions,action_values")
	params.Set("level", "campaign")
	params.Set("time_increment", "1")
	params.Set("time_range", fmt.Sprintf(
		`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	))
	params.Set("limit", "500")
	params.Set("access_token", c.cfg.Meta.AccessToken)

	requestURL := fmt.Sprintf("%s/act_%s/insights?%s", c.cfg.Meta.URL, accountExternalID, params.Encode())

	insights := make([]metadomain.DailyInsight, 0)

	for requestURL != "" {
		body, err := utils.MakeRequest(requestURL, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao consultar insights da conta %s", accountExternalID)
		}

		var response metadomain.InsightsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar resposta de insights")
		}

		insights = append(insights, response.Data...)

		requestURL = ""
		if response.Paging != nil {
			requestURL = response.Paging.Next
		}
	}

	return insights, nil
}
