package meta

import (
	"fmt"
	"strconv"
	"time"

	metadomain "github.com/profitlens/profit-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/log"
)

type Integrator interface {
	FetchDailySpend(account *domain.AdAccount, startDate, endDate time.Time) ([]*domain.AdSpend, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		client: client,
	}
}

// FetchDailySpend busca o gasto diário por campanha de uma conta e converte
// cada linha para o modelo interno de gasto de anúncios
func (s *MetaIntegrator) FetchDailySpend(account *domain.AdAccount, startDate, endDate time.Time) ([]*domain.AdSpend, error) {
	insights, err := s.client.GetDailyInsights(account.ExternalID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights da conta %s: %w", account.ID, err)
	}

	rows := make([]*domain.AdSpend, 0, len(insights))
	for i := range insights {
		row, err := convertInsight(account, &insights[i])
		if err != nil {
			log.L.WithFields(log.Fields{
				"ad_account_id": account.ID,
				"campaign_id":   insights[i].CampaignID,
				"date":          insights[i].DateStart,
			}).WithError(err).Warn("Linha de insight ignorada por erro de conversão")
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func convertInsight(account *domain.AdAccount, insight *metadomain.DailyInsight) (*domain.AdSpend, error) {
	date, err := time.Parse(time.DateOnly, insight.DateStart)
	if err != nil {
		return nil, fmt.Errorf("data inválida: %w", err)
	}

	spend, err := strconv.ParseFloat(insight.Spend, 64)
	if err != nil {
		return nil, fmt.Errorf("gasto inválido: %w", err)
	}

	row := &domain.AdSpend{
		AdAccountID: account.ID,
		Platform:    domain.AdPlatformFacebook,
		Date:        date,
		Spend:       spend,
		Currency:    account.Currency,
	}

	if insight.CampaignID != "" {
		campaignID := insight.CampaignID
		row.CampaignID = &campaignID
	}

	if insight.AdSetID != "" {
		adSetID := insight.AdSetID
		row.AdSetID = &adSetID
	}

	if insight.Impressions != "" {
		row.Impressions, _ = strconv.Atoi(insight.Impressions)
	}

	if insight.Clicks != "" {
		row.Clicks, _ = strconv.Atoi(insight.Clicks)
	}

	for _, action := range insight.Actions {
		if action.ActionType != "purchase" {
			continue
		}

		if value, err := strconv.Atoi(action.Value); err == nil {
			row.Conversions += value
		}
	}

	for _, actionValue := range insight.ActionValues {
		if actionValue.ActionType != "purchase" {
			continue
		}

		if value, err := strconv.ParseFloat(actionValue.Value, 64); err == nil {
			row.Revenue += value
		}
	}

	return row, nil
}
