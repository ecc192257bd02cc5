package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/profitlens/profit-dashboard-api/infrastructure/database/postgres"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

const (
	adSpendTable    = "ad_spend"
	adAccountsTable = "ad_accounts"
)

type AdSpendRepository interface {
	SaveOrUpdate(spend *domain.AdSpend) error
	SumSpendByPlatform(teamID string, startDate, endDate time.Time) (map[string]float64, error)
	ListAccountsByTeam(teamID string) ([]*domain.AdAccount, error)
	ListActiveAccounts() ([]*domain.AdAccount, error)
}

type adSpendRepository struct {
	conn *postgres.Connection
}

func NewAdSpendRepository(conn *postgres.Connection) AdSpendRepository {
	return &adSpendRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava uma linha diária de gasto. A chave de conflito
// {conta, data, campanha, conjunto} torna a sincronização idempotente:
// reprocessar o mesmo dia atualiza em vez de duplicar.
func (r *adSpendRepository) SaveOrUpdate(spend *domain.AdSpend) error {
	spendID := spend.ID
	if spendID == "" {
		var err error
		spendID, err = utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do gasto: %w", err)
		}
	}

	query := squirrel.
		Insert(adSpendTable).
		Columns(
			"id", "ad_account_id", "platform", "date", "campaign_id", "ad_set_id",
			"spend", "impressions", "clicks", "conversions", "revenue", "currency",
		).
		Values(
			spendID,
			spend.AdAccountID,
			spend.Platform,
			spend.Date.Format(time.DateOnly),
			spend.CampaignID,
			spend.AdSetID,
			spend.Spend,
			spend.Impressions,
			spend.Clicks,
			spend.Conversions,
			spend.Revenue,
			spend.Currency,
		).
		Suffix(`
			ON CONFLICT (ad_account_id, date, campaign_id, ad_set_id) DO UPDATE SET
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				revenue = EXCLUDED.revenue,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	spendSQL, spendArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(spendSQL, spendArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar gasto de anúncios: %w", err)
	}

	return nil
}

// SumSpendByPlatform agrega o gasto do time por plataforma no período
func (r *adSpendRepository) SumSpendByPlatform(teamID string, startDate, endDate time.Time) (map[string]float64, error) {
	query, args, err := squirrel.
		Select("s.platform", "COALESCE(SUM(s.spend), 0)").
		From(adSpendTable + " s").
		Join(adAccountsTable + " a ON a.id = s.ad_account_id").
		Where(squirrel.Eq{"a.team_id": teamID}).
		Where(squirrel.GtOrEq{"s.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.date": endDate.Format(time.DateOnly)}).
		GroupBy("s.platform").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar gastos de anúncios: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var platform string
		var total float64
		if err := rows.Scan(&platform, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto por plataforma: %w", err)
		}
		totals[platform] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *adSpendRepository) ListAccountsByTeam(teamID string) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id", "team_id", "external_id", "platform", "name", "currency", "status").
		From(adAccountsTable).
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAccounts(query, args...)
}

func (r *adSpendRepository) ListActiveAccounts() ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id", "team_id", "external_id", "platform", "name", "currency", "status").
		From(adAccountsTable).
		Where(squirrel.Eq{"status": domain.AdAccountStatusActive}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryAccounts(query, args...)
}

func (r *adSpendRepository) queryAccounts(query string, args ...interface{}) ([]*domain.AdAccount, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar contas de anúncios: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		var account domain.AdAccount
		if err := rows.Scan(
			&account.ID,
			&account.TeamID,
			&account.ExternalID,
			&account.Platform,
			&account.Name,
			&account.Currency,
			&account.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}
