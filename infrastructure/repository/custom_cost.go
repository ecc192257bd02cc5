package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/profitlens/profit-dashboard-api/infrastructure/database/postgres"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

const (
	customCostsTable       = "custom_costs"
	customCostEntriesTable = "custom_cost_entries"
)

type CustomCostRepository interface {
	ListActiveByTeam(teamID string) ([]*domain.CustomCost, error)
	GetByID(costID string) (*domain.CustomCost, error)
	Create(cost *domain.CustomCost) (*domain.CustomCost, error)
	Update(cost *domain.CustomCost) error
	Deactivate(costID string) error
	ListEntriesByPeriod(teamID string, startDate, endDate time.Time) ([]*domain.CustomCostEntry, error)
	CreateEntry(entry *domain.CustomCostEntry) (*domain.CustomCostEntry, error)
}

type customCostRepository struct {
	conn *postgres.Connection
}

func NewCustomCostRepository(conn *postgres.Connection) CustomCostRepository {
	return &customCostRepository{
		conn: conn,
	}
}

func (r *customCostRepository) ListActiveByTeam(teamID string) ([]*domain.CustomCost, error) {
	query, args, err := squirrel.
		Select("id", "team_id", "name", "cost_type", "recurrence_type", "monthly_amount", "is_active", "created_at", "updated_at").
		From(customCostsTable).
		Where(squirrel.Eq{"team_id": teamID, "is_active": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar custos do time: %w", err)
	}
	defer rows.Close()

	costs := make([]*domain.CustomCost, 0)
	for rows.Next() {
		cost, err := scanCustomCost(rows)
		if err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

func (r *customCostRepository) GetByID(costID string) (*domain.CustomCost, error) {
	query, args, err := squirrel.
		Select("id", "team_id", "name", "cost_type", "recurrence_type", "monthly_amount", "is_active", "created_at", "updated_at").
		From(customCostsTable).
		Where(squirrel.Eq{"id": costID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var cost domain.CustomCost
	err = r.conn.QueryRow(query, args...).Scan(
		&cost.ID,
		&cost.TeamID,
		&cost.Name,
		&cost.CostType,
		&cost.RecurrenceType,
		&cost.MonthlyAmount,
		&cost.IsActive,
		&cost.CreatedAt,
		&cost.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar custo: %w", err)
	}

	return &cost, nil
}

func (r *customCostRepository) Create(cost *domain.CustomCost) (*domain.CustomCost, error) {
	costID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do custo: %w", err)
	}
	cost.ID = costID

	query, args, err := squirrel.
		Insert(customCostsTable).
		Columns("id", "team_id", "name", "cost_type", "recurrence_type", "monthly_amount", "is_active").
		Values(cost.ID, cost.TeamID, cost.Name, cost.CostType, cost.RecurrenceType, cost.MonthlyAmount, true).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao criar custo: %w", err)
	}

	cost.IsActive = true
	return cost, nil
}

func (r *customCostRepository) Update(cost *domain.CustomCost) error {
	queryBuilder := squirrel.
		Update(customCostsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cost.ID})

	if cost.Name != "" {
		queryBuilder = queryBuilder.Set("name", cost.Name)
	}

	if cost.CostType != "" {
		queryBuilder = queryBuilder.Set("cost_type", cost.CostType)
	}

	if cost.RecurrenceType != "" {
		queryBuilder = queryBuilder.Set("recurrence_type", cost.RecurrenceType)
	}

	if cost.MonthlyAmount > 0 {
		queryBuilder = queryBuilder.Set("monthly_amount", cost.MonthlyAmount)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar custo: %w", err)
	}

	return nil
}

// Deactivate desativa o custo sem apagar os lançamentos históricos —
// relatórios de períodos passados continuam batendo
func (r *customCostRepository) Deactivate(costID string) error {
	query, args, err := squirrel.
		Update(customCostsTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": costID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desativar custo: %w", err)
	}

	return nil
}

func (r *customCostRepository) ListEntriesByPeriod(teamID string, startDate, endDate time.Time) ([]*domain.CustomCostEntry, error) {
	query, args, err := squirrel.
		Select("ce.id", "ce.custom_cost_id", "ce.amount", "ce.date", "ce.description").
		From(customCostEntriesTable + " ce").
		Join(customCostsTable + " cc ON cc.id = ce.custom_cost_id").
		Where(squirrel.Eq{"cc.team_id": teamID}).
		Where(squirrel.GtOrEq{"ce.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ce.date": endDate.Format(time.DateOnly)}).
		OrderBy("ce.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lançamentos de custo: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CustomCostEntry, 0)
	for rows.Next() {
		var entry domain.CustomCostEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.CustomCostID,
			&entry.Amount,
			&entry.Date,
			&entry.Description,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento de custo: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *customCostRepository) CreateEntry(entry *domain.CustomCostEntry) (*domain.CustomCostEntry, error) {
	entryID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do lançamento: %w", err)
	}
	entry.ID = entryID

	query, args, err := squirrel.
		Insert(customCostEntriesTable).
		Columns("id", "custom_cost_id", "amount", "date", "description").
		Values(entry.ID, entry.CustomCostID, entry.Amount, entry.Date.Format(time.DateOnly), entry.Description).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao criar lançamento de custo: %w", err)
	}

	return entry, nil
}

func scanCustomCost(rows *sql.Rows) (*domain.CustomCost, error) {
	var cost domain.CustomCost
	if err := rows.Scan(
		&cost.ID,
		&cost.TeamID,
		&cost.Name,
		&cost.CostType,
		&cost.RecurrenceType,
		&cost.MonthlyAmount,
		&cost.IsActive,
		&cost.CreatedAt,
		&cost.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("erro ao escanear custo: %w", err)
	}

	return &cost, nil
}
