package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/profitlens/profit-dashboard-api/infrastructure/database/postgres"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

const (
	storesTable = "stores"
)

type StoreRepository interface {
	GetByID(storeID string) (*domain.Store, error)
	ListByTeam(teamID string) ([]*domain.Store, error)
	ListActive() ([]*domain.Store, error)
	UpdateLastSyncedAt(storeID string, syncedAt time.Time) error
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetByID(storeID string) (*domain.Store, error) {
	query, args, err := squirrel.
		Select("id", "team_id", "name", "shop_domain", "currency", "status", "last_synced_at", "created_at", "updated_at").
		From(storesTable).
		Where(squirrel.Eq{"id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var store domain.Store
	err = r.conn.QueryRow(query, args...).Scan(
		&store.ID,
		&store.TeamID,
		&store.Name,
		&store.ShopDomain,
		&store.Currency,
		&store.Status,
		&store.LastSyncedAt,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}

	return &store, nil
}

func (r *storeRepository) ListByTeam(teamID string) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("id", "team_id", "name", "shop_domain", "currency", "status", "last_synced_at", "created_at", "updated_at").
		From(storesTable).
		Where(squirrel.Eq{"team_id": teamID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStores(query, args...)
}

func (r *storeRepository) ListActive() ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("id", "team_id", "name", "shop_domain", "currency", "status", "last_synced_at", "created_at", "updated_at").
		From(storesTable).
		Where(squirrel.Eq{"status": domain.StoreStatusActive}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStores(query, args...)
}

func (r *storeRepository) UpdateLastSyncedAt(storeID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update(storesTable).
		Set("last_synced_at", syncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar data de sincronização: %w", err)
	}

	return nil
}

func (r *storeRepository) queryStores(query string, args ...interface{}) ([]*domain.Store, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(
			&store.ID,
			&store.TeamID,
			&store.Name,
			&store.ShopDomain,
			&store.Currency,
			&store.Status,
			&store.LastSyncedAt,
			&store.CreatedAt,
			&store.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}
