package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/profitlens/profit-dashboard-api/infrastructure/database/postgres"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

const (
	shippingTiersTable = "shipping_tiers"
)

type ShippingTierRepository interface {
	ListByStore(storeID string) ([]*domain.ShippingTier, error)
	ReplaceForStore(ctx context.Context, storeID string, tiers []*domain.ShippingTier) error
}

type shippingTierRepository struct {
	conn *postgres.Connection
}

func NewShippingTierRepository(conn *postgres.Connection) ShippingTierRepository {
	return &shippingTierRepository{
		conn: conn,
	}
}

func (r *shippingTierRepository) ListByStore(storeID string) ([]*domain.ShippingTier, error) {
	query, args, err := squirrel.
		Select("id", "store_id", "min_items", "max_items", "cost", "cost_per_additional_item", "shipping_zone", "is_active").
		From(shippingTiersTable).
		Where(squirrel.Eq{"store_id": storeID, "is_active": true}).
		OrderBy("min_items ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar faixas de frete: %w", err)
	}
	defer rows.Close()

	tiers := make([]*domain.ShippingTier, 0)
	for rows.Next() {
		var tier domain.ShippingTier
		if err := rows.Scan(
			&tier.ID,
			&tier.StoreID,
			&tier.MinItems,
			&tier.MaxItems,
			&tier.Cost,
			&tier.CostPerAdditionalItem,
			&tier.ShippingZone,
			&tier.IsActive,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear faixa de frete: %w", err)
		}
		tiers = append(tiers, &tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tiers, nil
}

// ReplaceForStore substitui as faixas de frete da loja de forma atômica:
// o conjunto enviado passa a ser a configuração vigente.
func (r *shippingTierRepository) ReplaceForStore(ctx context.Context, storeID string, tiers []*domain.ShippingTier) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(shippingTiersTable).
			Where(squirrel.Eq{"store_id": storeID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover faixas antigas: %w", err)
		}

		if len(tiers) == 0 {
			return nil
		}

		insert := squirrel.
			Insert(shippingTiersTable).
			Columns("id", "store_id", "min_items", "max_items", "cost", "cost_per_additional_item", "shipping_zone", "is_active").
			PlaceholderFormat(squirrel.Dollar)

		for _, tier := range tiers {
			tierID := tier.ID
			if tierID == "" {
				tierID, err = utils.GenerateID()
				if err != nil {
					return fmt.Errorf("erro ao gerar ID da faixa de frete: %w", err)
				}
			}

			insert = insert.Values(tierID, storeID, tier.MinItems, tier.MaxItems, tier.Cost, tier.CostPerAdditionalItem, tier.ShippingZone, true)
		}

		insertSQL, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao gravar faixas de frete: %w", err)
		}

		return nil
	})
}
