package repository

import (
	"context"
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
	variantCostsTable    = "variant_cost_entries"
	productVariantsTable = "product_variants"
	productsTable        = "products"
)

type ProductCostRepository interface {
	GetCostHistories(variantIDs []string) (map[string][]*domain.CostEntry, error)
	GetShippingExemptVariants(storeID string) (map[string]bool, error)
	GetVariantTeamID(variantID string) (string, error)
	AddCostEntry(ctx context.Context, variantID string, costPrice float64, effectiveFrom time.Time) (*domain.CostEntry, error)
}

type productCostRepository struct {
	conn *postgres.Connection
}

func NewProductCostRepository(conn *postgres.Connection) ProductCostRepository {
	return &productCostRepository{
		conn: conn,
	}
}

// GetCostHistories retorna o histórico completo de custos das variantes,
// agrupado por variante. Históricos vazios simplesmente não aparecem no mapa.
func (r *productCostRepository) GetCostHistories(variantIDs []string) (map[string][]*domain.CostEntry, error) {
	histories := make(map[string][]*domain.CostEntry)
	if len(variantIDs) == 0 {
		return histories, nil
	}

	query, args, err := squirrel.
		Select("id", "variant_id", "cost_price", "effective_from", "effective_to").
		From(variantCostsTable).
		Where(squirrel.Eq{"variant_id": variantIDs}).
		OrderBy("variant_id ASC", "effective_from ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar histórico de custos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.CostEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.VariantID,
			&entry.CostPrice,
			&entry.EffectiveFrom,
			&entry.EffectiveTo,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de custo: %w", err)
		}
		histories[entry.VariantID] = append(histories[entry.VariantID], &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return histories, nil
}

// GetShippingExemptVariants retorna as variantes da loja isentas de frete,
// seja pela flag da variante ou pela flag do produto pai
func (r *productCostRepository) GetShippingExemptVariants(storeID string) (map[string]bool, error) {
	query, args, err := squirrel.
		Select("pv.id").
		From(productVariantsTable + " pv").
		Join(productsTable + " p ON p.id = pv.product_id").
		Where(squirrel.Eq{"p.store_id": storeID}).
		Where(squirrel.Or{
			squirrel.Eq{"pv.shipping_exempt": true},
			squirrel.Eq{"p.shipping_exempt": true},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar variantes isentas de frete: %w", err)
	}
	defer rows.Close()

	exempt := make(map[string]bool)
	for rows.Next() {
		var variantID string
		if err := rows.Scan(&variantID); err != nil {
			return nil, fmt.Errorf("erro ao escanear variante: %w", err)
		}
		exempt[variantID] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return exempt, nil
}

// GetVariantTeamID retorna o time dono da variante, resolvido pela cadeia
// variante → produto → loja. Variante inexistente retorna vazio.
func (r *productCostRepository) GetVariantTeamID(variantID string) (string, error) {
	query, args, err := squirrel.
		Select("s.team_id").
		From(productVariantsTable + " pv").
		Join(productsTable + " p ON p.id = pv.product_id").
		Join(storesTable + " s ON s.id = p.store_id").
		Where(squirrel.Eq{"pv.id": variantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var teamID string
	err = r.conn.QueryRow(query, args...).Scan(&teamID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("erro ao buscar time da variante: %w", err)
	}

	return teamID, nil
}

// AddCostEntry registra um novo custo para a variante: fecha a entrada aberta
// (se houver) no dia anterior à nova vigência e insere a nova entrada aberta.
// As duas operações rodam na mesma transação — o invariante de no máximo uma
// entrada aberta por variante depende disso.
func (r *productCostRepository) AddCostEntry(ctx context.Context, variantID string, costPrice float64, effectiveFrom time.Time) (*domain.CostEntry, error) {
	entryID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da entrada de custo: %w", err)
	}

	entry := &domain.CostEntry{
		ID:            entryID,
		VariantID:     variantID,
		CostPrice:     costPrice,
		EffectiveFrom: effectiveFrom,
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		closeSQL, closeArgs, err := squirrel.
			Update(variantCostsTable).
			Set("effective_to", effectiveFrom.AddDate(0, 0, -1)).
			Where(squirrel.Eq{"variant_id": variantID}).
			Where(squirrel.Expr("effective_to IS NULL")).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(closeSQL, closeArgs...); err != nil {
			return fmt.Errorf("erro ao fechar entrada de custo aberta: %w", err)
		}

		insertSQL, insertArgs, err := squirrel.
			Insert(variantCostsTable).
			Columns("id", "variant_id", "cost_price", "effective_from").
			Values(entry.ID, entry.VariantID, entry.CostPrice, entry.EffectiveFrom).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir entrada de custo: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
