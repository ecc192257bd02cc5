package repository

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/profitlens/profit-dashboard-api/infrastructure/database/postgres"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

const (
	paymentFeeConfigsTable = "payment_fee_configs"
)

type PaymentFeeConfigRepository interface {
	GetByStore(storeID string) (map[string]*domain.PaymentFeeConfig, error)
	SaveOrUpdate(config *domain.PaymentFeeConfig) error
}

type paymentFeeConfigRepository struct {
	conn *postgres.Connection
}

func NewPaymentFeeConfigRepository(conn *postgres.Connection) PaymentFeeConfigRepository {
	return &paymentFeeConfigRepository{
		conn: conn,
	}
}

// GetByStore retorna as tabelas de taxa ativas da loja indexadas pela chave do
// gateway em minúsculas — o mesmo formato usado na resolução de taxas.
func (r *paymentFeeConfigRepository) GetByStore(storeID string) (map[string]*domain.PaymentFeeConfig, error) {
	query, args, err := squirrel.
		Select("id", "store_id", "gateway", "percentage_fee", "fixed_fee", "is_active").
		From(paymentFeeConfigsTable).
		Where(squirrel.Eq{"store_id": storeID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar configurações de taxa: %w", err)
	}
	defer rows.Close()

	configs := make(map[string]*domain.PaymentFeeConfig)
	for rows.Next() {
		var config domain.PaymentFeeConfig
		if err := rows.Scan(
			&config.ID,
			&config.StoreID,
			&config.Gateway,
			&config.PercentageFee,
			&config.FixedFee,
			&config.IsActive,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração de taxa: %w", err)
		}
		configs[strings.ToLower(config.Gateway)] = &config
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

func (r *paymentFeeConfigRepository) SaveOrUpdate(config *domain.PaymentFeeConfig) error {
	configID := config.ID
	if configID == "" {
		var err error
		configID, err = utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID da configuração: %w", err)
		}
	}

	query := squirrel.
		Insert(paymentFeeConfigsTable).
		Columns("id", "store_id", "gateway", "percentage_fee", "fixed_fee", "is_active").
		Values(configID, config.StoreID, strings.ToLower(config.Gateway), config.PercentageFee, config.FixedFee, config.IsActive).
		Suffix(`
			ON CONFLICT (store_id, gateway) DO UPDATE SET
				percentage_fee = EXCLUDED.percentage_fee,
				fixed_fee = EXCLUDED.fixed_fee,
				is_active = EXCLUDED.is_active
		`).
		PlaceholderFormat(squirrel.Dollar)

	configSQL, configArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(configSQL, configArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar configuração de taxa: %w", err)
	}

	return nil
}
