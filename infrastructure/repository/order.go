package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/profitlens/profit-dashboard-api/infrastructure/database/postgres"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

const (
	ordersTable            = "orders"
	orderLineItemsTable    = "order_line_items"
	orderRefundsTable      = "order_refunds"
	orderTransactionsTable = "order_transactions"
)

type OrderRepository interface {
	ListByPeriod(storeID string, startDate, endDate time.Time) ([]*domain.Order, error)
	ListCustomerOrders(storeID string, until time.Time) ([]*domain.CustomerOrder, error)
	SaveOrUpdate(order *domain.Order) error
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// ListByPeriod retorna os pedidos da loja processados no período, com itens,
// reembolsos e transações carregados. Pedidos cancelados e com status fora da
// lista reportável ficam de fora — o filtro é aplicado aqui para que todos os
// consumidores de relatório partam do mesmo conjunto.
func (r *orderRepository) ListByPeriod(storeID string, startDate, endDate time.Time) ([]*domain.Order, error) {
	statuses := make([]string, 0, len(domain.ReportableStatuses))
	for _, status := range domain.ReportableStatuses {
		statuses = append(statuses, string(status))
	}

	query, args, err := squirrel.
		Select(
			"id", "store_id", "external_id", "customer_id",
			"subtotal_price", "total_shipping_price", "total_tax", "total_discounts",
			"total_price", "total_refund_amount", "financial_status", "currency",
			"cancelled_at", "processed_at", "created_at", "updated_at",
		).
		From(ordersTable).
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.Eq{"financial_status": statuses}).
		Where(squirrel.Expr("cancelled_at IS NULL")).
		Where(squirrel.GtOrEq{"processed_at": startDate}).
		Where(squirrel.LtOrEq{"processed_at": endDate}).
		OrderBy("processed_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	orderIDs := make([]string, 0)
	byID := make(map[string]*domain.Order)

	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.StoreID,
			&order.ExternalID,
			&order.CustomerID,
			&order.SubtotalPrice,
			&order.TotalShippingPrice,
			&order.TotalTax,
			&order.TotalDiscounts,
			&order.TotalPrice,
			&order.TotalRefundAmount,
			&order.FinancialStatus,
			&order.Currency,
			&order.CancelledAt,
			&order.ProcessedAt,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		orders = append(orders, &order)
		orderIDs = append(orderIDs, order.ID)
		byID[order.ID] = &order
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.loadLineItems(orderIDs, byID); err != nil {
		return nil, err
	}

	if err := r.loadRefunds(orderIDs, byID); err != nil {
		return nil, err
	}

	if err := r.loadTransactions(orderIDs, byID); err != nil {
		return nil, err
	}

	return orders, nil
}

// ListCustomerOrders retorna a projeção de pedidos por cliente até a data
// informada. A receita líquida já vem calculada na mesma base sem IVA do
// demonstrativo: subtotal + frete − descontos − reembolsos.
func (r *orderRepository) ListCustomerOrders(storeID string, until time.Time) ([]*domain.CustomerOrder, error) {
	statuses := make([]string, 0, len(domain.ReportableStatuses))
	for _, status := range domain.ReportableStatuses {
		statuses = append(statuses, string(status))
	}

	query, args, err := squirrel.
		Select(
			"customer_id",
			"processed_at",
			"subtotal_price + total_shipping_price - total_discounts - total_refund_amount AS net_revenue",
		).
		From(ordersTable).
		Where(squirrel.Eq{"store_id": storeID}).
		Where(squirrel.Eq{"financial_status": statuses}).
		Where(squirrel.Expr("cancelled_at IS NULL")).
		Where(squirrel.Expr("customer_id IS NOT NULL")).
		Where(squirrel.LtOrEq{"processed_at": until}).
		OrderBy("processed_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	customerOrders := make([]*domain.CustomerOrder, 0)
	for rows.Next() {
		var customerOrder domain.CustomerOrder
		if err := rows.Scan(
			&customerOrder.CustomerID,
			&customerOrder.ProcessedAt,
			&customerOrder.NetRevenue,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido de cliente: %w", err)
		}
		customerOrders = append(customerOrders, &customerOrder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customerOrders, nil
}

// SaveOrUpdate grava o pedido e seus filhos em uma transação. A chave de
// idempotência é {store_id, external_id}: a sincronização pode reprocessar o
// mesmo pedido sem duplicar linhas.
func (r *orderRepository) SaveOrUpdate(order *domain.Order) error {
	query := squirrel.
		Insert(ordersTable).
		Columns(
			"id", "store_id", "external_id", "customer_id",
			"subtotal_price", "total_shipping_price", "total_tax", "total_discounts",
			"total_price", "total_refund_amount", "financial_status", "currency",
			"cancelled_at", "processed_at",
		).
		Values(
			order.ID,
			order.StoreID,
			order.ExternalID,
			order.CustomerID,
			order.SubtotalPrice,
			order.TotalShippingPrice,
			order.TotalTax,
			order.TotalDiscounts,
			order.TotalPrice,
			order.TotalRefundAmount,
			order.FinancialStatus,
			order.Currency,
			order.CancelledAt,
			order.ProcessedAt,
		).
		Suffix(`
			ON CONFLICT (store_id, external_id) DO UPDATE SET
				customer_id = EXCLUDED.customer_id,
				subtotal_price = EXCLUDED.subtotal_price,
				total_shipping_price = EXCLUDED.total_shipping_price,
				total_tax = EXCLUDED.total_tax,
				total_discounts = EXCLUDED.total_discounts,
				total_price = EXCLUDED.total_price,
				total_refund_amount = EXCLUDED.total_refund_amount,
				financial_status = EXCLUDED.financial_status,
				cancelled_at = EXCLUDED.cancelled_at,
				processed_at = EXCLUDED.processed_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	orderSQL, orderArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(orderSQL, orderArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar pedido: %w", err)
	}

	if err := r.replaceLineItems(order); err != nil {
		return err
	}

	if err := r.replaceRefunds(order); err != nil {
		return err
	}

	return r.replaceTransactions(order)
}

func (r *orderRepository) loadLineItems(orderIDs []string, byID map[string]*domain.Order) error {
	query, args, err := squirrel.
		Select("id", "order_id", "variant_id", "title", "quantity", "price", "total_discount", "tax_amount").
		From(orderLineItemsTable).
		Where(squirrel.Eq{"order_id": orderIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao consultar itens dos pedidos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderLineItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.VariantID,
			&item.Title,
			&item.Quantity,
			&item.Price,
			&item.TotalDiscount,
			&item.TaxAmount,
		); err != nil {
			return fmt.Errorf("erro ao escanear item de pedido: %w", err)
		}

		if order, ok := byID[item.OrderID]; ok {
			order.LineItems = append(order.LineItems, &item)
		}
	}

	return rows.Err()
}

func (r *orderRepository) loadRefunds(orderIDs []string, byID map[string]*domain.Order) error {
	query, args, err := squirrel.
		Select("id", "order_id", "amount", "total_cogs_reversed", "processed_at").
		From(orderRefundsTable).
		Where(squirrel.Eq{"order_id": orderIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao consultar reembolsos dos pedidos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var refund domain.Refund
		if err := rows.Scan(
			&refund.ID,
			&refund.OrderID,
			&refund.Amount,
			&refund.TotalCOGSReversed,
			&refund.ProcessedAt,
		); err != nil {
			return fmt.Errorf("erro ao escanear reembolso: %w", err)
		}

		if order, ok := byID[refund.OrderID]; ok {
			order.Refunds = append(order.Refunds, &refund)
		}
	}

	return rows.Err()
}

func (r *orderRepository) loadTransactions(orderIDs []string, byID map[string]*domain.Order) error {
	query, args, err := squirrel.
		Select("id", "order_id", "gateway", "amount", "payment_fee", "payment_fee_calculated").
		From(orderTransactionsTable).
		Where(squirrel.Eq{"order_id": orderIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao consultar transações dos pedidos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.OrderID,
			&tx.Gateway,
			&tx.Amount,
			&tx.PaymentFee,
			&tx.PaymentFeeCalculated,
		); err != nil {
			return fmt.Errorf("erro ao escanear transação: %w", err)
		}

		if order, ok := byID[tx.OrderID]; ok {
			order.Transactions = append(order.Transactions, &tx)
		}
	}

	return rows.Err()
}

func (r *orderRepository) replaceLineItems(order *domain.Order) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(orderLineItemsTable).
		Where(squirrel.Eq{"order_id": order.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao remover itens antigos: %w", err)
	}

	if len(order.LineItems) == 0 {
		return nil
	}

	insert := squirrel.
		Insert(orderLineItemsTable).
		Columns("id", "order_id", "variant_id", "title", "quantity", "price", "total_discount", "tax_amount").
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range order.LineItems {
		insert = insert.Values(item.ID, order.ID, item.VariantID, item.Title, item.Quantity, item.Price, item.TotalDiscount, item.TaxAmount)
	}

	insertSQL, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(insertSQL, insertArgs...); err != nil {
		return fmt.Errorf("erro ao gravar itens do pedido: %w", err)
	}

	return nil
}

func (r *orderRepository) replaceRefunds(order *domain.Order) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(orderRefundsTable).
		Where(squirrel.Eq{"order_id": order.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao remover reembolsos antigos: %w", err)
	}

	if len(order.Refunds) == 0 {
		return nil
	}

	insert := squirrel.
		Insert(orderRefundsTable).
		Columns("id", "order_id", "amount", "total_cogs_reversed", "processed_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, refund := range order.Refunds {
		insert = insert.Values(refund.ID, order.ID, refund.Amount, refund.TotalCOGSReversed, refund.ProcessedAt)
	}

	insertSQL, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(insertSQL, insertArgs...); err != nil {
		return fmt.Errorf("erro ao gravar reembolsos do pedido: %w", err)
	}

	return nil
}

func (r *orderRepository) replaceTransactions(order *domain.Order) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(orderTransactionsTable).
		Where(squirrel.Eq{"order_id": order.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao remover transações antigas: %w", err)
	}

	if len(order.Transactions) == 0 {
		return nil
	}

	insert := squirrel.
		Insert(orderTransactionsTable).
		Columns("id", "order_id", "gateway", "amount", "payment_fee", "payment_fee_calculated").
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range order.Transactions {
		insert = insert.Values(tx.ID, order.ID, tx.Gateway, tx.Amount, tx.PaymentFee, tx.PaymentFeeCalculated)
	}

	insertSQL, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(insertSQL, insertArgs...); err != nil {
		return fmt.Errorf("erro ao gravar transações do pedido: %w", err)
	}

	return nil
}
