package shopify

import (
	"fmt"
	"strconv"
	"time"

	shopifydomain "github.com/profitlens/profit-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/log"
)

// CostResolver resolve o custo vigente de uma variante numa data — usado para
// calcular o estorno de COGS quando um reembolso devolve itens ao estoque
type CostResolver func(variantID string, at time.Time) *float64

type Integrator interface {
	FetchOrders(store *domain.Store, updatedAtMin time.Time) ([]*domain.Order, error)
}

type ShopifyIntegrator struct {
	cfg         *config.Config
	client      shopifyclient.Client
	resolveCost CostResolver
}

func New(cfg *config.Config, client shopifyclient.Client, resolveCost CostResolver) *ShopifyIntegrator {
	return &ShopifyIntegrator{
		cfg:         cfg,
		client:      client,
		resolveCost: resolveCost,
	}
}

// FetchOrders busca na Shopify os pedidos da loja atualizados desde
// updatedAtMin e os converte para o modelo interno
func (s *ShopifyIntegrator) FetchOrders(store *domain.Store, updatedAtMin time.Time) ([]*domain.Order, error) {
	payloads, err := s.client.ListOrders(store.ShopDomain, updatedAtMin)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos da loja %s: %w", store.ID, err)
	}

	orders := make([]*domain.Order, 0, len(payloads))
	for i := range payloads {
		order, err := s.convertOrder(store, &payloads[i])
		if err != nil {
			log.L.WithFields(log.Fields{
				"store_id":    store.ID,
				"external_id": payloads[i].ID,
			}).WithError(err).Warn("Pedido ignorado por erro de conversão")
			continue
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func (s *ShopifyIntegrator) convertOrder(store *domain.Store, payload *shopifydomain.Order) (*domain.Order, error) {
	subtotal, err := parseMoney(payload.SubtotalPrice)
	if err != nil {
		return nil, fmt.Errorf("subtotal inválido: %w", err)
	}

	totalTax, err := parseMoney(payload.TotalTax)
	if err != nil {
		return nil, fmt.Errorf("imposto inválido: %w", err)
	}

	totalDiscounts, err := parseMoney(payload.TotalDiscounts)
	if err != nil {
		return nil, fmt.Errorf("desconto inválido: %w", err)
	}

	totalPrice, err := parseMoney(payload.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("total inválido: %w", err)
	}

	shippingPrice := 0.0
	if payload.TotalShippingPrice != nil {
		shippingPrice, err = parseMoney(payload.TotalShippingPrice.ShopMoney.Amount)
		if err != nil {
			return nil, fmt.Errorf("frete inválido: %w", err)
		}
	}

	// IDs da Shopify são globalmente únicos: usá-los como chave interna mantém
	// o upsert e a substituição dos filhos estáveis entre sincronizações
	order := &domain.Order{
		ID:                 strconv.FormatInt(payload.ID, 10),
		StoreID:            store.ID,
		ExternalID:         strconv.FormatInt(payload.ID, 10),
		SubtotalPrice:      subtotal,
		TotalShippingPrice: shippingPrice,
		TotalTax:           totalTax,
		TotalDiscounts:     totalDiscounts,
		TotalPrice:         totalPrice,
		FinancialStatus:    domain.FinancialStatus(payload.FinancialStatus),
		Currency:           payload.Currency,
		CancelledAt:        payload.CancelledAt,
		ProcessedAt:        payload.ProcessedAt,
	}

	if payload.Customer != nil {
		customerID := strconv.FormatInt(payload.Customer.ID, 10)
		order.CustomerID = &customerID
	}

	order.LineItems = convertLineItems(payload.LineItems)

	refunds, totalRefunded := s.convertRefunds(payload.Refunds)
	order.Refunds = refunds
	order.TotalRefundAmount = totalRefunded

	transactions, err := s.fetchTransactions(store, payload.ID)
	if err != nil {
		// Transações alimentam só o cálculo de taxas: o pedido ainda vale
		log.L.WithFields(log.Fields{
			"store_id":    store.ID,
			"external_id": payload.ID,
		}).WithError(err).Warn("Erro ao buscar transações do pedido")
	}
	order.Transactions = transactions

	return order, nil
}

func convertLineItems(payloads []shopifydomain.LineItem) []*domain.OrderLineItem {
	items := make([]*domain.OrderLineItem, 0, len(payloads))

	for _, payload := range payloads {
		price, err := parseMoney(payload.Price)
		if err != nil {
			continue
		}

		discount, _ := parseMoney(payload.TotalDiscount)

		item := &domain.OrderLineItem{
			ID:            strconv.FormatInt(payload.ID, 10),
			Title:         payload.Title,
			Quantity:      payload.Quantity,
			Price:         price,
			TotalDiscount: discount,
		}

		if payload.VariantID != nil {
			variantID := strconv.FormatInt(*payload.VariantID, 10)
			item.VariantID = &variantID
		}

		items = append(items, item)
	}

	return items
}

// convertRefunds converte os reembolsos somando as transações de estorno bem
// sucedidas. Itens devolvidos ao estoque geram estorno de COGS pelo custo
// vigente na data do reembolso.
func (s *ShopifyIntegrator) convertRefunds(payloads []shopifydomain.Refund) ([]*domain.Refund, float64) {
	refunds := make([]*domain.Refund, 0, len(payloads))
	totalRefunded := 0.0

	for _, payload := range payloads {
		amount := 0.0
		for _, tx := range payload.Transactions {
			if tx.Kind != "refund" || tx.Status != "success" {
				continue
			}

			value, err := parseMoney(tx.Amount)
			if err != nil {
				continue
			}

			amount += value
		}

		cogsReversed := 0.0
		if s.resolveCost != nil {
			for _, line := range payload.RefundLineItems {
				if line.RestockType == "no_restock" || line.LineItem.VariantID == nil {
					continue
				}

				variantID := strconv.FormatInt(*line.LineItem.VariantID, 10)
				cost := s.resolveCost(variantID, payload.ProcessedAt)
				if cost == nil {
					continue
				}

				cogsReversed += *cost * float64(line.Quantity)
			}
		}

		totalRefunded += amount

		refunds = append(refunds, &domain.Refund{
			ID:                strconv.FormatInt(payload.ID, 10),
			Amount:            amount,
			TotalCOGSReversed: cogsReversed,
			ProcessedAt:       payload.ProcessedAt,
		})
	}

	return refunds, totalRefunded
}

func (s *ShopifyIntegrator) fetchTransactions(store *domain.Store, orderID int64) ([]*domain.Transaction, error) {
	payloads, err := s.client.ListOrderTransactions(store.ShopDomain, orderID)
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(payloads))
	for _, payload := range payloads {
		if payload.Status != "success" {
			continue
		}

		if payload.Kind != "sale" && payload.Kind != "capture" {
			continue
		}

		amount, err := parseMoney(payload.Amount)
		if err != nil {
			continue
		}

		transactions = append(transactions, &domain.Transaction{
			ID:      strconv.FormatInt(payload.ID, 10),
			Gateway: payload.Gateway,
			Amount:  amount,
		})
	}

	return transactions, nil
}

func parseMoney(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	return strconv.ParseFloat(value, 64)
}
