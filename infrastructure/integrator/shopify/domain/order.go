package domain

import (
	"time"
)

// Order é o payload de pedido da API REST de pedidos da Shopify, limitado aos
// campos que alimentam os relatórios. Valores monetários chegam como string.
type Order struct {
	ID                  int64          `json:"id"`
	Name                string         `json:"name"`
	Currency            string         `json:"currency"`
	SubtotalPrice       string         `json:"subtotal_price"`
	TotalTax            string         `json:"total_tax"`
	TotalDiscounts      string         `json:"total_discounts"`
	TotalPrice          string         `json:"total_price"`
	FinancialStatus     string         `json:"financial_status"`
	CancelledAt         *time.Time     `json:"cancelled_at"`
	ProcessedAt         time.Time      `json:"processed_at"`
	Customer            *Customer      `json:"customer"`
	TotalShippingPrice  *PriceSet      `json:"total_shipping_price_set"`
	LineItems           []LineItem     `json:"line_items"`
	Refunds             []Refund       `json:"refunds"`
}

type Customer struct {
	ID int64 `json:"id"`
}

type PriceSet struct {
	ShopMoney Money `json:"shop_money"`
}

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

type LineItem struct {
	ID            int64  `json:"id"`
	VariantID     *int64 `json:"variant_id"`
	Title         string `json:"title"`
	Quantity      int    `json:"quantity"`
	Price         string `json:"price"`
	TotalDiscount string `json:"total_discount"`
}

type Refund struct {
	ID              int64             `json:"id"`
	ProcessedAt     time.Time         `json:"processed_at"`
	Transactions    []Transaction     `json:"transactions"`
	RefundLineItems []RefundLineItem  `json:"refund_line_items"`
}

type RefundLineItem struct {
	Quantity    int    `json:"quantity"`
	RestockType string `json:"restock_type"`
	Subtotal    string `json:"subtotal"`
	LineItem    struct {
		VariantID *int64 `json:"variant_id"`
	} `json:"line_item"`
}

type Transaction struct {
	ID      int64  `json:"id"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Gateway string `json:"gateway"`
	Amount  string `json:"amount"`
}

// OrdersResponse é o envelope da listagem de pedidos
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// TransactionsResponse é o envelope da listagem de transações de um pedido
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}
