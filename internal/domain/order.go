package domain

import (
	"time"
)

type FinancialStatus string

const (
	FinancialStatusPaid              FinancialStatus = "paid"
	FinancialStatusPartiallyPaid     FinancialStatus = "partially_paid"
	FinancialStatusPartiallyRefunded FinancialStatus = "partially_refunded"
	FinancialStatusRefunded          FinancialStatus = "refunded"
	FinancialStatusVoided            FinancialStatus = "voided"
	FinancialStatusPending           FinancialStatus = "pending"
)

// ReportableStatuses são os status financeiros que entram nos relatórios de lucro
var ReportableStatuses = []FinancialStatus{
	FinancialStatusPaid,
	FinancialStatusPartiallyPaid,
	FinancialStatusPartiallyRefunded,
}

// Order representa um pedido sincronizado da plataforma da loja.
// SubtotalPrice já vem SEM IVA (convenção da plataforma) — os cálculos de
// lucro dependem disso e nunca subtraem o imposto novamente.
type Order struct {
	ID                 string          `json:"id"`
	StoreID            string          `json:"store_id"`
	ExternalID         string          `json:"external_id"`
	CustomerID         *string         `json:"customer_id"`
	SubtotalPrice      float64         `json:"subtotal_price"`
	TotalShippingPrice float64         `json:"total_shipping_price"`
	TotalTax           float64         `json:"total_tax"`
	TotalDiscounts     float64         `json:"total_discounts"`
	TotalPrice         float64         `json:"total_price"`
	TotalRefundAmount  float64         `json:"total_refund_amount"`
	FinancialStatus    FinancialStatus `json:"financial_status"`
	Currency           string          `json:"currency"`
	CancelledAt        *time.Time      `json:"cancelled_at"`
	ProcessedAt        time.Time       `json:"processed_at"`
	LineItems          []*OrderLineItem `json:"line_items"`
	Refunds            []*Refund        `json:"refunds"`
	Transactions       []*Transaction   `json:"transactions"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// IsCancelled indica se o pedido foi cancelado na plataforma
func (o *Order) IsCancelled() bool {
	return o.CancelledAt != nil
}

// RefundedAmount retorna o total reembolsado: usa os registros de reembolso
// quando existem e cai para o campo agregado do pedido quando não existem
func (o *Order) RefundedAmount() float64 {
	if len(o.Refunds) == 0 {
		return o.TotalRefundAmount
	}

	total := 0.0
	for _, refund := range o.Refunds {
		total += refund.Amount
	}

	return total
}

// OrderLineItem representa um item de um pedido
type OrderLineItem struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	VariantID     *string `json:"variant_id"`
	Title         string  `json:"title"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	TotalDiscount float64 `json:"total_discount"`
	TaxAmount     float64 `json:"tax_amount"`
}

// Refund representa um reembolso de um pedido. TotalCOGSReversed é o custo de
// produto estornado quando o estoque retorna — abate o COGS do período.
type Refund struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	Amount            float64   `json:"amount"`
	TotalCOGSReversed float64   `json:"total_cogs_reversed"`
	ProcessedAt       time.Time `json:"processed_at"`
}

// Transaction representa uma transação de pagamento de um pedido
type Transaction struct {
	ID                   string  `json:"id"`
	OrderID              string  `json:"order_id"`
	Gateway              string  `json:"gateway"`
	Amount               float64 `json:"amount"`
	PaymentFee           float64 `json:"payment_fee"`
	PaymentFeeCalculated bool    `json:"payment_fee_calculated"`
}
