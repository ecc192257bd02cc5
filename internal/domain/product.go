package domain

import (
	"time"
)

// Product representa um produto da loja. ShippingExempt marca produtos que não
// contam como itens físicos no cálculo de frete (ex.: produtos digitais).
type Product struct {
	ID             string    `json:"id"`
	StoreID        string    `json:"store_id"`
	Title          string    `json:"title"`
	ShippingExempt bool      `json:"shipping_exempt"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductVariant representa uma variante de produto com histórico de custos
type ProductVariant struct {
	ID             string       `json:"id"`
	ProductID      string       `json:"product_id"`
	SKU            *string      `json:"sku"`
	Title          string       `json:"title"`
	ShippingExempt bool         `json:"shipping_exempt"`
	CostHistory    []*CostEntry `json:"cost_history"`
}

// CostEntry representa o custo de uma variante vigente a partir de EffectiveFrom.
// No máximo uma entrada por variante fica "aberta" (EffectiveTo nulo).
type CostEntry struct {
	ID            string     `json:"id"`
	VariantID     string     `json:"variant_id"`
	CostPrice     float64    `json:"cost_price"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to"`
}

// IsOpen indica se a entrada de custo ainda está vigente (sem data de término)
func (c *CostEntry) IsOpen() bool {
	return c.EffectiveTo == nil
}
