package domain

// ShippingTier representa uma faixa de custo de frete da loja: o custo real de
// envio em função da quantidade de itens físicos, independente do que o
// cliente pagou de frete.
type ShippingTier struct {
	ID                    string  `json:"id"`
	StoreID               string  `json:"store_id"`
	MinItems              int     `json:"min_items"`
	MaxItems              *int    `json:"max_items"`
	Cost                  float64 `json:"cost"`
	CostPerAdditionalItem float64 `json:"cost_per_additional_item"`
	ShippingZone          *string `json:"shipping_zone"`
	IsActive              bool    `json:"is_active"`
}

// MatchesZone indica se a faixa vale para a zona informada. Faixas sem zona
// valem para qualquer zona.
func (t *ShippingTier) MatchesZone(zone string) bool {
	if t.ShippingZone == nil || *t.ShippingZone == "" {
		return true
	}

	if zone == "" {
		return false
	}

	return *t.ShippingZone == zone
}
