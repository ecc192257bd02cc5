package domain

import (
	"time"
)

// ReportFilters delimita o período e, opcionalmente, a loja de um relatório
type ReportFilters struct {
	StoreID   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// ReportPeriod descreve o período coberto pelo relatório
type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// RevenueBreakdown detalha a receita do período. GrossRevenue reproduz
// exatamente o número bruto da plataforma (subtotal + frete + imposto) para
// permitir a conciliação; RevenueExVAT é a base de todos os lucros.
type RevenueBreakdown struct {
	Subtotal        float64 `json:"subtotal"`
	ShippingRevenue float64 `json:"shipping_revenue"`
	Tax             float64 `json:"tax"`
	Discounts       float64 `json:"discounts"`
	Refunds         float64 `json:"refunds"`
	GrossRevenue    float64 `json:"gross_revenue"`
	RevenueExVAT    float64 `json:"revenue_ex_vat"`
}

// COGSBreakdown detalha o custo dos produtos vendidos. CoveragePercent indica
// quanto da receita de itens tem custo conhecido (sinal de completude de
// dados, nunca um erro).
type COGSBreakdown struct {
	ProductCosts    float64 `json:"product_costs"`
	COGSReversed    float64 `json:"cogs_reversed"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// OperatingExpenses agrupa as despesas operacionais por categoria. O custo
// real de frete entra aqui (Fulfillment), não no COGS.
type OperatingExpenses struct {
	AdSpend        map[string]float64 `json:"ad_spend"`
	TotalAdSpend   float64            `json:"total_ad_spend"`
	PaymentFees    map[string]float64 `json:"payment_fees"`
	TotalFees      float64            `json:"total_fees"`
	ShippingCosts  float64            `json:"shipping_costs"`
	FixedCosts     map[string]float64 `json:"fixed_costs"`
	TotalFixed     float64            `json:"total_fixed"`
	VariableCosts  map[string]float64 `json:"variable_costs"`
	TotalVariable  float64            `json:"total_variable"`
	Salaries       float64            `json:"salaries"`
	OneTimeCosts   float64            `json:"one_time_costs"`
	Total          float64            `json:"total"`
}

// TaxEstimate é o imposto de renda estimado — apenas informativo, nunca
// deduzido do lucro líquido apresentado
type TaxEstimate struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// SummaryMetrics traz os indicadores resumidos do período
type SummaryMetrics struct {
	OrderCount          int     `json:"order_count"`
	AverageOrderValue   float64 `json:"average_order_value"`
	ProfitPerOrder      float64 `json:"profit_per_order"`
	DailyAverageRevenue float64 `json:"daily_average_revenue"`
	DailyAverageProfit  float64 `json:"daily_average_profit"`
}

// ProfitLossStatement é o demonstrativo de resultados completo do período.
// Todas as superfícies de relatório (dashboard, DRE, lucro por pedido) derivam
// da mesma computação para nunca divergirem no número final.
type ProfitLossStatement struct {
	Period            ReportPeriod      `json:"period"`
	Currency          string            `json:"currency"`
	Revenue           RevenueBreakdown  `json:"revenue"`
	COGS              COGSBreakdown     `json:"cogs"`
	GrossProfit       float64           `json:"gross_profit"`
	GrossMargin       float64           `json:"gross_margin"`
	OperatingExpenses OperatingExpenses `json:"operating_expenses"`
	OperatingProfit   float64           `json:"operating_profit"`
	OperatingMargin   float64           `json:"operating_margin"`
	TotalCosts        float64           `json:"total_costs"`
	NetProfit         float64           `json:"net_profit"`
	NetMargin         float64           `json:"net_margin"`
	EstimatedTax      TaxEstimate       `json:"estimated_tax"`
	Summary           SummaryMetrics    `json:"summary"`
}

// DashboardSummary é a visão resumida do dashboard — derivada do mesmo
// demonstrativo, nunca recalculada com outra convenção
type DashboardSummary struct {
	Period            ReportPeriod `json:"period"`
	GrossRevenue      float64      `json:"gross_revenue"`
	RevenueExVAT      float64      `json:"revenue_ex_vat"`
	NetProfit         float64      `json:"net_profit"`
	NetMargin         float64      `json:"net_margin"`
	OrderCount        int          `json:"order_count"`
	AverageOrderValue float64      `json:"average_order_value"`
	AdSpend           float64      `json:"ad_spend"`
	ROAS              float64      `json:"roas"`
}

// OrderProfit é o lucro calculado de um pedido individual
type OrderProfit struct {
	OrderID      string  `json:"order_id"`
	ProcessedAt  string  `json:"processed_at"`
	RevenueExVAT float64 `json:"revenue_ex_vat"`
	ProductCosts float64 `json:"product_costs"`
	ShippingCost float64 `json:"shipping_cost"`
	PaymentFees  float64 `json:"payment_fees"`
	Profit       float64 `json:"profit"`
	Margin       float64 `json:"margin"`
	COGSKnown    bool    `json:"cogs_known"`
}
