package domain

import (
	"time"
)

// CustomerOrder é a projeção mínima de um pedido usada nos cálculos de
// economia de clientes. NetRevenue usa a MESMA fórmula sem IVA do
// demonstrativo (subtotal − descontos − reembolsos + frete).
type CustomerOrder struct {
	CustomerID  string
	ProcessedAt time.Time
	NetRevenue  float64
}

// CustomerMetrics reúne os indicadores de economia de clientes do período
type CustomerMetrics struct {
	Period               ReportPeriod `json:"period"`
	TotalCustomers       int          `json:"total_customers"`
	NewCustomers         int          `json:"new_customers"`
	ReturningCustomers   int          `json:"returning_customers"`
	RepeatRate           float64      `json:"repeat_rate"`
	AvgOrdersPerCustomer float64      `json:"avg_orders_per_customer"`
	LTV                  float64      `json:"ltv"`
	CAC                  float64      `json:"cac"`
	LTVCACRatio          float64      `json:"ltv_cac_ratio"`
	AverageOrderValue    float64      `json:"average_order_value"`
	BreakEvenROAS        float64      `json:"break_even_roas"`
	Insights             []string     `json:"insights"`
}
