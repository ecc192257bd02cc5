package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Cenário de referência: um pedido com subtotal 400 (sem IVA), frete 50,
// imposto 112.50 (IVA de 25%), um item de custo 100 e quantidade 2, frete real
// de 32.00 e uma transação Stripe com a tabela padrão de taxas.
func referenceInput() *pnlInput {
	order := &domain.Order{
		ID:                 "order-1",
		StoreID:            "store-1",
		CustomerID:         stringPtr("cust-1"),
		SubtotalPrice:      400.0,
		TotalShippingPrice: 50.0,
		TotalTax:           112.5,
		TotalDiscounts:     0,
		TotalPrice:         562.5,
		FinancialStatus:    domain.FinancialStatusPaid,
		ProcessedAt:        date(2024, 1, 10),
		LineItems: []*domain.OrderLineItem{
			{ID: "item-1", OrderID: "order-1", VariantID: stringPtr("v1"), Quantity: 2, Price: 200.0},
		},
		Transactions: []*domain.Transaction{
			{ID: "tx-1", OrderID: "order-1", Gateway: "stripe", Amount: 562.5},
		},
	}

	return &pnlInput{
		stores: []*storeInput{
			{
				store:          &domain.Store{ID: "store-1", TeamID: "team-1", Currency: "EUR"},
				orders:         []*domain.Order{order},
				tiers:          []*domain.ShippingTier{{MinItems: 1, MaxItems: nil, Cost: 32.0}},
				exemptVariants: map[string]bool{},
				feeConfigs:     map[string]*domain.PaymentFeeConfig{},
			},
		},
		costHistories: map[string][]*domain.CostEntry{
			"v1": {{VariantID: "v1", CostPrice: 100.0, EffectiveFrom: date(2023, 1, 1)}},
		},
		adSpend:     map[string]float64{},
		periodStart: date(2024, 1, 1),
		periodEnd:   date(2024, 1, 31),
		taxRate:     22.0,
	}
}

func TestBuildProfitLoss_CenarioCompleto(t *testing.T) {
	statement := buildProfitLoss(referenceInput())

	// Receita: o bruto concilia com a plataforma, a base de lucro é sem IVA
	assert.Equal(t, 562.5, statement.Revenue.GrossRevenue)
	assert.Equal(t, 450.0, statement.Revenue.RevenueExVAT)
	assert.Equal(t, 400.0, statement.Revenue.Subtotal)
	assert.Equal(t, 50.0, statement.Revenue.ShippingRevenue)
	assert.Equal(t, 112.5, statement.Revenue.Tax)

	// COGS: 100 × 2, frete real fica fora
	assert.Equal(t, 200.0, statement.COGS.ProductCosts)
	assert.Equal(t, 100.0, statement.COGS.CoveragePercent)

	assert.Equal(t, 250.0, statement.GrossProfit)
	assert.InDelta(t, 55.6, statement.GrossMargin, 0.05)

	// Opex: frete real 32.00 + taxa Stripe 562.5 × 2.9% + 3.00 = 19.31
	assert.Equal(t, 32.0, statement.OperatingExpenses.ShippingCosts)
	assert.InDelta(t, 19.31, statement.OperatingExpenses.TotalFees, 0.001)
	assert.InDelta(t, 51.31, statement.OperatingExpenses.Total, 0.001)

	assert.InDelta(t, 198.69, statement.OperatingProfit, 0.001)
	assert.InDelta(t, 198.69, statement.NetProfit, 0.001)
	assert.InDelta(t, 44.2, statement.NetMargin, 0.05)

	// Reconciliação: netProfit = revenueExVat − productCosts − opex
	assert.InDelta(t,
		statement.Revenue.RevenueExVAT-statement.COGS.ProductCosts-statement.OperatingExpenses.Total,
		statement.NetProfit,
		0.001,
	)

	// Imposto estimado é informativo: nunca deduzido do lucro líquido
	assert.InDelta(t, 198.69*0.22, statement.EstimatedTax.Amount, 0.01)
	assert.Equal(t, 22.0, statement.EstimatedTax.Rate)

	assert.Equal(t, 1, statement.Summary.OrderCount)
	assert.Equal(t, 450.0, statement.Summary.AverageOrderValue)
	assert.Equal(t, 31, statement.Period.Days)
	assert.Equal(t, "EUR", statement.Currency)
}

func TestBuildProfitLoss_IdentidadeDeReceita(t *testing.T) {
	statement := buildProfitLoss(referenceInput())

	assert.Equal(t,
		statement.Revenue.Subtotal+statement.Revenue.ShippingRevenue+statement.Revenue.Tax,
		statement.Revenue.GrossRevenue,
	)
}

func TestBuildProfitLoss_MargensComReceitaZero(t *testing.T) {
	input := referenceInput()
	input.stores[0].orders = nil
	input.customCosts = []*domain.CustomCost{
		{ID: "c1", Name: "Aluguel", CostType: domain.CostTypeFixed, RecurrenceType: domain.RecurrenceMonthly, MonthlyAmount: 3100.0, IsActive: true},
	}

	statement := buildProfitLoss(input)

	// Base zero nunca vira NaN ou infinito, mesmo com prejuízo
	assert.Equal(t, 0.0, statement.Revenue.RevenueExVAT)
	assert.True(t, statement.NetProfit < 0)
	assert.Equal(t, 0.0, statement.GrossMargin)
	assert.Equal(t, 0.0, statement.OperatingMargin)
	assert.Equal(t, 0.0, statement.NetMargin)

	// Sem lucro, sem imposto estimado
	assert.Equal(t, 0.0, statement.EstimatedTax.Amount)
}

func TestBuildProfitLoss_ReembolsoSemRegistros(t *testing.T) {
	input := referenceInput()
	order := input.stores[0].orders[0]
	order.TotalRefundAmount = 50.0
	order.Refunds = nil

	statement := buildProfitLoss(input)

	// Sem registros de reembolso, vale o campo agregado do pedido
	assert.Equal(t, 50.0, statement.Revenue.Refunds)
	assert.Equal(t, 400.0, statement.Revenue.RevenueExVAT)
}

func TestBuildProfitLoss_ReembolsoComRegistros(t *testing.T) {
	input := referenceInput()
	order := input.stores[0].orders[0]
	order.TotalRefundAmount = 999.0 // campo agregado desatualizado
	order.Refunds = []*domain.Refund{
		{ID: "r1", OrderID: order.ID, Amount: 80.0, TotalCOGSReversed: 100.0, ProcessedAt: date(2024, 1, 12)},
	}

	statement := buildProfitLoss(input)

	// Registros explícitos vencem o campo agregado
	assert.Equal(t, 80.0, statement.Revenue.Refunds)

	// Estorno de COGS abate o custo de produto do período
	assert.Equal(t, 100.0, statement.COGS.ProductCosts)
	assert.Equal(t, 100.0, statement.COGS.COGSReversed)
}

func TestBuildProfitLoss_CustoSemHistorico(t *testing.T) {
	input := referenceInput()
	input.costHistories = map[string][]*domain.CostEntry{}

	statement := buildProfitLoss(input)

	// Custo desconhecido contribui com zero e aparece na completude, nunca erro
	assert.Equal(t, 0.0, statement.COGS.ProductCosts)
	assert.Equal(t, 0.0, statement.COGS.CoveragePercent)
	assert.Equal(t, 450.0, statement.GrossProfit)
}

func TestBuildProfitLoss_CustosRecorrentesEDiscretos(t *testing.T) {
	input := referenceInput()
	input.customCosts = []*domain.CustomCost{
		{ID: "c1", Name: "Aluguel", CostType: domain.CostTypeFixed, RecurrenceType: domain.RecurrenceMonthly, MonthlyAmount: 3100.0, IsActive: true},
		{ID: "c2", Name: "Contador", CostType: domain.CostTypeSalary, RecurrenceType: domain.RecurrenceMonthly, MonthlyAmount: 1550.0, IsActive: true},
		{ID: "c3", Name: "Embalagens", CostType: domain.CostTypeVariable, RecurrenceType: domain.RecurrenceNone, IsActive: true},
		{ID: "c4", Name: "Setup da loja", CostType: domain.CostTypeOneTime, RecurrenceType: domain.RecurrenceNone, IsActive: true},
	}
	input.costEntries = []*domain.CustomCostEntry{
		{ID: "e1", CustomCostID: "c3", Amount: 120.0, Date: date(2024, 1, 5)},
		{ID: "e2", CustomCostID: "c4", Amount: 500.0, Date: date(2024, 1, 8)},
		// Lançamento contra custo rateado: ignorado para não contar em dobro
		{ID: "e3", CustomCostID: "c1", Amount: 3100.0, Date: date(2024, 1, 1)},
	}

	statement := buildProfitLoss(input)

	// Janeiro inteiro: rateio devolve o valor mensal cheio
	assert.Equal(t, 3100.0, statement.OperatingExpenses.FixedCosts["Aluguel"])
	assert.Equal(t, 3100.0, statement.OperatingExpenses.TotalFixed)
	assert.Equal(t, 1550.0, statement.OperatingExpenses.Salaries)
	assert.Equal(t, 120.0, statement.OperatingExpenses.VariableCosts["Embalagens"])
	assert.Equal(t, 500.0, statement.OperatingExpenses.OneTimeCosts)
}

func TestBuildProfitLoss_GastoDeAnunciosPorPlataforma(t *testing.T) {
	input := referenceInput()
	input.adSpend = map[string]float64{
		"Facebook": 100.0,
		"Google":   50.0,
	}

	statement := buildProfitLoss(input)

	assert.Equal(t, 100.0, statement.OperatingExpenses.AdSpend["Facebook"])
	assert.Equal(t, 50.0, statement.OperatingExpenses.AdSpend["Google"])
	assert.Equal(t, 150.0, statement.OperatingExpenses.TotalAdSpend)
}

func TestBuildOrderProfits(t *testing.T) {
	profits := buildOrderProfits(referenceInput())

	assert.Len(t, profits, 1)

	profit := profits[0]
	assert.Equal(t, "order-1", profit.OrderID)
	assert.Equal(t, 450.0, profit.RevenueExVAT)
	assert.Equal(t, 200.0, profit.ProductCosts)
	assert.Equal(t, 32.0, profit.ShippingCost)
	assert.InDelta(t, 19.31, profit.PaymentFees, 0.001)
	assert.InDelta(t, 198.69, profit.Profit, 0.001)
	assert.True(t, profit.COGSKnown)
}

func TestBuildOrderProfits_CustoDesconhecido(t *testing.T) {
	input := referenceInput()
	input.costHistories = map[string][]*domain.CostEntry{}

	profits := buildOrderProfits(input)

	assert.Len(t, profits, 1)
	assert.False(t, profits[0].COGSKnown)
	assert.Equal(t, 0.0, profits[0].ProductCosts)
}
