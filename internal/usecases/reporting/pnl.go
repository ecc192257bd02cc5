package reporting

import (
	"time"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/calculating"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

// storeInput agrupa os dados escopados por loja que alimentam o demonstrativo
type storeInput struct {
	store          *domain.Store
	orders         []*domain.Order
	tiers          []*domain.ShippingTier
	exemptVariants map[string]bool
	feeConfigs     map[string]*domain.PaymentFeeConfig
}

// pnlInput é o insumo completo de um demonstrativo: tudo já carregado do
// banco, nenhum acesso a rede ou storage acontece a partir daqui
type pnlInput struct {
	stores        []*storeInput
	costHistories map[string][]*domain.CostEntry
	adSpend       map[string]float64
	customCosts   []*domain.CustomCost
	costEntries   []*domain.CustomCostEntry
	periodStart   time.Time
	periodEnd     time.Time
	taxRate       float64
}

// buildProfitLoss transforma o insumo em um demonstrativo completo. Função
// pura: a mesma entrada produz sempre o mesmo demonstrativo.
//
// Convenção de receita: grossRevenue reproduz o número bruto da plataforma
// (subtotal + frete + imposto) e serve só para conciliação; toda a cadeia de
// lucro parte de revenueExVat = subtotal + frete − descontos − reembolsos.
// O subtotal já vem sem IVA, então o imposto nunca é subtraído de novo.
func buildProfitLoss(input *pnlInput) *domain.ProfitLossStatement {
	var (
		totalSubtotal        float64
		totalShippingRevenue float64
		totalTax             float64
		totalDiscounts       float64
		totalRefunds         float64

		productCosts     float64
		cogsReversed     float64
		lineItemRevenue  float64
		knownCostRevenue float64

		shippingCosts float64
		orderCount    int
	)

	paymentFees := make(map[string]float64)

	for _, store := range input.stores {
		for _, order := range store.orders {
			orderCount++

			totalSubtotal += order.SubtotalPrice
			totalShippingRevenue += order.TotalShippingPrice
			totalTax += order.TotalTax
			totalDiscounts += order.TotalDiscounts
			totalRefunds += order.RefundedAmount()

			for _, item := range order.LineItems {
				itemRevenue := item.Price * float64(item.Quantity)
				lineItemRevenue += itemRevenue

				if item.VariantID == nil {
					continue
				}

				cost := calculating.ResolveCostAtDate(input.costHistories[*item.VariantID], order.ProcessedAt)
				if cost == nil {
					continue
				}

				productCosts += *cost * float64(item.Quantity)
				knownCostRevenue += itemRevenue
			}

			for _, refund := range order.Refunds {
				cogsReversed += refund.TotalCOGSReversed
			}

			physicalItems := calculating.CountPhysicalItems(order.LineItems, store.exemptVariants)
			shippingCosts += calculating.CalculateShippingCost(physicalItems, store.tiers, "")

			for _, tx := range order.Transactions {
				fee := calculating.ResolvePaymentFee(tx, store.feeConfigs)
				if fee > 0 {
					paymentFees[calculating.NormalizeGatewayName(tx.Gateway)] += fee
				}
			}
		}
	}

	productCosts -= cogsReversed

	grossRevenue := totalSubtotal + totalShippingRevenue + totalTax
	revenueExVat := totalSubtotal + totalShippingRevenue - totalDiscounts - totalRefunds

	coverage := 0.0
	if lineItemRevenue > 0 {
		coverage = knownCostRevenue / lineItemRevenue * 100
	}

	opex := buildOperatingExpenses(input, paymentFees, shippingCosts)

	grossProfit := revenueExVat - productCosts
	operatingProfit := grossProfit - opex.Total
	totalCosts := productCosts + opex.Total
	netProfit := revenueExVat - totalCosts

	taxAmount := 0.0
	if netProfit > 0 {
		taxAmount = netProfit * input.taxRate / 100
	}

	days := inclusiveDays(input.periodStart, input.periodEnd)

	currency := ""
	if len(input.stores) > 0 && input.stores[0].store != nil {
		currency = input.stores[0].store.Currency
	}

	statement := &domain.ProfitLossStatement{
		Period: domain.ReportPeriod{
			StartDate: input.periodStart.Format(time.DateOnly),
			EndDate:   input.periodEnd.Format(time.DateOnly),
			Days:      days,
		},
		Currency: currency,
		Revenue: domain.RevenueBreakdown{
			Subtotal:        utils.RoundWithTwoDecimalPlace(totalSubtotal),
			ShippingRevenue: utils.RoundWithTwoDecimalPlace(totalShippingRevenue),
			Tax:             utils.RoundWithTwoDecimalPlace(totalTax),
			Discounts:       utils.RoundWithTwoDecimalPlace(totalDiscounts),
			Refunds:         utils.RoundWithTwoDecimalPlace(totalRefunds),
			GrossRevenue:    utils.RoundWithTwoDecimalPlace(grossRevenue),
			RevenueExVAT:    utils.RoundWithTwoDecimalPlace(revenueExVat),
		},
		COGS: domain.COGSBreakdown{
			ProductCosts:    utils.RoundWithTwoDecimalPlace(productCosts),
			COGSReversed:    utils.RoundWithTwoDecimalPlace(cogsReversed),
			CoveragePercent: utils.RoundWithOneDecimalPlace(coverage),
		},
		GrossProfit:       utils.RoundWithTwoDecimalPlace(grossProfit),
		GrossMargin:       marginPercent(grossProfit, revenueExVat),
		OperatingExpenses: opex,
		OperatingProfit:   utils.RoundWithTwoDecimalPlace(operatingProfit),
		OperatingMargin:   marginPercent(operatingProfit, revenueExVat),
		TotalCosts:        utils.RoundWithTwoDecimalPlace(totalCosts),
		NetProfit:         utils.RoundWithTwoDecimalPlace(netProfit),
		NetMargin:         marginPercent(netProfit, revenueExVat),
		EstimatedTax: domain.TaxEstimate{
			Rate:   input.taxRate,
			Amount: utils.RoundWithTwoDecimalPlace(taxAmount),
		},
		Summary: buildSummary(orderCount, revenueExVat, netProfit, days),
	}

	return statement
}

// buildOperatingExpenses monta as despesas operacionais: gasto de anúncios por
// plataforma, taxas por gateway, frete real (Fulfillment — nunca COGS), custos
// fixos/variáveis/salários/pontuais do time. Custos mensais recorrentes
// FIXED/SALARY entram rateados pelo período; os demais pelos lançamentos.
func buildOperatingExpenses(input *pnlInput, paymentFees map[string]float64, shippingCosts float64) domain.OperatingExpenses {
	opex := domain.OperatingExpenses{
		AdSpend:       make(map[string]float64),
		PaymentFees:   make(map[string]float64),
		FixedCosts:    make(map[string]float64),
		VariableCosts: make(map[string]float64),
	}

	for platform, spend := range input.adSpend {
		rounded := utils.RoundWithTwoDecimalPlace(spend)
		opex.AdSpend[platform] = rounded
		opex.TotalAdSpend += rounded
	}

	for gateway, fee := range paymentFees {
		rounded := utils.RoundWithTwoDecimalPlace(fee)
		opex.PaymentFees[gateway] = rounded
		opex.TotalFees += rounded
	}

	opex.ShippingCosts = utils.RoundWithTwoDecimalPlace(shippingCosts)

	costsByID := make(map[string]*domain.CustomCost, len(input.customCosts))
	for _, cost := range input.customCosts {
		costsByID[cost.ID] = cost

		if !cost.IsMonthlyRecurring() {
			continue
		}

		distributed := calculating.DistributeMonthlyCost(cost.MonthlyAmount, input.periodStart, input.periodEnd)
		if distributed == 0 {
			continue
		}

		switch cost.CostType {
		case domain.CostTypeSalary:
			opex.Salaries += utils.RoundWithTwoDecimalPlace(distributed)
		default:
			opex.FixedCosts[cost.Name] += utils.RoundWithTwoDecimalPlace(distributed)
		}
	}

	for _, entry := range input.costEntries {
		cost, ok := costsByID[entry.CustomCostID]
		if !ok {
			continue
		}

		// Lançamentos de custos rateados seriam contagem dupla
		if cost.IsMonthlyRecurring() {
			continue
		}

		amount := utils.RoundWithTwoDecimalPlace(entry.Amount)

		switch cost.CostType {
		case domain.CostTypeVariable:
			opex.VariableCosts[cost.Name] += amount
		case domain.CostTypeSalary:
			opex.Salaries += amount
		case domain.CostTypeOneTime:
			opex.OneTimeCosts += amount
		default:
			opex.FixedCosts[cost.Name] += amount
		}
	}

	for _, amount := range opex.FixedCosts {
		opex.TotalFixed += amount
	}

	for _, amount := range opex.VariableCosts {
		opex.TotalVariable += amount
	}

	opex.TotalAdSpend = utils.RoundWithTwoDecimalPlace(opex.TotalAdSpend)
	opex.TotalFees = utils.RoundWithTwoDecimalPlace(opex.TotalFees)
	opex.TotalFixed = utils.RoundWithTwoDecimalPlace(opex.TotalFixed)
	opex.TotalVariable = utils.RoundWithTwoDecimalPlace(opex.TotalVariable)
	opex.Salaries = utils.RoundWithTwoDecimalPlace(opex.Salaries)
	opex.OneTimeCosts = utils.RoundWithTwoDecimalPlace(opex.OneTimeCosts)

	opex.Total = utils.RoundWithTwoDecimalPlace(
		opex.TotalAdSpend + opex.TotalFees + opex.ShippingCosts +
			opex.TotalFixed + opex.TotalVariable + opex.Salaries + opex.OneTimeCosts,
	)

	return opex
}

// buildOrderProfits calcula o lucro de cada pedido individual com as mesmas
// convenções do demonstrativo agregado
func buildOrderProfits(input *pnlInput) []*domain.OrderProfit {
	profits := make([]*domain.OrderProfit, 0)

	for _, store := range input.stores {
		for _, order := range store.orders {
			revenue := order.SubtotalPrice + order.TotalShippingPrice - order.TotalDiscounts - order.RefundedAmount()

			productCosts := 0.0
			cogsKnown := true
			for _, item := range order.LineItems {
				if item.VariantID == nil {
					cogsKnown = false
					continue
				}

				cost := calculating.ResolveCostAtDate(input.costHistories[*item.VariantID], order.ProcessedAt)
				if cost == nil {
					cogsKnown = false
					continue
				}

				productCosts += *cost * float64(item.Quantity)
			}

			for _, refund := range order.Refunds {
				productCosts -= refund.TotalCOGSReversed
			}

			physicalItems := calculating.CountPhysicalItems(order.LineItems, store.exemptVariants)
			shippingCost := calculating.CalculateShippingCost(physicalItems, store.tiers, "")

			fees := 0.0
			for _, tx := range order.Transactions {
				fees += calculating.ResolvePaymentFee(tx, store.feeConfigs)
			}

			profit := revenue - productCosts - shippingCost - fees

			profits = append(profits, &domain.OrderProfit{
				OrderID:      order.ID,
				ProcessedAt:  order.ProcessedAt.Format(time.DateOnly),
				RevenueExVAT: utils.RoundWithTwoDecimalPlace(revenue),
				ProductCosts: utils.RoundWithTwoDecimalPlace(productCosts),
				ShippingCost: utils.RoundWithTwoDecimalPlace(shippingCost),
				PaymentFees:  utils.RoundWithTwoDecimalPlace(fees),
				Profit:       utils.RoundWithTwoDecimalPlace(profit),
				Margin:       marginPercent(profit, revenue),
				COGSKnown:    cogsKnown,
			})
		}
	}

	return profits
}

func buildSummary(orderCount int, revenueExVat, netProfit float64, days int) domain.SummaryMetrics {
	summary := domain.SummaryMetrics{
		OrderCount: orderCount,
	}

	if orderCount > 0 {
		summary.AverageOrderValue = utils.RoundWithTwoDecimalPlace(revenueExVat / float64(orderCount))
		summary.ProfitPerOrder = utils.RoundWithTwoDecimalPlace(netProfit / float64(orderCount))
	}

	if days > 0 {
		summary.DailyAverageRevenue = utils.RoundWithTwoDecimalPlace(revenueExVat / float64(days))
		summary.DailyAverageProfit = utils.RoundWithTwoDecimalPlace(netProfit / float64(days))
	}

	return summary
}

// marginPercent calcula uma margem em percentual com uma casa decimal.
// Base não positiva define a margem como 0 — nunca NaN ou infinito.
func marginPercent(numerator, base float64) float64 {
	if base <= 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(numerator / base * 100)
}

// inclusiveDays conta os dias do período, inclusivo nas duas pontas
func inclusiveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1
}
