package customers

import (
	"fmt"
	"sync"
	"time"

	"github.com/profitlens/profit-dashboard-api/infrastructure/repository"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/reporting"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

// Percentuais estimados de taxas e frete sobre a receita, usados apenas no
// ROAS de equilíbrio quando calculamos a razão de custo variável
const (
	estimatedFeeRate      = 0.03
	estimatedShippingRate = 0.05
	defaultBreakEvenROAS  = 2.0
)

type MetricsProvider interface {
	GetCustomerMetrics(teamID string, filters *domain.ReportFilters) (*domain.CustomerMetrics, error)
}

// MetricsService calcula a economia de clientes do time: LTV, CAC, taxa de
// recompra e ROAS de equilíbrio. A receita por cliente usa a MESMA convenção
// sem IVA do demonstrativo — os dois aparecem lado a lado no dashboard e não
// podem divergir.
type MetricsService struct {
	storeRepo   repository.StoreRepository
	orderRepo   repository.OrderRepository
	adSpendRepo repository.AdSpendRepository
	reporter    reporting.Reporter
}

func NewMetricsService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	adSpendRepo repository.AdSpendRepository,
	reporter reporting.Reporter,
) *MetricsService {
	return &MetricsService{
		storeRepo:   storeRepo,
		orderRepo:   orderRepo,
		adSpendRepo: adSpendRepo,
		reporter:    reporter,
	}
}

func (s *MetricsService) GetCustomerMetrics(teamID string, filters *domain.ReportFilters) (*domain.CustomerMetrics, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	stores, err := s.resolveStores(teamID, filters)
	if err != nil {
		return nil, err
	}

	var (
		orders    []*domain.CustomerOrder
		adSpend   map[string]float64
		statement *domain.ProfitLossStatement

		ordersErr    error
		adSpendErr   error
		statementErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		orders, ordersErr = s.loadCustomerOrders(stores, *filters.EndDate)
	}()

	go func() {
		defer wg.Done()
		adSpend, adSpendErr = s.adSpendRepo.SumSpendByPlatform(teamID, *filters.StartDate, *filters.EndDate)
	}()

	go func() {
		defer wg.Done()
		// O demonstrativo do período fornece COGS e receita para a razão de
		// custo variável do ROAS de equilíbrio
		statement, statementErr = s.reporter.GetProfitLoss(teamID, filters)
	}()

	wg.Wait()

	if ordersErr != nil {
		return nil, fmt.Errorf("erro ao carregar pedidos por cliente: %w", ordersErr)
	}
	if adSpendErr != nil {
		return nil, fmt.Errorf("erro ao carregar gastos de anúncios: %w", adSpendErr)
	}
	if statementErr != nil {
		return nil, fmt.Errorf("erro ao carregar o demonstrativo do período: %w", statementErr)
	}

	totalAdSpend := 0.0
	for _, spend := range adSpend {
		totalAdSpend += spend
	}

	metrics := buildCustomerMetrics(orders, totalAdSpend, statement, *filters.StartDate, *filters.EndDate)

	return metrics, nil
}

func (s *MetricsService) resolveStores(teamID string, filters *domain.ReportFilters) ([]*domain.Store, error) {
	if filters.StoreID != nil {
		store, err := s.storeRepo.GetByID(*filters.StoreID)
		if err != nil {
			return nil, err
		}

		if store == nil || store.TeamID != teamID {
			return nil, fmt.Errorf("loja não encontrada: %s", *filters.StoreID)
		}

		return []*domain.Store{store}, nil
	}

	return s.storeRepo.ListByTeam(teamID)
}

func (s *MetricsService) loadCustomerOrders(stores []*domain.Store, until time.Time) ([]*domain.CustomerOrder, error) {
	orders := make([]*domain.CustomerOrder, 0)

	for _, store := range stores {
		storeOrders, err := s.orderRepo.ListCustomerOrders(store.ID, until)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar pedidos da loja %s: %w", store.ID, err)
		}

		orders = append(orders, storeOrders...)
	}

	return orders, nil
}

// buildCustomerMetrics computa os indicadores sobre o corpus de pedidos por
// cliente. Função pura. "Cliente novo" é o cliente cujo PRIMEIRO pedido de
// toda a história cai dentro do período — não basta ser o primeiro pedido
// dentro da janela consultada.
func buildCustomerMetrics(
	orders []*domain.CustomerOrder,
	periodAdSpend float64,
	statement *domain.ProfitLossStatement,
	periodStart, periodEnd time.Time,
) *domain.CustomerMetrics {
	type customerStats struct {
		firstOrderAt time.Time
		orderCount   int
		revenue      float64
	}

	allTime := make(map[string]*customerStats)
	periodCustomers := make(map[string]bool)

	periodOrderCount := 0
	periodRevenue := 0.0

	for _, order := range orders {
		stats, ok := allTime[order.CustomerID]
		if !ok {
			stats = &customerStats{firstOrderAt: order.ProcessedAt}
			allTime[order.CustomerID] = stats
		}

		if order.ProcessedAt.Before(stats.firstOrderAt) {
			stats.firstOrderAt = order.ProcessedAt
		}

		stats.orderCount++
		stats.revenue += order.NetRevenue

		if !order.ProcessedAt.Before(periodStart) && !order.ProcessedAt.After(periodEnd) {
			periodCustomers[order.CustomerID] = true
			periodOrderCount++
			periodRevenue += order.NetRevenue
		}
	}

	newCustomers := 0
	for customerID := range periodCustomers {
		first := allTime[customerID].firstOrderAt
		if !first.Before(periodStart) && !first.After(periodEnd) {
			newCustomers++
		}
	}

	repeatCustomers := 0
	allTimeOrders := 0
	allTimeRevenue := 0.0
	for _, stats := range allTime {
		if stats.orderCount > 1 {
			repeatCustomers++
		}
		allTimeOrders += stats.orderCount
		allTimeRevenue += stats.revenue
	}

	metrics := &domain.CustomerMetrics{
		Period: domain.ReportPeriod{
			StartDate: periodStart.Format(time.DateOnly),
			EndDate:   periodEnd.Format(time.DateOnly),
			Days:      int(periodEnd.Sub(periodStart).Hours()/24) + 1,
		},
		TotalCustomers:     len(periodCustomers),
		NewCustomers:       newCustomers,
		ReturningCustomers: len(periodCustomers) - newCustomers,
	}

	if len(allTime) > 0 {
		metrics.RepeatRate = utils.RoundWithOneDecimalPlace(float64(repeatCustomers) / float64(len(allTime)) * 100)
		metrics.AvgOrdersPerCustomer = utils.RoundWithTwoDecimalPlace(float64(allTimeOrders) / float64(len(allTime)))
		metrics.LTV = utils.RoundWithTwoDecimalPlace(allTimeRevenue / float64(len(allTime)))
	}

	if newCustomers > 0 && periodAdSpend > 0 {
		metrics.CAC = utils.RoundWithTwoDecimalPlace(periodAdSpend / float64(newCustomers))
	}

	if metrics.CAC > 0 {
		metrics.LTVCACRatio = utils.RoundWithTwoDecimalPlace(metrics.LTV / metrics.CAC)
	}

	if periodOrderCount > 0 {
		metrics.AverageOrderValue = utils.RoundWithTwoDecimalPlace(periodRevenue / float64(periodOrderCount))
	}

	metrics.BreakEvenROAS = breakEvenROAS(statement)
	metrics.Insights = buildInsights(metrics)

	return metrics
}

// breakEvenROAS deriva o ROAS mínimo para aquisição de clientes novos a partir
// da razão de custo variável do período: COGS mais estimativas de taxas (3%) e
// frete (5%) sobre a receita sem IVA. Sem base para o cálculo, devolve o
// padrão conservador de 2.0.
func breakEvenROAS(statement *domain.ProfitLossStatement) float64 {
	if statement == nil || statement.Revenue.RevenueExVAT <= 0 {
		return defaultBreakEvenROAS
	}

	revenue := statement.Revenue.RevenueExVAT
	variableCosts := statement.COGS.ProductCosts + revenue*estimatedFeeRate + revenue*estimatedShippingRate

	ratio := variableCosts / revenue
	if ratio >= 1 || ratio < 0 {
		return defaultBreakEvenROAS
	}

	return utils.RoundWithTwoDecimalPlace(1 / (1 - ratio))
}

// buildInsights gera mensagens qualitativas de apoio — dicas de apresentação,
// nunca parte do contrato numérico
func buildInsights(metrics *domain.CustomerMetrics) []string {
	insights := make([]string, 0)

	switch {
	case metrics.CAC == 0:
		insights = append(insights, "Sem clientes novos adquiridos com anúncios no período — CAC indisponível")
	case metrics.LTVCACRatio >= 3:
		insights = append(insights, fmt.Sprintf("Relação LTV:CAC saudável (%.1fx) — há espaço para investir mais em aquisição", metrics.LTVCACRatio))
	case metrics.LTVCACRatio >= 1:
		insights = append(insights, fmt.Sprintf("Relação LTV:CAC apertada (%.1fx) — o custo de aquisição consome boa parte do valor do cliente", metrics.LTVCACRatio))
	default:
		insights = append(insights, fmt.Sprintf("Relação LTV:CAC abaixo de 1 (%.1fx) — cada cliente novo custa mais do que retorna", metrics.LTVCACRatio))
	}

	switch {
	case metrics.RepeatRate >= 30:
		insights = append(insights, fmt.Sprintf("Taxa de recompra forte (%.1f%%) — a base de clientes volta a comprar", metrics.RepeatRate))
	case metrics.RepeatRate < 15:
		insights = append(insights, fmt.Sprintf("Taxa de recompra baixa (%.1f%%) — o crescimento depende quase só de clientes novos", metrics.RepeatRate))
	}

	return insights
}
