package customers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/profitlens/profit-dashboard-api/infrastructure/repository/mocks"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	reportmocks "github.com/profitlens/profit-dashboard-api/internal/usecases/reporting/mocks"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func stringPtr(s string) *string {
	return &s
}

func periodStatement(revenueExVat, productCosts float64) *domain.ProfitLossStatement {
	return &domain.ProfitLossStatement{
		Revenue: domain.RevenueBreakdown{RevenueExVAT: revenueExVat},
		COGS:    domain.COGSBreakdown{ProductCosts: productCosts},
	}
}

func TestBuildCustomerMetrics(t *testing.T) {
	periodStart := date(2024, 1, 1)
	periodEnd := date(2024, 1, 31)

	t.Run("deve manter LTV e CAC consistentes com o cenário de referência", func(t *testing.T) {
		// Dois clientes na história toda com receita 1000 e 3000 (LTV 2000);
		// um cliente novo no período com gasto de anúncios 500 (CAC 500)
		orders := []*domain.CustomerOrder{
			{CustomerID: "a", ProcessedAt: date(2023, 6, 1), NetRevenue: 1000.0},
			{CustomerID: "b", ProcessedAt: date(2024, 1, 10), NetRevenue: 3000.0},
		}

		metrics := buildCustomerMetrics(orders, 500.0, periodStatement(3000.0, 900.0), periodStart, periodEnd)

		assert.Equal(t, 2000.0, metrics.LTV)
		assert.Equal(t, 500.0, metrics.CAC)
		assert.Equal(t, 4.0, metrics.LTVCACRatio)
		assert.Equal(t, 1, metrics.NewCustomers)
		assert.Equal(t, 1, metrics.TotalCustomers)
		assert.Equal(t, 0, metrics.ReturningCustomers)
	})

	t.Run("deve distinguir cliente novo de recorrente pelo primeiro pedido da história", func(t *testing.T) {
		orders := []*domain.CustomerOrder{
			// Cliente antigo que volta a comprar no período: recorrente
			{CustomerID: "a", ProcessedAt: date(2023, 6, 1), NetRevenue: 100.0},
			{CustomerID: "a", ProcessedAt: date(2024, 1, 5), NetRevenue: 150.0},
			// Primeiro pedido da história dentro do período: novo
			{CustomerID: "b", ProcessedAt: date(2024, 1, 10), NetRevenue: 200.0},
		}

		metrics := buildCustomerMetrics(orders, 0, nil, periodStart, periodEnd)

		assert.Equal(t, 2, metrics.TotalCustomers)
		assert.Equal(t, 1, metrics.NewCustomers)
		assert.Equal(t, 1, metrics.ReturningCustomers)
		assert.Equal(t, 50.0, metrics.RepeatRate)
		assert.Equal(t, 1.5, metrics.AvgOrdersPerCustomer)
	})

	t.Run("deve zerar CAC e razão quando não há clientes novos", func(t *testing.T) {
		orders := []*domain.CustomerOrder{
			{CustomerID: "a", ProcessedAt: date(2023, 6, 1), NetRevenue: 100.0},
			{CustomerID: "a", ProcessedAt: date(2024, 1, 5), NetRevenue: 150.0},
		}

		metrics := buildCustomerMetrics(orders, 500.0, nil, periodStart, periodEnd)

		assert.Equal(t, 0.0, metrics.CAC)
		assert.Equal(t, 0.0, metrics.LTVCACRatio)
	})

	t.Run("deve calcular o ticket médio só com os pedidos do período", func(t *testing.T) {
		orders := []*domain.CustomerOrder{
			{CustomerID: "a", ProcessedAt: date(2023, 6, 1), NetRevenue: 9999.0},
			{CustomerID: "a", ProcessedAt: date(2024, 1, 5), NetRevenue: 100.0},
			{CustomerID: "b", ProcessedAt: date(2024, 1, 10), NetRevenue: 200.0},
		}

		metrics := buildCustomerMetrics(orders, 0, nil, periodStart, periodEnd)

		assert.Equal(t, 150.0, metrics.AverageOrderValue)
	})

	t.Run("deve lidar com corpus vazio sem divisão por zero", func(t *testing.T) {
		metrics := buildCustomerMetrics(nil, 500.0, nil, periodStart, periodEnd)

		assert.Equal(t, 0, metrics.TotalCustomers)
		assert.Equal(t, 0.0, metrics.LTV)
		assert.Equal(t, 0.0, metrics.CAC)
		assert.Equal(t, defaultBreakEvenROAS, metrics.BreakEvenROAS)
	})
}

func TestBreakEvenROAS(t *testing.T) {
	tests := []struct {
		name      string
		statement *domain.ProfitLossStatement
		expected  float64
	}{
		{
			name:      "deve derivar da razão de custo variável do período",
			statement: periodStatement(1000.0, 420.0), // razão = (420 + 30 + 50) / 1000 = 0.5
			expected:  2.0,
		},
		{
			name:      "deve diminuir quando a margem de contribuição é maior",
			statement: periodStatement(1000.0, 120.0), // razão = (120 + 30 + 50) / 1000 = 0.2
			expected:  1.25,
		},
		{
			name:      "deve usar o padrão sem demonstrativo",
			statement: nil,
			expected:  defaultBreakEvenROAS,
		},
		{
			name:      "deve usar o padrão com receita zero",
			statement: periodStatement(0, 0),
			expected:  defaultBreakEvenROAS,
		},
		{
			name:      "deve usar o padrão quando o custo variável engole a receita",
			statement: periodStatement(1000.0, 950.0), // razão >= 1
			expected:  defaultBreakEvenROAS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, breakEvenROAS(tt.statement))
		})
	}
}

func TestGetCustomerMetrics(t *testing.T) {
	filters := func() *domain.ReportFilters {
		start := date(2024, 1, 1)
		end := date(2024, 1, 31)
		return &domain.ReportFilters{StartDate: &start, EndDate: &end}
	}

	t.Run("deve agregar os pedidos de todas as lojas do time", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		storeRepo := repomocks.NewMockStoreRepository(ctrl)
		orderRepo := repomocks.NewMockOrderRepository(ctrl)
		adSpendRepo := repomocks.NewMockAdSpendRepository(ctrl)
		reporter := reportmocks.NewMockReporter(ctrl)

		storeRepo.EXPECT().ListByTeam("team-1").Return([]*domain.Store{
			{ID: "store-1", TeamID: "team-1"},
			{ID: "store-2", TeamID: "team-1"},
		}, nil)
		orderRepo.EXPECT().ListCustomerOrders("store-1", gomock.Any()).Return([]*domain.CustomerOrder{
			{CustomerID: "a", ProcessedAt: date(2024, 1, 5), NetRevenue: 1000.0},
		}, nil)
		orderRepo.EXPECT().ListCustomerOrders("store-2", gomock.Any()).Return([]*domain.CustomerOrder{
			{CustomerID: "b", ProcessedAt: date(2024, 1, 10), NetRevenue: 3000.0},
		}, nil)
		adSpendRepo.EXPECT().SumSpendByPlatform("team-1", gomock.Any(), gomock.Any()).
			Return(map[string]float64{"FACEBOOK": 600.0, "GOOGLE": 400.0}, nil)
		reporter.EXPECT().GetProfitLoss("team-1", gomock.Any()).Return(periodStatement(4000.0, 1200.0), nil)

		service := NewMetricsService(storeRepo, orderRepo, adSpendRepo, reporter)

		metrics, err := service.GetCustomerMetrics("team-1", filters())

		assert.NoError(t, err)
		assert.Equal(t, 2, metrics.TotalCustomers)
		assert.Equal(t, 2, metrics.NewCustomers)
		assert.Equal(t, 2000.0, metrics.LTV)
		assert.Equal(t, 500.0, metrics.CAC)
		assert.Equal(t, 4.0, metrics.LTVCACRatio)
		assert.NotEmpty(t, metrics.Insights)
	})

	t.Run("deve rejeitar loja de outro time", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		storeRepo := repomocks.NewMockStoreRepository(ctrl)
		storeRepo.EXPECT().GetByID("store-x").Return(&domain.Store{ID: "store-x", TeamID: "outro-time"}, nil)

		service := NewMetricsService(
			storeRepo,
			repomocks.NewMockOrderRepository(ctrl),
			repomocks.NewMockAdSpendRepository(ctrl),
			reportmocks.NewMockReporter(ctrl),
		)

		f := filters()
		f.StoreID = stringPtr("store-x")

		metrics, err := service.GetCustomerMetrics("team-1", f)

		assert.Nil(t, metrics)
		assert.ErrorContains(t, err, "loja não encontrada")
	})

	t.Run("deve exigir o período", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		service := NewMetricsService(
			repomocks.NewMockStoreRepository(ctrl),
			repomocks.NewMockOrderRepository(ctrl),
			repomocks.NewMockAdSpendRepository(ctrl),
			reportmocks.NewMockReporter(ctrl),
		)

		metrics, err := service.GetCustomerMetrics("team-1", &domain.ReportFilters{})

		assert.Nil(t, metrics)
		assert.ErrorContains(t, err, "datas de início e fim")
	})
}
