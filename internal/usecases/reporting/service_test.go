package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/profitlens/profit-dashboard-api/infrastructure/repository/mocks"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

type serviceMocks struct {
	storeRepo        *mocks.MockStoreRepository
	orderRepo        *mocks.MockOrderRepository
	productCostRepo  *mocks.MockProductCostRepository
	shippingTierRepo *mocks.MockShippingTierRepository
	paymentFeeRepo   *mocks.MockPaymentFeeConfigRepository
	customCostRepo   *mocks.MockCustomCostRepository
	adSpendRepo      *mocks.MockAdSpendRepository
}

func newTestService(t *testing.T, cacheTTLSeconds int) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storeRepo:        mocks.NewMockStoreRepository(ctrl),
		orderRepo:        mocks.NewMockOrderRepository(ctrl),
		productCostRepo:  mocks.NewMockProductCostRepository(ctrl),
		shippingTierRepo: mocks.NewMockShippingTierRepository(ctrl),
		paymentFeeRepo:   mocks.NewMockPaymentFeeConfigRepository(ctrl),
		customCostRepo:   mocks.NewMockCustomCostRepository(ctrl),
		adSpendRepo:      mocks.NewMockAdSpendRepository(ctrl),
	}

	cfg := &config.Config{
		Reports: config.Reports{
			CorporateTaxRate: 22.0,
			CacheTTLSeconds:  cacheTTLSeconds,
		},
	}

	service := NewService(
		cfg,
		m.storeRepo,
		m.orderRepo,
		m.productCostRepo,
		m.shippingTierRepo,
		m.paymentFeeRepo,
		m.customCostRepo,
		m.adSpendRepo,
	)

	return service, m
}

func testFilters() *domain.ReportFilters {
	start := date(2024, 1, 1)
	end := date(2024, 1, 31)
	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func testStore() *domain.Store {
	return &domain.Store{ID: "store-1", TeamID: "team-1", Currency: "EUR"}
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:                 "order-1",
		StoreID:            "store-1",
		SubtotalPrice:      400.0,
		TotalShippingPrice: 50.0,
		TotalTax:           112.5,
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
}

func expectTeamLoad(m *serviceMocks, orders []*domain.Order) {
	m.storeRepo.EXPECT().ListByTeam("team-1").Return([]*domain.Store{testStore()}, nil)
	m.orderRepo.EXPECT().ListByPeriod("store-1", gomock.Any(), gomock.Any()).Return(orders, nil)
	m.shippingTierRepo.EXPECT().ListByStore("store-1").Return([]*domain.ShippingTier{{MinItems: 1, Cost: 32.0}}, nil)
	m.productCostRepo.EXPECT().GetShippingExemptVariants("store-1").Return(map[string]bool{}, nil)
	m.paymentFeeRepo.EXPECT().GetByStore("store-1").Return(map[string]*domain.PaymentFeeConfig{}, nil)
	m.adSpendRepo.EXPECT().SumSpendByPlatform("team-1", gomock.Any(), gomock.Any()).Return(map[string]float64{"FACEBOOK": 100.0}, nil)
	m.customCostRepo.EXPECT().ListActiveByTeam("team-1").Return([]*domain.CustomCost{}, nil)
	m.customCostRepo.EXPECT().ListEntriesByPeriod("team-1", gomock.Any(), gomock.Any()).Return([]*domain.CustomCostEntry{}, nil)
	m.productCostRepo.EXPECT().GetCostHistories([]string{"v1"}).Return(map[string][]*domain.CostEntry{
		"v1": {{VariantID: "v1", CostPrice: 100.0, EffectiveFrom: date(2023, 1, 1)}},
	}, nil)
}

func TestGetProfitLoss(t *testing.T) {
	t.Run("deve montar o demonstrativo com os dados de todas as lojas do time", func(t *testing.T) {
		service, m := newTestService(t, 0)
		expectTeamLoad(m, []*domain.Order{testOrder()})

		statement, err := service.GetProfitLoss("team-1", testFilters())

		assert.NoError(t, err)
		assert.Equal(t, 562.5, statement.Revenue.GrossRevenue)
		assert.Equal(t, 450.0, statement.Revenue.RevenueExVAT)
		assert.Equal(t, 200.0, statement.COGS.ProductCosts)
		assert.Equal(t, 100.0, statement.OperatingExpenses.AdSpend["Facebook"])
		assert.Equal(t, "EUR", statement.Currency)
	})

	t.Run("deve filtrar por loja quando o filtro informa o store_id", func(t *testing.T) {
		service, m := newTestService(t, 0)

		m.storeRepo.EXPECT().GetByID("store-1").Return(testStore(), nil)
		m.orderRepo.EXPECT().ListByPeriod("store-1", gomock.Any(), gomock.Any()).Return([]*domain.Order{}, nil)
		m.shippingTierRepo.EXPECT().ListByStore("store-1").Return([]*domain.ShippingTier{}, nil)
		m.productCostRepo.EXPECT().GetShippingExemptVariants("store-1").Return(map[string]bool{}, nil)
		m.paymentFeeRepo.EXPECT().GetByStore("store-1").Return(map[string]*domain.PaymentFeeConfig{}, nil)
		m.adSpendRepo.EXPECT().SumSpendByPlatform("team-1", gomock.Any(), gomock.Any()).Return(map[string]float64{}, nil)
		m.customCostRepo.EXPECT().ListActiveByTeam("team-1").Return([]*domain.CustomCost{}, nil)
		m.customCostRepo.EXPECT().ListEntriesByPeriod("team-1", gomock.Any(), gomock.Any()).Return([]*domain.CustomCostEntry{}, nil)
		m.productCostRepo.EXPECT().GetCostHistories([]string{}).Return(map[string][]*domain.CostEntry{}, nil)

		filters := testFilters()
		filters.StoreID = stringPtr("store-1")

		statement, err := service.GetProfitLoss("team-1", filters)

		assert.NoError(t, err)
		assert.Equal(t, 0, statement.Summary.OrderCount)
	})

	t.Run("deve rejeitar loja de outro time como inexistente", func(t *testing.T) {
		service, m := newTestService(t, 0)

		m.storeRepo.EXPECT().GetByID("store-x").Return(&domain.Store{ID: "store-x", TeamID: "outro-time"}, nil)

		filters := testFilters()
		filters.StoreID = stringPtr("store-x")

		statement, err := service.GetProfitLoss("team-1", filters)

		assert.Nil(t, statement)
		assert.ErrorContains(t, err, "loja não encontrada")
	})

	t.Run("deve exigir as datas de início e fim", func(t *testing.T) {
		service, _ := newTestService(t, 0)

		statement, err := service.GetProfitLoss("team-1", &domain.ReportFilters{})

		assert.Nil(t, statement)
		assert.ErrorContains(t, err, "datas de início e fim")
	})

	t.Run("deve rejeitar período invertido", func(t *testing.T) {
		service, _ := newTestService(t, 0)

		start := date(2024, 2, 1)
		end := date(2024, 1, 1)

		statement, err := service.GetProfitLoss("team-1", &domain.ReportFilters{StartDate: &start, EndDate: &end})

		assert.Nil(t, statement)
		assert.ErrorContains(t, err, "posterior")
	})

	t.Run("deve servir a segunda chamada do cache sem ir ao banco", func(t *testing.T) {
		service, m := newTestService(t, 300)
		expectTeamLoad(m, []*domain.Order{testOrder()})

		first, err := service.GetProfitLoss("team-1", testFilters())
		assert.NoError(t, err)

		// Mesmo filtro: os mocks só esperam uma rodada de chamadas
		second, err := service.GetProfitLoss("team-1", testFilters())
		assert.NoError(t, err)
		assert.Same(t, first, second)
	})
}

func TestGetDashboardSummary(t *testing.T) {
	t.Run("deve derivar o resumo do mesmo demonstrativo", func(t *testing.T) {
		service, m := newTestService(t, 0)
		expectTeamLoad(m, []*domain.Order{testOrder()})

		summary, err := service.GetDashboardSummary("team-1", testFilters())

		assert.NoError(t, err)
		assert.Equal(t, 562.5, summary.GrossRevenue)
		assert.Equal(t, 450.0, summary.RevenueExVAT)
		assert.Equal(t, 1, summary.OrderCount)
		assert.Equal(t, 100.0, summary.AdSpend)
		assert.Equal(t, 4.5, summary.ROAS)
	})

	t.Run("deve zerar o ROAS quando não há gasto de anúncios", func(t *testing.T) {
		service, m := newTestService(t, 0)

		m.storeRepo.EXPECT().ListByTeam("team-1").Return([]*domain.Store{testStore()}, nil)
		m.orderRepo.EXPECT().ListByPeriod("store-1", gomock.Any(), gomock.Any()).Return([]*domain.Order{testOrder()}, nil)
		m.shippingTierRepo.EXPECT().ListByStore("store-1").Return([]*domain.ShippingTier{}, nil)
		m.productCostRepo.EXPECT().GetShippingExemptVariants("store-1").Return(map[string]bool{}, nil)
		m.paymentFeeRepo.EXPECT().GetByStore("store-1").Return(map[string]*domain.PaymentFeeConfig{}, nil)
		m.adSpendRepo.EXPECT().SumSpendByPlatform("team-1", gomock.Any(), gomock.Any()).Return(map[string]float64{}, nil)
		m.customCostRepo.EXPECT().ListActiveByTeam("team-1").Return([]*domain.CustomCost{}, nil)
		m.customCostRepo.EXPECT().ListEntriesByPeriod("team-1", gomock.Any(), gomock.Any()).Return([]*domain.CustomCostEntry{}, nil)
		m.productCostRepo.EXPECT().GetCostHistories([]string{"v1"}).Return(map[string][]*domain.CostEntry{}, nil)

		summary, err := service.GetDashboardSummary("team-1", testFilters())

		assert.NoError(t, err)
		assert.Equal(t, 0.0, summary.ROAS)
	})
}

func TestGetOrderProfits(t *testing.T) {
	t.Run("deve calcular o lucro de cada pedido do período", func(t *testing.T) {
		service, m := newTestService(t, 0)
		expectTeamLoad(m, []*domain.Order{testOrder()})

		profits, err := service.GetOrderProfits("team-1", testFilters())

		assert.NoError(t, err)
		assert.Len(t, profits, 1)
		assert.Equal(t, "order-1", profits[0].OrderID)
		assert.InDelta(t, 198.69, profits[0].Profit, 0.001)
	})
}
