package configuring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/profitlens/profit-dashboard-api/infrastructure/repository/mocks"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/calculating"
)

type serviceMocks struct {
	storeRepo        *mocks.MockStoreRepository
	shippingTierRepo *mocks.MockShippingTierRepository
	paymentFeeRepo   *mocks.MockPaymentFeeConfigRepository
	customCostRepo   *mocks.MockCustomCostRepository
	productCostRepo  *mocks.MockProductCostRepository
}

func newTestService(t *testing.T) (Configurator, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storeRepo:        mocks.NewMockStoreRepository(ctrl),
		shippingTierRepo: mocks.NewMockShippingTierRepository(ctrl),
		paymentFeeRepo:   mocks.NewMockPaymentFeeConfigRepository(ctrl),
		customCostRepo:   mocks.NewMockCustomCostRepository(ctrl),
		productCostRepo:  mocks.NewMockProductCostRepository(ctrl),
	}

	service := NewService(m.storeRepo, m.shippingTierRepo, m.paymentFeeRepo, m.customCostRepo, m.productCostRepo)

	return service, m
}

func intPtr(v int) *int {
	return &v
}

func TestReplaceShippingTiers(t *testing.T) {
	store := &domain.Store{ID: "store-1", TeamID: "team-1"}

	t.Run("deve gravar as faixas e devolver avisos de lacuna", func(t *testing.T) {
		service, m := newTestService(t)

		tiers := []*domain.ShippingTier{
			{MinItems: 1, MaxItems: intPtr(2), Cost: 4.5},
			{MinItems: 5, MaxItems: nil, Cost: 8.0},
		}

		m.storeRepo.EXPECT().GetByID("store-1").Return(store, nil)
		m.shippingTierRepo.EXPECT().ReplaceForStore(gomock.Any(), "store-1", tiers).Return(nil)

		issues, err := service.ReplaceShippingTiers(context.Background(), "team-1", "store-1", tiers)

		assert.NoError(t, err)
		assert.Len(t, issues, 1)
		assert.Equal(t, calculating.TierIssueGap, issues[0].Kind)
		assert.Equal(t, "store-1", tiers[0].StoreID)
	})

	t.Run("deve bloquear faixas com custo negativo", func(t *testing.T) {
		service, m := newTestService(t)

		tiers := []*domain.ShippingTier{
			{MinItems: 1, Cost: -1.0},
		}

		m.storeRepo.EXPECT().GetByID("store-1").Return(store, nil)

		_, err := service.ReplaceShippingTiers(context.Background(), "team-1", "store-1", tiers)

		assert.ErrorIs(t, err, ErrInvalidTiers)
	})

	t.Run("deve rejeitar loja de outro time", func(t *testing.T) {
		service, m := newTestService(t)

		m.storeRepo.EXPECT().GetByID("store-1").Return(&domain.Store{ID: "store-1", TeamID: "outro-time"}, nil)

		_, err := service.ReplaceShippingTiers(context.Background(), "team-1", "store-1", nil)

		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestSavePaymentFeeConfig(t *testing.T) {
	store := &domain.Store{ID: "store-1", TeamID: "team-1"}

	t.Run("deve normalizar o gateway para minúsculas antes de gravar", func(t *testing.T) {
		service, m := newTestService(t)

		config := &domain.PaymentFeeConfig{Gateway: " Shopify_Payments ", PercentageFee: 2.9, FixedFee: 3.0}

		m.storeRepo.EXPECT().GetByID("store-1").Return(store, nil)
		m.paymentFeeRepo.EXPECT().SaveOrUpdate(config).Return(nil)

		err := service.SavePaymentFeeConfig("team-1", "store-1", config)

		assert.NoError(t, err)
		assert.Equal(t, "shopify_payments", config.Gateway)
		assert.Equal(t, "store-1", config.StoreID)
	})

	t.Run("deve rejeitar taxa percentual fora do intervalo", func(t *testing.T) {
		service, m := newTestService(t)

		config := &domain.PaymentFeeConfig{Gateway: "stripe", PercentageFee: 120.0}

		m.storeRepo.EXPECT().GetByID("store-1").Return(store, nil)

		err := service.SavePaymentFeeConfig("team-1", "store-1", config)

		assert.ErrorIs(t, err, ErrInvalidFeeConfig)
	})
}

func TestCustomCosts(t *testing.T) {
	t.Run("deve criar custo com recorrência padrão NONE", func(t *testing.T) {
		service, m := newTestService(t)

		cost := &domain.CustomCost{Name: "Aluguel", CostType: domain.CostTypeFixed}

		m.customCostRepo.EXPECT().Create(cost).Return(cost, nil)

		created, err := service.CreateCustomCost("team-1", cost)

		assert.NoError(t, err)
		assert.Equal(t, "team-1", created.TeamID)
		assert.Equal(t, domain.RecurrenceNone, created.RecurrenceType)
	})

	t.Run("deve rejeitar tipo de custo desconhecido", func(t *testing.T) {
		service, _ := newTestService(t)

		cost := &domain.CustomCost{Name: "Aluguel", CostType: "OUTRO"}

		_, err := service.CreateCustomCost("team-1", cost)

		assert.ErrorIs(t, err, ErrMissingCostData)
	})

	t.Run("deve rejeitar lançamento contra custo de outro time", func(t *testing.T) {
		service, m := newTestService(t)

		entry := &domain.CustomCostEntry{CustomCostID: "cost-1", Amount: 100.0, Date: time.Now()}

		m.customCostRepo.EXPECT().GetByID("cost-1").Return(&domain.CustomCost{ID: "cost-1", TeamID: "outro-time"}, nil)

		_, err := service.CreateCustomCostEntry("team-1", entry)

		assert.ErrorIs(t, err, ErrCostNotFound)
	})

	t.Run("deve desativar custo do time", func(t *testing.T) {
		service, m := newTestService(t)

		m.customCostRepo.EXPECT().GetByID("cost-1").Return(&domain.CustomCost{ID: "cost-1", TeamID: "team-1"}, nil)
		m.customCostRepo.EXPECT().Deactivate("cost-1").Return(nil)

		err := service.DeactivateCustomCost("team-1", "cost-1")

		assert.NoError(t, err)
	})
}

func TestAddProductCostEntry(t *testing.T) {
	effectiveFrom := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("deve gravar novo registro no histórico de custo", func(t *testing.T) {
		service, m := newTestService(t)

		expected := &domain.CostEntry{VariantID: "v1", CostPrice: 40.0, EffectiveFrom: effectiveFrom}

		m.productCostRepo.EXPECT().GetVariantTeamID("v1").Return("team-1", nil)
		m.productCostRepo.EXPECT().AddCostEntry(gomock.Any(), "v1", 40.0, effectiveFrom).Return(expected, nil)

		entry, err := service.AddProductCostEntry(context.Background(), "team-1", "v1", 40.0, effectiveFrom)

		assert.NoError(t, err)
		assert.Equal(t, expected, entry)
	})

	t.Run("deve rejeitar custo negativo", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.AddProductCostEntry(context.Background(), "team-1", "v1", -1.0, effectiveFrom)

		assert.ErrorIs(t, err, ErrInvalidCostPrice)
	})

	t.Run("deve rejeitar variante de outro time", func(t *testing.T) {
		service, m := newTestService(t)

		m.productCostRepo.EXPECT().GetVariantTeamID("v1").Return("outro-time", nil)

		_, err := service.AddProductCostEntry(context.Background(), "team-1", "v1", 40.0, effectiveFrom)

		assert.ErrorIs(t, err, ErrVariantNotFound)
	})

	t.Run("deve rejeitar variante inexistente", func(t *testing.T) {
		service, m := newTestService(t)

		m.productCostRepo.EXPECT().GetVariantTeamID("v1").Return("", nil)

		_, err := service.AddProductCostEntry(context.Background(), "team-1", "v1", 40.0, effectiveFrom)

		assert.ErrorIs(t, err, ErrVariantNotFound)
	})
}
