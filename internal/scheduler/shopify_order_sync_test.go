package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	shopifymocks "github.com/profitlens/profit-dashboard-api/infrastructure/integrator/shopify/mocks"
	"github.com/profitlens/profit-dashboard-api/infrastructure/repository/mocks"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

func TestShopifyOrderSyncService_syncStore(t *testing.T) {
	store := &domain.Store{ID: "store-1", TeamID: "team-1", ShopDomain: "loja.myshopify.com"}

	tests := []struct {
		name  string
		setup func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, integrator *shopifymocks.MockIntegrator)
	}{
		{
			name: "deve gravar os pedidos buscados e registrar a sincronização",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, integrator *shopifymocks.MockIntegrator) {
				orders := []*domain.Order{
					{ID: "1001", StoreID: "store-1", ExternalID: "1001"},
					{ID: "1002", StoreID: "store-1", ExternalID: "1002"},
				}

				integrator.EXPECT().FetchOrders(store, gomock.Any()).Return(orders, nil)
				orderRepo.EXPECT().SaveOrUpdate(orders[0]).Return(nil)
				orderRepo.EXPECT().SaveOrUpdate(orders[1]).Return(nil)
				storeRepo.EXPECT().UpdateLastSyncedAt("store-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "deve continuar gravando mesmo quando um pedido falha",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, integrator *shopifymocks.MockIntegrator) {
				orders := []*domain.Order{
					{ID: "1001", StoreID: "store-1", ExternalID: "1001"},
					{ID: "1002", StoreID: "store-1", ExternalID: "1002"},
				}

				integrator.EXPECT().FetchOrders(store, gomock.Any()).Return(orders, nil)
				orderRepo.EXPECT().SaveOrUpdate(orders[0]).Return(assert.AnError)
				orderRepo.EXPECT().SaveOrUpdate(orders[1]).Return(nil)
				storeRepo.EXPECT().UpdateLastSyncedAt("store-1", gomock.Any()).Return(nil)
			},
		},
		{
			name: "deve abortar a loja quando a busca na Shopify falha",
			setup: func(storeRepo *mocks.MockStoreRepository, orderRepo *mocks.MockOrderRepository, integrator *shopifymocks.MockIntegrator) {
				integrator.EXPECT().FetchOrders(store, gomock.Any()).Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			storeRepo := mocks.NewMockStoreRepository(ctrl)
			orderRepo := mocks.NewMockOrderRepository(ctrl)
			integrator := shopifymocks.NewMockIntegrator(ctrl)

			tt.setup(storeRepo, orderRepo, integrator)

			service := &ShopifyOrderSyncService{
				config: ShopifyOrderSyncConfig{
					LookbackDays:      7,
					MaxConcurrentJobs: 1,
				},
				storeRepo:  storeRepo,
				orderRepo:  orderRepo,
				integrator: integrator,
			}

			service.syncStore(store)
		})
	}
}

func TestShopifyOrderSyncService_syncAllStores(t *testing.T) {
	t.Run("deve pular lojas sem domínio configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		storeRepo := mocks.NewMockStoreRepository(ctrl)
		orderRepo := mocks.NewMockOrderRepository(ctrl)
		integrator := shopifymocks.NewMockIntegrator(ctrl)

		stores := []*domain.Store{
			{ID: "store-1", ShopDomain: ""},
			{ID: "store-2", ShopDomain: "loja.myshopify.com"},
		}

		storeRepo.EXPECT().ListActive().Return(stores, nil)
		integrator.EXPECT().FetchOrders(stores[1], gomock.Any()).Return([]*domain.Order{}, nil)
		storeRepo.EXPECT().UpdateLastSyncedAt("store-2", gomock.Any()).Return(nil)

		service := &ShopifyOrderSyncService{
			config: ShopifyOrderSyncConfig{
				LookbackDays:      7,
				MaxConcurrentJobs: 2,
			},
			storeRepo:  storeRepo,
			orderRepo:  orderRepo,
			integrator: integrator,
		}

		service.syncAllStores()

		assert.False(t, service.syncRunning)
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})
}
