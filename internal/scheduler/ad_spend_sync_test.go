package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	metamocks "github.com/profitlens/profit-dashboard-api/infrastructure/integrator/meta/mocks"
	"github.com/profitlens/profit-dashboard-api/infrastructure/repository/mocks"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

func TestAdSpendSyncService_syncAccount(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "acc-1",
		TeamID:     "team-1",
		ExternalID: "123456",
		Platform:   domain.AdPlatformFacebook,
		Currency:   "EUR",
	}

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	t.Run("deve gravar cada linha diária de gasto", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		adSpendRepo := mocks.NewMockAdSpendRepository(ctrl)
		integrator := metamocks.NewMockIntegrator(ctrl)

		rows := []*domain.AdSpend{
			{AdAccountID: "acc-1", Date: startDate, Spend: 100.0},
			{AdAccountID: "acc-1", Date: startDate.AddDate(0, 0, 1), Spend: 150.0},
		}

		integrator.EXPECT().FetchDailySpend(account, startDate, endDate).Return(rows, nil)
		adSpendRepo.EXPECT().SaveOrUpdate(rows[0]).Return(nil)
		adSpendRepo.EXPECT().SaveOrUpdate(rows[1]).Return(nil)

		service := &AdSpendSyncService{
			config:      AdSpendSyncConfig{LookbackDays: 7, MaxConcurrentJobs: 1},
			adSpendRepo: adSpendRepo,
			integrator:  integrator,
		}

		service.syncAccount(account, startDate, endDate)
	})

	t.Run("deve continuar gravando mesmo quando uma linha falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		adSpendRepo := mocks.NewMockAdSpendRepository(ctrl)
		integrator := metamocks.NewMockIntegrator(ctrl)

		rows := []*domain.AdSpend{
			{AdAccountID: "acc-1", Date: startDate, Spend: 100.0},
			{AdAccountID: "acc-1", Date: startDate.AddDate(0, 0, 1), Spend: 150.0},
		}

		integrator.EXPECT().FetchDailySpend(account, startDate, endDate).Return(rows, nil)
		adSpendRepo.EXPECT().SaveOrUpdate(rows[0]).Return(assert.AnError)
		adSpendRepo.EXPECT().SaveOrUpdate(rows[1]).Return(nil)

		service := &AdSpendSyncService{
			config:      AdSpendSyncConfig{LookbackDays: 7, MaxConcurrentJobs: 1},
			adSpendRepo: adSpendRepo,
			integrator:  integrator,
		}

		service.syncAccount(account, startDate, endDate)
	})

	t.Run("deve abortar a conta quando a busca na API falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		adSpendRepo := mocks.NewMockAdSpendRepository(ctrl)
		integrator := metamocks.NewMockIntegrator(ctrl)

		integrator.EXPECT().FetchDailySpend(account, startDate, endDate).Return(nil, assert.AnError)

		service := &AdSpendSyncService{
			config:      AdSpendSyncConfig{LookbackDays: 7, MaxConcurrentJobs: 1},
			adSpendRepo: adSpendRepo,
			integrator:  integrator,
		}

		service.syncAccount(account, startDate, endDate)
	})
}
