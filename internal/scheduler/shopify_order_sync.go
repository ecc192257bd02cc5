package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/shopify"
	"github.com/profitlens/profit-dashboard-api/infrastructure/repository"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

// ShopifyOrderSyncConfig representa a configuração do agendador de pedidos
type ShopifyOrderSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// ShopifyOrderSyncService gerencia o agendamento e execução da sincronização
// de pedidos da Shopify para todas as lojas ativas
type ShopifyOrderSyncService struct {
	scheduler           *gocron.Scheduler
	config              ShopifyOrderSyncConfig
	storeRepo           repository.StoreRepository
	orderRepo           repository.OrderRepository
	integrator          shopify.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewShopifyOrderSyncService(
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	integrator shopify.Integrator,
	appConfig *config.Config,
) *ShopifyOrderSyncService {
	syncConfig := ShopifyOrderSyncConfig{
		CronSchedule:      appConfig.ShopifyOrderSync.CronSchedule,
		LookbackDays:      appConfig.ShopifyOrderSync.LookbackDays,
		MaxConcurrentJobs: appConfig.ShopifyOrderSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.ShopifyOrderSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de pedidos da Shopify carregada")

	return &ShopifyOrderSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		storeRepo:  storeRepo,
		orderRepo:  orderRepo,
		integrator: integrator,
	}
}

// Start inicia o agendador
func (s *ShopifyOrderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de pedidos da Shopify desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de pedidos da Shopify")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllStores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos da Shopify: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de pedidos da Shopify")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllStores sincroniza os pedidos de todas as lojas ativas
func (s *ShopifyOrderSyncService) syncAllStores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de pedidos da Shopify para todas as lojas ativas")

	stores, err := s.storeRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lojas para sincronização de pedidos")
		return
	}

	if len(stores) == 0 {
		logrus.Info("Nenhuma loja ativa encontrada para sincronização de pedidos")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, store := range stores {
		if store.ShopDomain == "" {
			logrus.WithField("store_id", store.ID).Warn("Loja sem domínio configurado. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(store *domain.Store) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncStore(store)
		}(store)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"stores":   len(stores),
	}).Info("Sincronização de pedidos da Shopify concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncStore sincroniza os pedidos de uma loja desde a janela de retrovisão
func (s *ShopifyOrderSyncService) syncStore(store *domain.Store) {
	updatedAtMin := time.Now().AddDate(0, 0, -s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"store_id":       store.ID,
		"shop_domain":    store.ShopDomain,
		"updated_at_min": updatedAtMin.Format(time.DateOnly),
	}).Info("Sincronizando pedidos da loja")

	orders, err := s.integrator.FetchOrders(store, updatedAtMin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"error":    err.Error(),
		}).Error("Erro ao buscar pedidos da loja na Shopify")
		return
	}

	saved := 0
	for _, order := range orders {
		if err := s.orderRepo.SaveOrUpdate(order); err != nil {
			logrus.WithFields(logrus.Fields{
				"store_id":    store.ID,
				"external_id": order.ExternalID,
				"error":       err.Error(),
			}).Error("Erro ao gravar pedido sincronizado")
			continue
		}
		saved++
	}

	if err := s.storeRepo.UpdateLastSyncedAt(store.ID, time.Now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"error":    err.Error(),
		}).Warn("Erro ao atualizar data da última sincronização da loja")
	}

	logrus.WithFields(logrus.Fields{
		"store_id": store.ID,
		"fetched":  len(orders),
		"saved":    saved,
	}).Info("Pedidos da loja sincronizados")
}

// TriggerManualSync inicia manualmente uma sincronização de pedidos
func (s *ShopifyOrderSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de pedidos da Shopify")
	go s.syncAllStores()
}

// GetStatus retorna o status atual do agendador
func (s *ShopifyOrderSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
