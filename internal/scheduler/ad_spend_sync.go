package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/meta"
	"github.com/profitlens/profit-dashboard-api/infrastructure/repository"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

// AdSpendSyncConfig representa a configuração do agendador de gastos de anúncios
type AdSpendSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AdSpendSyncService gerencia o agendamento e execução da sincronização de
// gastos diários de anúncios de todas as contas ativas
type AdSpendSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdSpendSyncConfig
	adSpendRepo         repository.AdSpendRepository
	integrator          meta.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAdSpendSyncService(
	adSpendRepo repository.AdSpendRepository,
	integrator meta.Integrator,
	appConfig *config.Config,
) *AdSpendSyncService {
	syncConfig := AdSpendSyncConfig{
		CronSchedule:        appConfig.AdSpendSync.CronSchedule,
		LookbackDays:        appConfig.AdSpendSync.LookbackDays,
		RequestDelaySeconds: appConfig.AdSpendSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AdSpendSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AdSpendSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de gastos de anúncios carregada")

	return &AdSpendSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		adSpendRepo: adSpendRepo,
		integrator:  integrator,
	}
}

// Start inicia o agendador
func (s *AdSpendSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de gastos de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de gastos de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de gastos de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de gastos de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza o gasto diário de todas as contas ativas
func (s *AdSpendSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos de anúncios já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de gastos de anúncios para todas as contas ativas")

	accounts, err := s.adSpendRepo.ListActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para sincronização de gastos de anúncios")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de gastos de anúncios")
		return
	}

	endDate := time.Now().AddDate(0, 0, -1) // Até ontem: o dia corrente ainda muda
	startDate := time.Now().AddDate(0, 0, -s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
		"accounts":   len(accounts),
	}).Info("Período para sincronização de gastos de anúncios")

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("ad_account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(account *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncAccount(account, startDate, endDate)

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(account)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de gastos de anúncios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// syncAccount sincroniza o gasto diário de uma conta no período
func (s *AdSpendSyncService) syncAccount(account *domain.AdAccount, startDate, endDate time.Time) {
	logrus.WithFields(logrus.Fields{
		"ad_account_id": account.ID,
		"external_id":   account.ExternalID,
		"platform":      account.Platform,
	}).Info("Sincronizando gastos da conta de anúncios")

	rows, err := s.integrator.FetchDailySpend(account, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": account.ID,
			"error":         err.Error(),
		}).Error("Erro ao buscar gastos diários da conta")
		return
	}

	saved := 0
	for _, row := range rows {
		if err := s.adSpendRepo.SaveOrUpdate(row); err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_account_id": account.ID,
				"date":          row.Date.Format(time.DateOnly),
				"error":         err.Error(),
			}).Error("Erro ao gravar gasto diário sincronizado")
			continue
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": account.ID,
		"fetched":       len(rows),
		"saved":         saved,
	}).Info("Gastos da conta de anúncios sincronizados")
}

// TriggerManualSync inicia manualmente uma sincronização de gastos de anúncios
func (s *AdSpendSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos de anúncios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de gastos de anúncios")
	go s.syncAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *AdSpendSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
