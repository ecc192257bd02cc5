package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/profitlens/profit-dashboard-api/infrastructure/database/postgres"
	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/meta"
	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/shopify"
	"github.com/profitlens/profit-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/profitlens/profit-dashboard-api/infrastructure/repository"
	"github.com/profitlens/profit-dashboard-api/internal/api"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/scheduler"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/authenticating"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/calculating"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/configuring"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/customers"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	productCostRepo := repository.NewProductCostRepository(pgConn)
	shippingTierRepo := repository.NewShippingTierRepository(pgConn)
	paymentFeeRepo := repository.NewPaymentFeeConfigRepository(pgConn)
	customCostRepo := repository.NewCustomCostRepository(pgConn)
	adSpendRepo := repository.NewAdSpendRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// O integrador Shopify precisa resolver o custo vigente da variante na data
	// do reembolso para reverter o COGS de itens devolvidos ao estoque
	resolveCost := func(variantID string, at time.Time) *float64 {
		histories, err := productCostRepo.GetCostHistories([]string{variantID})
		if err != nil {
			logrus.WithError(err).WithField("variant_id", variantID).Warn("Erro ao buscar histórico de custo da variante")
			return nil
		}

		entry := calculating.ResolveCostAtDate(histories[variantID], at)
		return entry
	}

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient, resolveCost)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	reporter := reporting.NewService(
		cfg,
		storeRepo,
		orderRepo,
		productCostRepo,
		shippingTierRepo,
		paymentFeeRepo,
		customCostRepo,
		adSpendRepo,
	)

	customerMetrics := customers.NewMetricsService(storeRepo, orderRepo, adSpendRepo, reporter)

	configurator := configuring.NewService(
		storeRepo,
		shippingTierRepo,
		paymentFeeRepo,
		customCostRepo,
		productCostRepo,
	)

	shopifyOrderSyncService := scheduler.NewShopifyOrderSyncService(
		storeRepo,
		orderRepo,
		shopifyIntegrator,
		cfg,
	)

	adSpendSyncService := scheduler.NewAdSpendSyncService(
		adSpendRepo,
		metaIntegrator,
		cfg,
	)

	if err := shopifyOrderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de pedidos da Shopify")
	} else {
		logrus.Info("Agendador de sincronização de pedidos da Shopify iniciado com sucesso")
	}

	if err := adSpendSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de gastos de anúncios")
	} else {
		logrus.Info("Agendador de sincronização de gastos de anúncios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		customerMetrics,
		configurator,
		authenticator,
		shopifyOrderSyncService,
		adSpendSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
