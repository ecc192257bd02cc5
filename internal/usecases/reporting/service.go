package reporting

import (
	"fmt"
	"sync"
	"time"

	"github.com/profitlens/profit-dashboard-api/infrastructure/repository"
	"github.com/profitlens/profit-dashboard-api/internal/config"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/log"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

// Service implementa Reporter sobre os repositórios de dados sincronizados
type Service struct {
	cfg              *config.Config
	storeRepo        repository.StoreRepository
	orderRepo        repository.OrderRepository
	productCostRepo  repository.ProductCostRepository
	shippingTierRepo repository.ShippingTierRepository
	paymentFeeRepo   repository.PaymentFeeConfigRepository
	customCostRepo   repository.CustomCostRepository
	adSpendRepo      repository.AdSpendRepository
	cache            *reportCache
}

func NewService(
	cfg *config.Config,
	storeRepo repository.StoreRepository,
	orderRepo repository.OrderRepository,
	productCostRepo repository.ProductCostRepository,
	shippingTierRepo repository.ShippingTierRepository,
	paymentFeeRepo repository.PaymentFeeConfigRepository,
	customCostRepo repository.CustomCostRepository,
	adSpendRepo repository.AdSpendRepository,
) *Service {
	return &Service{
		cfg:              cfg,
		storeRepo:        storeRepo,
		orderRepo:        orderRepo,
		productCostRepo:  productCostRepo,
		shippingTierRepo: shippingTierRepo,
		paymentFeeRepo:   paymentFeeRepo,
		customCostRepo:   customCostRepo,
		adSpendRepo:      adSpendRepo,
		cache:            newReportCache(time.Duration(cfg.Reports.CacheTTLSeconds) * time.Second),
	}
}

// GetProfitLoss produz o demonstrativo de resultados completo do período
func (s *Service) GetProfitLoss(teamID string, filters *domain.ReportFilters) (*domain.ProfitLossStatement, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	storeID := ""
	if filters.StoreID != nil {
		storeID = *filters.StoreID
	}

	key := cacheKey(teamID, storeID, *filters.StartDate, *filters.EndDate)
	if cached := s.cache.get(key); cached != nil {
		return cached, nil
	}

	input, err := s.loadInput(teamID, filters)
	if err != nil {
		return nil, err
	}

	statement := buildProfitLoss(input)
	s.cache.set(key, statement)

	return statement, nil
}

// GetDashboardSummary deriva a visão resumida do mesmo demonstrativo —
// nunca recalcula com outra convenção
func (s *Service) GetDashboardSummary(teamID string, filters *domain.ReportFilters) (*domain.DashboardSummary, error) {
	statement, err := s.GetProfitLoss(teamID, filters)
	if err != nil {
		return nil, err
	}

	roas := 0.0
	if statement.OperatingExpenses.TotalAdSpend > 0 {
		roas = utils.RoundWithTwoDecimalPlace(statement.Revenue.RevenueExVAT / statement.OperatingExpenses.TotalAdSpend)
	}

	return &domain.DashboardSummary{
		Period:            statement.Period,
		GrossRevenue:      statement.Revenue.GrossRevenue,
		RevenueExVAT:      statement.Revenue.RevenueExVAT,
		NetProfit:         statement.NetProfit,
		NetMargin:         statement.NetMargin,
		OrderCount:        statement.Summary.OrderCount,
		AverageOrderValue: statement.Summary.AverageOrderValue,
		AdSpend:           statement.OperatingExpenses.TotalAdSpend,
		ROAS:              roas,
	}, nil
}

// GetOrderProfits calcula o lucro de cada pedido do período individualmente
func (s *Service) GetOrderProfits(teamID string, filters *domain.ReportFilters) ([]*domain.OrderProfit, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	input, err := s.loadInput(teamID, filters)
	if err != nil {
		return nil, err
	}

	return buildOrderProfits(input), nil
}

// loadInput materializa todos os insumos do demonstrativo. As cargas
// independentes (dados por loja, gasto de anúncios, custos do time) rodam em
// paralelo; a computação em si é sequencial e pura.
func (s *Service) loadInput(teamID string, filters *domain.ReportFilters) (*pnlInput, error) {
	stores, err := s.resolveStores(teamID, filters)
	if err != nil {
		return nil, err
	}

	input := &pnlInput{
		periodStart: *filters.StartDate,
		periodEnd:   *filters.EndDate,
		taxRate:     s.cfg.Reports.CorporateTaxRate,
	}

	var (
		storeInputs []*storeInput
		adSpend     map[string]float64
		customCosts []*domain.CustomCost
		costEntries []*domain.CustomCostEntry

		storesErr  error
		adSpendErr error
		costsErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		storeInputs, storesErr = s.loadStoreInputs(stores, filters)
	}()

	go func() {
		defer wg.Done()
		adSpend, adSpendErr = s.loadAdSpend(teamID, filters)
	}()

	go func() {
		defer wg.Done()
		customCosts, costsErr = s.customCostRepo.ListActiveByTeam(teamID)
		if costsErr != nil {
			return
		}
		costEntries, costsErr = s.customCostRepo.ListEntriesByPeriod(teamID, *filters.StartDate, *filters.EndDate)
	}()

	wg.Wait()

	if storesErr != nil {
		return nil, fmt.Errorf("erro ao carregar dados das lojas: %w", storesErr)
	}
	if adSpendErr != nil {
		return nil, fmt.Errorf("erro ao carregar gastos de anúncios: %w", adSpendErr)
	}
	if costsErr != nil {
		return nil, fmt.Errorf("erro ao carregar custos do time: %w", costsErr)
	}

	input.stores = storeInputs
	input.adSpend = adSpend
	input.customCosts = customCosts
	input.costEntries = costEntries

	// Históricos de custo só das variantes realmente vendidas no período
	variantIDs := collectVariantIDs(storeInputs)
	input.costHistories, err = s.productCostRepo.GetCostHistories(variantIDs)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar históricos de custo: %w", err)
	}

	return input, nil
}

func (s *Service) resolveStores(teamID string, filters *domain.ReportFilters) ([]*domain.Store, error) {
	if filters.StoreID != nil {
		store, err := s.storeRepo.GetByID(*filters.StoreID)
		if err != nil {
			return nil, err
		}

		// Escopo de time: loja de outro time é tratada como inexistente
		if store == nil || store.TeamID != teamID {
			return nil, fmt.Errorf("loja não encontrada: %s", *filters.StoreID)
		}

		return []*domain.Store{store}, nil
	}

	return s.storeRepo.ListByTeam(teamID)
}

func (s *Service) loadStoreInputs(stores []*domain.Store, filters *domain.ReportFilters) ([]*storeInput, error) {
	inputs := make([]*storeInput, len(stores))
	errs := make([]error, len(stores))

	wg := sync.WaitGroup{}
	semaphore := make(chan struct{}, 4)

	for i, store := range stores {
		wg.Add(1)
		go func(i int, store *domain.Store) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			inputs[i], errs[i] = s.loadStoreInput(store, filters)
		}(i, store)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return inputs, nil
}

func (s *Service) loadStoreInput(store *domain.Store, filters *domain.ReportFilters) (*storeInput, error) {
	orders, err := s.orderRepo.ListByPeriod(store.ID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar pedidos da loja %s: %w", store.ID, err)
	}

	tiers, err := s.shippingTierRepo.ListByStore(store.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar faixas de frete da loja %s: %w", store.ID, err)
	}

	exemptVariants, err := s.productCostRepo.GetShippingExemptVariants(store.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar isenções de frete da loja %s: %w", store.ID, err)
	}

	feeConfigs, err := s.paymentFeeRepo.GetByStore(store.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configurações de taxa da loja %s: %w", store.ID, err)
	}

	log.L.WithFields(log.Fields{
		"store_id": store.ID,
		"orders":   len(orders),
	}).Debug("Dados da loja carregados para o relatório")

	return &storeInput{
		store:          store,
		orders:         orders,
		tiers:          tiers,
		exemptVariants: exemptVariants,
		feeConfigs:     feeConfigs,
	}, nil
}

func (s *Service) loadAdSpend(teamID string, filters *domain.ReportFilters) (map[string]float64, error) {
	totals, err := s.adSpendRepo.SumSpendByPlatform(teamID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, err
	}

	spend := make(map[string]float64, len(totals))
	for platform, total := range totals {
		spend[platformDisplayName(platform)] = total
	}

	return spend, nil
}

func collectVariantIDs(inputs []*storeInput) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)

	for _, input := range inputs {
		for _, order := range input.orders {
			for _, item := range order.LineItems {
				if item.VariantID == nil || seen[*item.VariantID] {
					continue
				}
				seen[*item.VariantID] = true
				ids = append(ids, *item.VariantID)
			}
		}
	}

	return ids
}

func platformDisplayName(platform string) string {
	switch domain.AdPlatform(platform) {
	case domain.AdPlatformFacebook:
		return "Facebook"
	case domain.AdPlatformGoogle:
		return "Google"
	case domain.AdPlatformTikTok:
		return "TikTok"
	default:
		return platform
	}
}

func validateFilters(filters *domain.ReportFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}
