package configuring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/profitlens/profit-dashboard-api/infrastructure/repository"
	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/calculating"
)

var (
	ErrStoreNotFound    = errors.New("loja não encontrada")
	ErrCostNotFound     = errors.New("custo não encontrado")
	ErrVariantNotFound  = errors.New("variante não encontrada")
	ErrInvalidTiers     = errors.New("faixas de frete inválidas")
	ErrInvalidFeeConfig = errors.New("configuração de taxa inválida")
	ErrMissingCostData  = errors.New("dados do custo incompletos")
	ErrInvalidCostPrice = errors.New("custo do produto não pode ser negativo")
)

// Configurator expõe as operações de configuração do time: faixas de frete,
// taxas de gateway, custos fora da plataforma e histórico de custo de produto.
// Toda operação valida que o recurso pertence ao time informado.
type Configurator interface {
	ListStores(teamID string) ([]*domain.Store, error)
	GetShippingTiers(teamID, storeID string) ([]*domain.ShippingTier, error)
	ValidateShippingTiers(tiers []*domain.ShippingTier) []calculating.TierIssue
	ReplaceShippingTiers(ctx context.Context, teamID, storeID string, tiers []*domain.ShippingTier) ([]calculating.TierIssue, error)
	GetPaymentFeeConfigs(teamID, storeID string) (map[string]*domain.PaymentFeeConfig, error)
	SavePaymentFeeConfig(teamID, storeID string, config *domain.PaymentFeeConfig) error
	ListCustomCosts(teamID string) ([]*domain.CustomCost, error)
	CreateCustomCost(teamID string, cost *domain.CustomCost) (*domain.CustomCost, error)
	UpdateCustomCost(teamID string, cost *domain.CustomCost) error
	DeactivateCustomCost(teamID, costID string) error
	CreateCustomCostEntry(teamID string, entry *domain.CustomCostEntry) (*domain.CustomCostEntry, error)
	AddProductCostEntry(ctx context.Context, teamID, variantID string, costPrice float64, effectiveFrom time.Time) (*domain.CostEntry, error)
}

type Service struct {
	storeRepo        repository.StoreRepository
	shippingTierRepo repository.ShippingTierRepository
	paymentFeeRepo   repository.PaymentFeeConfigRepository
	customCostRepo   repository.CustomCostRepository
	productCostRepo  repository.ProductCostRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	shippingTierRepo repository.ShippingTierRepository,
	paymentFeeRepo repository.PaymentFeeConfigRepository,
	customCostRepo repository.CustomCostRepository,
	productCostRepo repository.ProductCostRepository,
) Configurator {
	return &Service{
		storeRepo:        storeRepo,
		shippingTierRepo: shippingTierRepo,
		paymentFeeRepo:   paymentFeeRepo,
		customCostRepo:   customCostRepo,
		productCostRepo:  productCostRepo,
	}
}

// ListStores lista as lojas conectadas do time
func (s *Service) ListStores(teamID string) ([]*domain.Store, error) {
	stores, err := s.storeRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lojas do time: %w", err)
	}

	return stores, nil
}

// GetShippingTiers retorna as faixas de custo de frete configuradas na loja
func (s *Service) GetShippingTiers(teamID, storeID string) ([]*domain.ShippingTier, error) {
	if _, err := s.requireStore(teamID, storeID); err != nil {
		return nil, err
	}

	tiers, err := s.shippingTierRepo.ListByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar faixas de frete: %w", err)
	}

	return tiers, nil
}

// ValidateShippingTiers aponta lacunas, sobreposições e custos negativos sem
// persistir nada
func (s *Service) ValidateShippingTiers(tiers []*domain.ShippingTier) []calculating.TierIssue {
	return calculating.ValidateShippingTiers(tiers)
}

// ReplaceShippingTiers substitui o conjunto de faixas da loja. Custos negativos
// bloqueiam a gravação; lacunas e sobreposições são avisos e a gravação segue —
// o cálculo resolve a primeira faixa que casar.
func (s *Service) ReplaceShippingTiers(ctx context.Context, teamID, storeID string, tiers []*domain.ShippingTier) ([]calculating.TierIssue, error) {
	if _, err := s.requireStore(teamID, storeID); err != nil {
		return nil, err
	}

	issues := calculating.ValidateShippingTiers(tiers)
	for _, issue := range issues {
		if issue.Kind == calculating.TierIssueNegativeCost {
			return issues, fmt.Errorf("%w: %s", ErrInvalidTiers, issue.Message)
		}
	}

	for _, tier := range tiers {
		tier.StoreID = storeID
	}

	if err := s.shippingTierRepo.ReplaceForStore(ctx, storeID, tiers); err != nil {
		return issues, fmt.Errorf("erro ao gravar faixas de frete: %w", err)
	}

	return issues, nil
}

// GetPaymentFeeConfigs retorna as tabelas de taxa por gateway configuradas na
// loja, indexadas pela chave do gateway em minúsculas
func (s *Service) GetPaymentFeeConfigs(teamID, storeID string) (map[string]*domain.PaymentFeeConfig, error) {
	if _, err := s.requireStore(teamID, storeID); err != nil {
		return nil, err
	}

	configs, err := s.paymentFeeRepo.GetByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configurações de taxa: %w", err)
	}

	return configs, nil
}

// SavePaymentFeeConfig grava ou atualiza a tabela de taxa de um gateway
func (s *Service) SavePaymentFeeConfig(teamID, storeID string, config *domain.PaymentFeeConfig) error {
	if _, err := s.requireStore(teamID, storeID); err != nil {
		return err
	}

	config.Gateway = strings.ToLower(strings.TrimSpace(config.Gateway))
	if config.Gateway == "" {
		return fmt.Errorf("%w: gateway é obrigatório", ErrInvalidFeeConfig)
	}

	if config.PercentageFee < 0 || config.PercentageFee > 100 {
		return fmt.Errorf("%w: taxa percentual deve estar entre 0 e 100", ErrInvalidFeeConfig)
	}

	if config.FixedFee < 0 {
		return fmt.Errorf("%w: taxa fixa não pode ser negativa", ErrInvalidFeeConfig)
	}

	config.StoreID = storeID

	if err := s.paymentFeeRepo.SaveOrUpdate(config); err != nil {
		return fmt.Errorf("erro ao gravar configuração de taxa: %w", err)
	}

	return nil
}

// ListCustomCosts lista os custos ativos do time
func (s *Service) ListCustomCosts(teamID string) ([]*domain.CustomCost, error) {
	costs, err := s.customCostRepo.ListActiveByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar custos do time: %w", err)
	}

	return costs, nil
}

// CreateCustomCost cria um custo do time fora da plataforma
func (s *Service) CreateCustomCost(teamID string, cost *domain.CustomCost) (*domain.CustomCost, error) {
	if err := validateCustomCost(cost); err != nil {
		return nil, err
	}

	cost.TeamID = teamID

	created, err := s.customCostRepo.Create(cost)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar custo: %w", err)
	}

	return created, nil
}

// UpdateCustomCost atualiza um custo existente do time
func (s *Service) UpdateCustomCost(teamID string, cost *domain.CustomCost) error {
	if err := validateCustomCost(cost); err != nil {
		return err
	}

	existing, err := s.requireCost(teamID, cost.ID)
	if err != nil {
		return err
	}

	cost.TeamID = existing.TeamID

	if err := s.customCostRepo.Update(cost); err != nil {
		return fmt.Errorf("erro ao atualizar custo: %w", err)
	}

	return nil
}

// DeactivateCustomCost desativa um custo do time. Custos desativados deixam de
// entrar nos relatórios mas permanecem no histórico.
func (s *Service) DeactivateCustomCost(teamID, costID string) error {
	if _, err := s.requireCost(teamID, costID); err != nil {
		return err
	}

	if err := s.customCostRepo.Deactivate(costID); err != nil {
		return fmt.Errorf("erro ao desativar custo: %w", err)
	}

	return nil
}

// CreateCustomCostEntry registra um lançamento datado contra um custo do time
func (s *Service) CreateCustomCostEntry(teamID string, entry *domain.CustomCostEntry) (*domain.CustomCostEntry, error) {
	if entry.CustomCostID == "" || entry.Date.IsZero() {
		return nil, fmt.Errorf("%w: custo e data são obrigatórios", ErrMissingCostData)
	}

	if _, err := s.requireCost(teamID, entry.CustomCostID); err != nil {
		return nil, err
	}

	created, err := s.customCostRepo.CreateEntry(entry)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar lançamento de custo: %w", err)
	}

	return created, nil
}

// AddProductCostEntry adiciona um registro no histórico de custo da variante.
// Registros antigos nunca são alterados: o custo vigente em cada data segue
// resolvendo pelo histórico.
func (s *Service) AddProductCostEntry(ctx context.Context, teamID, variantID string, costPrice float64, effectiveFrom time.Time) (*domain.CostEntry, error) {
	if variantID == "" || effectiveFrom.IsZero() {
		return nil, fmt.Errorf("%w: variante e data de vigência são obrigatórias", ErrMissingCostData)
	}

	if costPrice < 0 {
		return nil, ErrInvalidCostPrice
	}

	if err := s.requireVariant(teamID, variantID); err != nil {
		return nil, err
	}

	entry, err := s.productCostRepo.AddCostEntry(ctx, variantID, costPrice, effectiveFrom)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar custo do produto: %w", err)
	}

	return entry, nil
}

func (s *Service) requireStore(teamID, storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar loja: %w", err)
	}

	if store == nil || store.TeamID != teamID {
		return nil, ErrStoreNotFound
	}

	return store, nil
}

func (s *Service) requireVariant(teamID, variantID string) error {
	ownerTeamID, err := s.productCostRepo.GetVariantTeamID(variantID)
	if err != nil {
		return fmt.Errorf("erro ao buscar time da variante: %w", err)
	}

	if ownerTeamID == "" || ownerTeamID != teamID {
		return ErrVariantNotFound
	}

	return nil
}

func (s *Service) requireCost(teamID, costID string) (*domain.CustomCost, error) {
	cost, err := s.customCostRepo.GetByID(costID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar custo: %w", err)
	}

	if cost == nil || cost.TeamID != teamID {
		return nil, ErrCostNotFound
	}

	return cost, nil
}

func validateCustomCost(cost *domain.CustomCost) error {
	if cost == nil || cost.Name == "" {
		return fmt.Errorf("%w: nome é obrigatório", ErrMissingCostData)
	}

	switch cost.CostType {
	case domain.CostTypeFixed, domain.CostTypeVariable, domain.CostTypeSalary, domain.CostTypeOneTime:
	default:
		return fmt.Errorf("%w: tipo de custo inválido: %s", ErrMissingCostData, cost.CostType)
	}

	switch cost.RecurrenceType {
	case domain.RecurrenceMonthly, domain.RecurrenceNone:
	case "":
		cost.RecurrenceType = domain.RecurrenceNone
	default:
		return fmt.Errorf("%w: recorrência inválida: %s", ErrMissingCostData, cost.RecurrenceType)
	}

	if cost.MonthlyAmount < 0 {
		return fmt.Errorf("%w: valor mensal não pode ser negativo", ErrMissingCostData)
	}

	return nil
}
