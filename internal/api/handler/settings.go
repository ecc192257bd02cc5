package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/calculating"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/configuring"
	"github.com/profitlens/profit-dashboard-api/pkg/apiErrors"
	"github.com/profitlens/profit-dashboard-api/pkg/middleware"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

type ShippingTiersRequest struct {
	Tiers []*domain.ShippingTier `json:"tiers"`
}

type ShippingTiersResponse struct {
	Tiers  []*domain.ShippingTier  `json:"tiers"`
	Issues []calculating.TierIssue `json:"issues"`
}

type ProductCostEntryRequest struct {
	CostPrice     float64 `json:"cost_price"`
	EffectiveFrom string  `json:"effective_from"`
}

// ListStores lista as lojas conectadas do time do usuário
func ListStores(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		stores, err := service.ListStores(userClaims.TeamID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lojas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stores); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetShippingTiers retorna as faixas de custo de frete da loja
func GetShippingTiers(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		tiers, err := service.GetShippingTiers(userClaims.TeamID, storeID)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tiers); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ReplaceShippingTiers substitui as faixas de custo de frete da loja. A
// resposta inclui os avisos de validação que não bloquearam a gravação.
func ReplaceShippingTiers(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		var req ShippingTiersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		issues, err := service.ReplaceShippingTiers(r.Context(), userClaims.TeamID, storeID, req.Tiers)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ShippingTiersResponse{
			Tiers:  req.Tiers,
			Issues: issues,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ValidateShippingTiers valida um conjunto de faixas sem persistir nada
func ValidateShippingTiers(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShippingTiersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		issues := service.ValidateShippingTiers(req.Tiers)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"issues": issues,
			"valid":  len(issues) == 0,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetPaymentFeeConfigs retorna as tabelas de taxa por gateway da loja
func GetPaymentFeeConfigs(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		configs, err := service.GetPaymentFeeConfigs(userClaims.TeamID, storeID)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(configs); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// SavePaymentFeeConfig grava ou atualiza a tabela de taxa de um gateway da loja
func SavePaymentFeeConfig(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja não fornecido", nil)
			return
		}

		var config domain.PaymentFeeConfig
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.SavePaymentFeeConfig(userClaims.TeamID, storeID, &config); err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(config); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ListCustomCosts lista os custos ativos do time fora da plataforma
func ListCustomCosts(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		costs, err := service.ListCustomCosts(userClaims.TeamID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar custos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(costs); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// CreateCustomCost cria um custo do time (aluguel, salários, ferramentas, etc)
func CreateCustomCost(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var cost domain.CustomCost
		if err := json.NewDecoder(r.Body).Decode(&cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateCustomCost(userClaims.TeamID, &cost)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateCustomCost atualiza um custo existente do time
func UpdateCustomCost(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		costID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if costID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do custo não fornecido", nil)
			return
		}

		var cost domain.CustomCost
		if err := json.NewDecoder(r.Body).Decode(&cost); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		cost.ID = costID

		if err := service.UpdateCustomCost(userClaims.TeamID, &cost); err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeactivateCustomCost desativa um custo do time. O custo sai dos relatórios
// novos mas permanece no histórico.
func DeactivateCustomCost(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		costID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if costID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do custo não fornecido", nil)
			return
		}

		if err := service.DeactivateCustomCost(userClaims.TeamID, costID); err != nil {
			handleSettingsError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CreateCustomCostEntry registra um lançamento datado contra um custo do time
func CreateCustomCostEntry(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		costID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if costID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do custo não fornecido", nil)
			return
		}

		var entry domain.CustomCostEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry.CustomCostID = costID

		created, err := service.CreateCustomCostEntry(userClaims.TeamID, &entry)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// AddProductCostEntry adiciona um registro no histórico de custo da variante
func AddProductCostEntry(service configuring.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		variantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if variantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da variante não fornecido", nil)
			return
		}

		var req ProductCostEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		effectiveFrom, err := utils.ParseDate(req.EffectiveFrom)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de vigência inválida", nil)
			return
		}

		entry, err := service.AddProductCostEntry(r.Context(), userClaims.TeamID, variantID, req.CostPrice, *effectiveFrom)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// handleSettingsError traduz erros do serviço de configuração para a resposta da API
func handleSettingsError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, configuring.ErrStoreNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada para este time", nil)

	case errors.Is(err, configuring.ErrCostNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Custo não encontrado para este time", nil)

	case errors.Is(err, configuring.ErrVariantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Variante não encontrada para este time", nil)

	case errors.Is(err, configuring.ErrInvalidTiers),
		errors.Is(err, configuring.ErrInvalidFeeConfig),
		errors.Is(err, configuring.ErrMissingCostData),
		errors.Is(err, configuring.ErrInvalidCostPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar configuração", nil)
	}
}
