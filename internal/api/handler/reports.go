package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/internal/usecases/reporting"
	"github.com/profitlens/profit-dashboard-api/pkg/apiErrors"
	"github.com/profitlens/profit-dashboard-api/pkg/middleware"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

// GetProfitLoss retorna o demonstrativo de resultados completo do período
func GetProfitLoss(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		statement, err := service.GetProfitLoss(userClaims.TeamID, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statement); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetDashboardSummary retorna o resumo do dashboard para o período
func GetDashboardSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.GetDashboardSummary(userClaims.TeamID, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetOrderProfits retorna o lucro calculado pedido a pedido no período
func GetOrderProfits(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseReportFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		profits, err := service.GetOrderProfits(userClaims.TeamID, filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profits); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// parseReportFilters extrai período e loja da query string. As datas usam o
// formato YYYY-MM-DD; a validação do período em si fica no serviço.
func parseReportFilters(r *http.Request) (*domain.ReportFilters, error) {
	filters := &domain.ReportFilters{}

	if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
		startDate, err := utils.ParseDate(startDateStr)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
		endDate, err := utils.ParseDate(endDateStr)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	if storeID := r.URL.Query().Get("store_id"); storeID != "" {
		filters.StoreID = &storeID
	}

	return filters, nil
}

// handleReportError traduz erros dos serviços de relatório para a resposta da API
func handleReportError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	errorMsg := err.Error()
	switch {
	case strings.Contains(errorMsg, "loja não encontrada"):
		apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "Loja não encontrada para este time", nil)

	case strings.Contains(errorMsg, "datas de início e fim"),
		strings.Contains(errorMsg, "posterior à data de fim"):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, errorMsg, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
	}
}
