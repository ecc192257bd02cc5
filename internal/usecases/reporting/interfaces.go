package reporting

import (
	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

// Reporter expõe as superfícies de relatório de lucratividade. Todas derivam
// da mesma computação de demonstrativo — dashboard, DRE e lucro por pedido
// nunca podem divergir no número final.
type Reporter interface {
	GetProfitLoss(teamID string, filters *domain.ReportFilters) (*domain.ProfitLossStatement, error)
	GetDashboardSummary(teamID string, filters *domain.ReportFilters) (*domain.DashboardSummary, error)
	GetOrderProfits(teamID string, filters *domain.ReportFilters) ([]*domain.OrderProfit, error)
}
