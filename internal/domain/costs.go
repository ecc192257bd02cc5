package domain

import (
	"time"
)

type CostType string

const (
	CostTypeFixed    CostType = "FIXED"
	CostTypeVariable CostType = "VARIABLE"
	CostTypeSalary   CostType = "SALARY"
	CostTypeOneTime  CostType = "ONE_TIME"
)

type RecurrenceType string

const (
	RecurrenceMonthly RecurrenceType = "MONTHLY"
	RecurrenceNone    RecurrenceType = "NONE"
)

// CustomCost representa um custo do time fora da plataforma (aluguel, salários,
// ferramentas, etc). Custos FIXED/SALARY com recorrência MONTHLY são rateados
// proporcionalmente no período do relatório; os demais entram pelos lançamentos
// discretos (CustomCostEntry).
type CustomCost struct {
	ID             string         `json:"id"`
	TeamID         string         `json:"team_id"`
	Name           string         `json:"name"`
	CostType       CostType       `json:"cost_type"`
	RecurrenceType RecurrenceType `json:"recurrence_type"`
	MonthlyAmount  float64        `json:"monthly_amount"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsMonthlyRecurring indica se o custo deve ser rateado por dia no período
// em vez de entrar por lançamentos discretos
func (c *CustomCost) IsMonthlyRecurring() bool {
	if c.RecurrenceType != RecurrenceMonthly {
		return false
	}

	return c.CostType == CostTypeFixed || c.CostType == CostTypeSalary
}

// CustomCostEntry representa um lançamento datado contra um CustomCost
type CustomCostEntry struct {
	ID           string    `json:"id"`
	CustomCostID string    `json:"custom_cost_id"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Description  *string   `json:"description"`
}

// PaymentFeeConfig representa a tabela de taxas de um gateway configurada pela
// loja. A busca é feita pela chave do gateway em minúsculas.
type PaymentFeeConfig struct {
	ID            string  `json:"id"`
	StoreID       string  `json:"store_id"`
	Gateway       string  `json:"gateway"`
	PercentageFee float64 `json:"percentage_fee"`
	FixedFee      float64 `json:"fixed_fee"`
	IsActive      bool    `json:"is_active"`
}

// Tabela padrão aplicada quando a loja não configurou o gateway
const (
	DefaultPaymentPercentageFee = 2.9
	DefaultPaymentFixedFee      = 3.0
)
