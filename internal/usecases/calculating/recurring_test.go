package calculating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDistributeMonthlyCost(t *testing.T) {
	tests := []struct {
		name          string
		monthlyAmount float64
		periodStart   time.Time
		periodEnd     time.Time
		expected      float64
	}{
		{
			name:          "Dez dias de janeiro - 10/31 do valor mensal",
			monthlyAmount: 3000.0,
			periodStart:   date(2024, 1, 1),
			periodEnd:     date(2024, 1, 10),
			expected:      3000.0 * 10.0 / 31.0,
		},
		{
			name:          "Mês inteiro - valor mensal cheio",
			monthlyAmount: 3000.0,
			periodStart:   date(2024, 1, 1),
			periodEnd:     date(2024, 1, 31),
			expected:      3000.0,
		},
		{
			name:          "Um único dia - 1/31 do valor mensal",
			monthlyAmount: 3100.0,
			periodStart:   date(2024, 1, 15),
			periodEnd:     date(2024, 1, 15),
			expected:      100.0,
		},
		{
			name:          "Fevereiro bissexto - base de 29 dias",
			monthlyAmount: 2900.0,
			periodStart:   date(2024, 2, 1),
			periodEnd:     date(2024, 2, 29),
			expected:      2900.0,
		},
		{
			name:          "Período cruzando meses - base do mês do início",
			monthlyAmount: 3100.0,
			periodStart:   date(2024, 1, 25),
			periodEnd:     date(2024, 2, 3),
			expected:      3100.0 * 10.0 / 31.0,
		},
		{
			name:          "Valor zero - rateio zero",
			monthlyAmount: 0,
			periodStart:   date(2024, 1, 1),
			periodEnd:     date(2024, 1, 10),
			expected:      0,
		},
		{
			name:          "Período invertido - rateio zero",
			monthlyAmount: 3000.0,
			periodStart:   date(2024, 1, 10),
			periodEnd:     date(2024, 1, 1),
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DistributeMonthlyCost(tt.monthlyAmount, tt.periodStart, tt.periodEnd)
			assert.InDelta(t, tt.expected, result, 0.001)
		})
	}
}
