package calculating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveCostAtDate(t *testing.T) {
	tests := []struct {
		name     string
		history  []*domain.CostEntry
		target   time.Time
		expected *float64
	}{
		{
			name:     "Histórico vazio - retorna nil",
			history:  nil,
			target:   date(2024, 3, 15),
			expected: nil,
		},
		{
			name: "Nenhuma entrada vigente antes da data - retorna nil",
			history: []*domain.CostEntry{
				{CostPrice: 50.0, EffectiveFrom: date(2024, 5, 1)},
			},
			target:   date(2024, 3, 15),
			expected: nil,
		},
		{
			name: "Entrada única vigente - retorna o custo",
			history: []*domain.CostEntry{
				{CostPrice: 50.0, EffectiveFrom: date(2024, 1, 1)},
			},
			target:   date(2024, 3, 15),
			expected: floatPtr(50.0),
		},
		{
			name: "Múltiplas entradas - escolhe a de maior vigência não posterior à data",
			history: []*domain.CostEntry{
				{CostPrice: 40.0, EffectiveFrom: date(2024, 1, 1), EffectiveTo: timePtr(date(2024, 2, 29))},
				{CostPrice: 45.0, EffectiveFrom: date(2024, 3, 1), EffectiveTo: timePtr(date(2024, 5, 31))},
				{CostPrice: 55.0, EffectiveFrom: date(2024, 6, 1)},
			},
			target:   date(2024, 3, 15),
			expected: floatPtr(45.0),
		},
		{
			name: "Histórico fora de ordem - reordena antes de resolver",
			history: []*domain.CostEntry{
				{CostPrice: 55.0, EffectiveFrom: date(2024, 6, 1)},
				{CostPrice: 40.0, EffectiveFrom: date(2024, 1, 1), EffectiveTo: timePtr(date(2024, 2, 29))},
				{CostPrice: 45.0, EffectiveFrom: date(2024, 3, 1), EffectiveTo: timePtr(date(2024, 5, 31))},
			},
			target:   date(2024, 7, 1),
			expected: floatPtr(55.0),
		},
		{
			name: "Data exatamente igual à vigência - entrada vale",
			history: []*domain.CostEntry{
				{CostPrice: 45.0, EffectiveFrom: date(2024, 3, 1)},
			},
			target:   date(2024, 3, 1),
			expected: floatPtr(45.0),
		},
		{
			name: "Empate em vigência - a entrada aberta vence",
			history: []*domain.CostEntry{
				{CostPrice: 48.0, EffectiveFrom: date(2024, 3, 1), EffectiveTo: timePtr(date(2024, 3, 31))},
				{CostPrice: 52.0, EffectiveFrom: date(2024, 3, 1)},
			},
			target:   date(2024, 3, 15),
			expected: floatPtr(52.0),
		},
		{
			name: "Entradas nulas no histórico são ignoradas",
			history: []*domain.CostEntry{
				nil,
				{CostPrice: 45.0, EffectiveFrom: date(2024, 3, 1)},
				nil,
			},
			target:   date(2024, 3, 15),
			expected: floatPtr(45.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveCostAtDate(tt.history, tt.target)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
