package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

// Configuração de referência: 1 item 32.00, 2 itens 42.00, 3+ itens 52.00 com
// 5.00 por item adicional
func referenceTiers() []*domain.ShippingTier {
	return []*domain.ShippingTier{
		{MinItems: 1, MaxItems: intPtr(1), Cost: 32.0},
		{MinItems: 2, MaxItems: intPtr(2), Cost: 42.0},
		{MinItems: 3, MaxItems: nil, Cost: 52.0, CostPerAdditionalItem: 5.0},
	}
}

func TestCalculateShippingCost(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		tiers     []*domain.ShippingTier
		zone      string
		expected  float64
	}{
		{
			name:      "Zero itens - custo zero",
			itemCount: 0,
			tiers:     referenceTiers(),
			expected:  0,
		},
		{
			name:      "Sem faixas configuradas - custo zero",
			itemCount: 3,
			tiers:     nil,
			expected:  0,
		},
		{
			name:      "Um item - primeira faixa",
			itemCount: 1,
			tiers:     referenceTiers(),
			expected:  32.0,
		},
		{
			name:      "Dois itens - segunda faixa",
			itemCount: 2,
			tiers:     referenceTiers(),
			expected:  42.0,
		},
		{
			name:      "Três itens - faixa aberta sem adicional",
			itemCount: 3,
			tiers:     referenceTiers(),
			expected:  52.0,
		},
		{
			name:      "Cinco itens - faixa aberta com dois itens adicionais",
			itemCount: 5,
			tiers:     referenceTiers(),
			expected:  62.0,
		},
		{
			name:      "Quantidade acima de todas as faixas limitadas - usa a faixa mais alta",
			itemCount: 10,
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: intPtr(1), Cost: 32.0},
				{MinItems: 2, MaxItems: intPtr(4), Cost: 42.0},
			},
			expected: 42.0,
		},
		{
			name:      "Quantidade abaixo da menor faixa - usa a menor faixa",
			itemCount: 1,
			tiers: []*domain.ShippingTier{
				{MinItems: 2, MaxItems: intPtr(3), Cost: 20.0},
				{MinItems: 4, MaxItems: nil, Cost: 35.0},
			},
			expected: 20.0,
		},
		{
			name:      "Quantidade em lacuna entre faixas - usa a faixa mais próxima abaixo",
			itemCount: 2,
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: intPtr(1), Cost: 32.0},
				{MinItems: 4, MaxItems: nil, Cost: 52.0},
			},
			expected: 32.0,
		},
		{
			name:      "Faixas fora de ordem - reordena antes de escolher",
			itemCount: 2,
			tiers: []*domain.ShippingTier{
				{MinItems: 3, MaxItems: nil, Cost: 52.0, CostPerAdditionalItem: 5.0},
				{MinItems: 1, MaxItems: intPtr(1), Cost: 32.0},
				{MinItems: 2, MaxItems: intPtr(2), Cost: 42.0},
			},
			expected: 42.0,
		},
		{
			name:      "Faixa de zona específica - só vale para a zona",
			itemCount: 1,
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: nil, Cost: 32.0},
				{MinItems: 1, MaxItems: nil, Cost: 90.0, ShippingZone: stringPtr("international")},
			},
			zone:     "domestic",
			expected: 32.0,
		},
		{
			name:      "Pedido internacional - faixa da zona internacional",
			itemCount: 1,
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: nil, Cost: 90.0, ShippingZone: stringPtr("international")},
			},
			zone:     "international",
			expected: 90.0,
		},
		{
			name:      "Nenhuma faixa para a zona - custo zero",
			itemCount: 1,
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: nil, Cost: 90.0, ShippingZone: stringPtr("international")},
			},
			zone:     "domestic",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateShippingCost(tt.itemCount, tt.tiers, tt.zone)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// O custo de frete nunca pode diminuir quando a quantidade de itens aumenta,
// mesmo com faixas incompletas
func TestCalculateShippingCostMonotonicity(t *testing.T) {
	tests := []struct {
		name  string
		tiers []*domain.ShippingTier
	}{
		{
			name:  "Faixas de referência contíguas",
			tiers: referenceTiers(),
		},
		{
			name: "Faixas com lacuna e início acima de um item",
			tiers: []*domain.ShippingTier{
				{MinItems: 2, MaxItems: intPtr(3), Cost: 20.0},
				{MinItems: 6, MaxItems: nil, Cost: 35.0, CostPerAdditionalItem: 2.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := CalculateShippingCost(1, tt.tiers, "")
			for itemCount := 2; itemCount <= 30; itemCount++ {
				cost := CalculateShippingCost(itemCount, tt.tiers, "")
				assert.GreaterOrEqualf(t, cost, previous, "custo caiu de %.2f para %.2f em %d itens", previous, cost, itemCount)
				previous = cost
			}
		})
	}
}

func TestValidateShippingTiers(t *testing.T) {
	tests := []struct {
		name          string
		tiers         []*domain.ShippingTier
		expectedKinds []string
	}{
		{
			name:          "Sem faixas - sem problemas",
			tiers:         nil,
			expectedKinds: []string{},
		},
		{
			name:          "Configuração contígua - sem problemas",
			tiers:         referenceTiers(),
			expectedKinds: []string{},
		},
		{
			name: "Lacuna entre faixas",
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: intPtr(1), Cost: 32.0},
				{MinItems: 4, MaxItems: nil, Cost: 52.0},
			},
			expectedKinds: []string{TierIssueGap},
		},
		{
			name: "Sobreposição entre faixas",
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: intPtr(3), Cost: 32.0},
				{MinItems: 2, MaxItems: nil, Cost: 52.0},
			},
			expectedKinds: []string{TierIssueOverlap},
		},
		{
			name: "Faixa aberta seguida de outra faixa - sobreposição",
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: nil, Cost: 32.0},
				{MinItems: 5, MaxItems: nil, Cost: 52.0},
			},
			expectedKinds: []string{TierIssueOverlap},
		},
		{
			name: "Custo negativo",
			tiers: []*domain.ShippingTier{
				{MinItems: 1, MaxItems: nil, Cost: -10.0},
			},
			expectedKinds: []string{TierIssueNegativeCost},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ValidateShippingTiers(tt.tiers)

			kinds := make([]string, 0, len(issues))
			for _, issue := range issues {
				kinds = append(kinds, issue.Kind)
			}

			assert.Equal(t, tt.expectedKinds, kinds)
		})
	}
}

func TestCountPhysicalItems(t *testing.T) {
	items := []*domain.OrderLineItem{
		{VariantID: stringPtr("v1"), Quantity: 2},
		{VariantID: stringPtr("v2"), Quantity: 1},
		{VariantID: nil, Quantity: 3},
	}

	t.Run("Sem isenções - conta tudo", func(t *testing.T) {
		assert.Equal(t, 6, CountPhysicalItems(items, map[string]bool{}))
	})

	t.Run("Variante isenta não conta", func(t *testing.T) {
		exempt := map[string]bool{"v1": true}
		assert.Equal(t, 4, CountPhysicalItems(items, exempt))
	})

	t.Run("Item sem variante sempre conta", func(t *testing.T) {
		exempt := map[string]bool{"v1": true, "v2": true}
		assert.Equal(t, 3, CountPhysicalItems(items, exempt))
	})
}
