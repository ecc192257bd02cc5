package calculating

import (
	"fmt"
	"sort"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

// CalculateShippingCost calcula o custo real de envio de um pedido em função
// da quantidade de itens físicos (itens isentos já devem ter sido excluídos
// pelo chamador) e das faixas de frete configuradas pela loja.
//
// A faixa escolhida é a primeira, em ordem crescente de MinItems, que cobre a
// quantidade. Quando nenhuma faixa cobre a quantidade, vale a faixa mais
// próxima abaixo dela; quantidades abaixo da menor faixa usam a menor faixa.
// O relatório nunca falha por configuração incompleta.
func CalculateShippingCost(itemCount int, tiers []*domain.ShippingTier, zone string) float64 {
	if itemCount <= 0 || len(tiers) == 0 {
		return 0
	}

	applicable := make([]*domain.ShippingTier, 0, len(tiers))
	for _, tier := range tiers {
		if tier == nil {
			continue
		}
		if tier.MatchesZone(zone) {
			applicable = append(applicable, tier)
		}
	}

	if len(applicable) == 0 {
		return 0
	}

	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].MinItems < applicable[j].MinItems
	})

	var selected *domain.ShippingTier
	for _, tier := range applicable {
		if itemCount < tier.MinItems {
			continue
		}
		if tier.MaxItems != nil && itemCount > *tier.MaxItems {
			continue
		}
		selected = tier
		break
	}

	// Sem faixa exata (lacuna ou quantidade acima da última faixa limitada):
	// usa a faixa mais próxima abaixo da quantidade, ou a menor faixa quando a
	// quantidade está abaixo de todas
	if selected == nil {
		selected = applicable[0]
		for _, tier := range applicable {
			if tier.MinItems <= itemCount {
				selected = tier
			}
		}
	}

	cost := selected.Cost
	if itemCount > selected.MinItems && selected.CostPerAdditionalItem > 0 {
		cost += float64(itemCount-selected.MinItems) * selected.CostPerAdditionalItem
	}

	return utils.RoundWithTwoDecimalPlace(cost)
}

// TierIssue descreve um problema encontrado na configuração de faixas de frete
type TierIssue struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	TierIssueGap          = "GAP"
	TierIssueOverlap      = "OVERLAP"
	TierIssueNegativeCost = "NEGATIVE_COST"
)

// ValidateShippingTiers verifica lacunas, sobreposições e custos negativos em
// um conjunto de faixas, sem alterá-lo. É usada na configuração; o cálculo do
// relatório nunca rejeita faixas malformadas.
func ValidateShippingTiers(tiers []*domain.ShippingTier) []TierIssue {
	issues := make([]TierIssue, 0)

	if len(tiers) == 0 {
		return issues
	}

	sorted := make([]*domain.ShippingTier, 0, len(tiers))
	for _, tier := range tiers {
		if tier != nil {
			sorted = append(sorted, tier)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinItems < sorted[j].MinItems
	})

	for _, tier := range sorted {
		if tier.Cost < 0 || tier.CostPerAdditionalItem < 0 {
			issues = append(issues, TierIssue{
				Kind:    TierIssueNegativeCost,
				Message: fmt.Sprintf("faixa a partir de %d itens tem custo negativo", tier.MinItems),
			})
		}
	}

	for i := 0; i < len(sorted)-1; i++ {
		current := sorted[i]
		next := sorted[i+1]

		if current.MaxItems == nil {
			// Faixa aberta seguida de outra faixa: tudo depois dela sobrepõe
			issues = append(issues, TierIssue{
				Kind:    TierIssueOverlap,
				Message: fmt.Sprintf("faixa aberta a partir de %d itens sobrepõe a faixa a partir de %d", current.MinItems, next.MinItems),
			})
			continue
		}

		if next.MinItems <= *current.MaxItems {
			issues = append(issues, TierIssue{
				Kind:    TierIssueOverlap,
				Message: fmt.Sprintf("faixas %d-%d e a partir de %d se sobrepõem", current.MinItems, *current.MaxItems, next.MinItems),
			})
		} else if next.MinItems > *current.MaxItems+1 {
			issues = append(issues, TierIssue{
				Kind:    TierIssueGap,
				Message: fmt.Sprintf("lacuna entre %d e %d itens", *current.MaxItems, next.MinItems),
			})
		}
	}

	return issues
}

// CountPhysicalItems conta os itens de um pedido que contam para o frete,
// excluindo variantes isentas de envio
func CountPhysicalItems(items []*domain.OrderLineItem, exemptVariants map[string]bool) int {
	count := 0
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.VariantID != nil && exemptVariants[*item.VariantID] {
			continue
		}
		count += item.Quantity
	}
	return count
}
