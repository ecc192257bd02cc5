// Package calculating contém o núcleo de cálculo de lucratividade: funções
// puras sobre dados já carregados, sem acesso a banco ou rede.
package calculating

import (
	"sort"
	"time"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

// ResolveCostAtDate resolve o custo de produto vigente na data informada a
// partir do histórico de custos da variante: a entrada com o maior
// EffectiveFrom que não seja posterior à data. Retorna nil quando nenhum
// custo era conhecido na data — o item contribui com COGS zero e o relatório
// sinaliza a completude de dados em outro lugar.
//
// O histórico não precisa vir ordenado; a função reordena defensivamente.
// Empates em EffectiveFrom preferem a entrada ainda aberta (sem EffectiveTo),
// que representa a correção mais recente.
func ResolveCostAtDate(history []*domain.CostEntry, target time.Time) *float64 {
	if len(history) == 0 {
		return nil
	}

	candidates := make([]*domain.CostEntry, 0, len(history))
	for _, entry := range history {
		if entry == nil {
			continue
		}
		if !entry.EffectiveFrom.After(target) {
			candidates = append(candidates, entry)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].EffectiveFrom.Equal(candidates[j].EffectiveFrom) {
			// A entrada aberta vence o empate
			return candidates[i].IsOpen() && !candidates[j].IsOpen()
		}
		return candidates[i].EffectiveFrom.After(candidates[j].EffectiveFrom)
	})

	cost := candidates[0].CostPrice
	return &cost
}
