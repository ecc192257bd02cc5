package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
)

func TestResolvePaymentFee(t *testing.T) {
	configs := map[string]*domain.PaymentFeeConfig{
		"stripe": {Gateway: "stripe", PercentageFee: 1.4, FixedFee: 1.8},
	}

	tests := []struct {
		name     string
		tx       *domain.Transaction
		configs  map[string]*domain.PaymentFeeConfig
		expected float64
	}{
		{
			name:     "Transação nula - taxa zero",
			tx:       nil,
			configs:  configs,
			expected: 0,
		},
		{
			name: "Taxa já calculada pela plataforma - usa o valor dela",
			tx: &domain.Transaction{
				Gateway:              "shopify_payments",
				Amount:               100.0,
				PaymentFee:           4.15,
				PaymentFeeCalculated: true,
			},
			configs:  configs,
			expected: 4.15,
		},
		{
			name: "Flag de taxa calculada mas valor zero - recalcula",
			tx: &domain.Transaction{
				Gateway:              "shopify_payments",
				Amount:               100.0,
				PaymentFee:           0,
				PaymentFeeCalculated: true,
			},
			configs:  configs,
			expected: 5.9, // 100 * 2.9% + 3.00
		},
		{
			name: "Gateway configurado pela loja - usa a tabela da loja",
			tx: &domain.Transaction{
				Gateway: "stripe",
				Amount:  200.0,
			},
			configs:  configs,
			expected: 4.6, // 200 * 1.4% + 1.80
		},
		{
			name: "Busca de configuração ignora maiúsculas",
			tx: &domain.Transaction{
				Gateway: "Stripe",
				Amount:  200.0,
			},
			configs:  configs,
			expected: 4.6,
		},
		{
			name: "Gateway sem configuração - tabela padrão",
			tx: &domain.Transaction{
				Gateway: "klarna",
				Amount:  100.0,
			},
			configs:  configs,
			expected: 5.9,
		},
		{
			name: "Sem nenhuma configuração - tabela padrão",
			tx: &domain.Transaction{
				Gateway: "paypal",
				Amount:  50.0,
			},
			configs:  nil,
			expected: 4.45, // 50 * 2.9% + 3.00
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolvePaymentFee(tt.tx, tt.configs)
			assert.InDelta(t, tt.expected, result, 0.001)
		})
	}
}

func TestNormalizeGatewayName(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Gateway conhecido", raw: "shopify_payments", expected: "Shopify Payments"},
		{name: "Gateway conhecido com maiúsculas", raw: "STRIPE", expected: "Stripe"},
		{name: "PayPal mantém a grafia da marca", raw: "paypal", expected: "PayPal"},
		{name: "Gateway desconhecido vira título", raw: "custom_gateway", expected: "Custom Gateway"},
		{name: "Nome vazio", raw: "", expected: "Unknown"},
		{name: "Espaços em volta são ignorados", raw: "  manual  ", expected: "Manual"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeGatewayName(tt.raw))
		})
	}
}
