package calculating

import (
	"strings"

	"github.com/profitlens/profit-dashboard-api/internal/domain"
	"github.com/profitlens/profit-dashboard-api/pkg/utils"
)

// ResolvePaymentFee calcula a taxa de processamento de uma transação.
//
// Quando a plataforma já calculou a taxa (flag PaymentFeeCalculated com valor
// positivo), o valor dela é usado sem recalcular — o número da plataforma é
// mais confiável que qualquer tabela local. Caso contrário a taxa vem da
// configuração do gateway da loja (chave em minúsculas) ou, na ausência dela,
// da tabela padrão (2.9% + 3.00).
func ResolvePaymentFee(tx *domain.Transaction, configs map[string]*domain.PaymentFeeConfig) float64 {
	if tx == nil {
		return 0
	}

	if tx.PaymentFeeCalculated && tx.PaymentFee > 0 {
		return utils.RoundWithTwoDecimalPlace(tx.PaymentFee)
	}

	percentage := domain.DefaultPaymentPercentageFee
	fixed := domain.DefaultPaymentFixedFee

	if config, ok := configs[strings.ToLower(tx.Gateway)]; ok && config != nil {
		percentage = config.PercentageFee
		fixed = config.FixedFee
	}

	fee := tx.Amount*percentage/100 + fixed
	return utils.RoundWithTwoDecimalPlace(fee)
}

// Nomes de exibição dos gateways mais comuns. A normalização serve apenas
// para agrupar taxas no relatório; a busca de configuração usa a chave crua
// em minúsculas.
var gatewayDisplayNames = map[string]string{
	"stripe":           "Stripe",
	"shopify_payments": "Shopify Payments",
	"paypal":           "PayPal",
	"klarna":           "Klarna",
	"mobilepay":        "MobilePay",
	"manual":           "Manual",
}

// NormalizeGatewayName converte o nome cru do gateway para a forma de exibição
func NormalizeGatewayName(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "Unknown"
	}

	if name, ok := gatewayDisplayNames[key]; ok {
		return name
	}

	// Título palavra a palavra para gateways desconhecidos
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
