package shopifyclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	shopifydomain "github.com/profitlens/profit-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/profitlens/profit-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// linkNextPattern extrai o cursor page_info do header Link da Shopify
var linkNextPattern = regexp.MustCompile(`<[^>]*[?&]page_info=([^&>]+)[^>]*>;\s*rel="next"`)

type Client interface {
	ListOrders(shopDomain string, updatedAtMin time.Time) ([]shopifydomain.Order, error)
	ListOrderTransactions(shopDomain string, orderID int64) ([]shopifydomain.Transaction, error)
}

type ShopifyClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListOrders busca todos os pedidos atualizados desde updatedAtMin, seguindo a
// paginação por cursor (page_info) do header Link até esgotar as páginas
func (c *ShopifyClient) ListOrders(shopDomain string, updatedAtMin time.Time) ([]shopifydomain.Order, error) {
	orders := make([]shopifydomain.Order, 0)

	params := url.Values{}
	params.Set("status", "any")
	params.Set("limit", fmt.Sprintf("%d", c.cfg.Shopify.PageSize))
	params.Set("updated_at_min", updatedAtMin.Format(time.RFC3339))

	requestURL := c.buildURL(shopDomain, "orders.json", params)

	for requestURL != "" {
		body, linkHeader, err := c.doRequest(requestURL)
		if err != nil {
			return nil, err
		}

		var response shopifydomain.OrdersResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar resposta de pedidos")
		}

		orders = append(orders, response.Orders...)

		requestURL = c.nextPageURL(shopDomain, linkHeader)
	}

	return orders, nil
}

// ListOrderTransactions busca as transações de pagamento de um pedido
func (c *ShopifyClient) ListOrderTransactions(shopDomain string, orderID int64) ([]shopifydomain.Transaction, error) {
	requestURL := c.buildURL(shopDomain, fmt.Sprintf("orders/%d/transactions.json", orderID), nil)

	body, _, err := c.doRequest(requestURL)
	if err != nil {
		return nil, err
	}

	var response shopifydomain.TransactionsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta de transações")
	}

	return response.Transactions, nil
}

func (c *ShopifyClient) buildURL(shopDomain, resource string, params url.Values) string {
	base := fmt.Sprintf("https://%s/admin/api/%s/%s", shopDomain, c.cfg.Shopify.APIVersion, resource)
	if len(params) == 0 {
		return base
	}
	return base + "?" + params.Encode()
}

func (c *ShopifyClient) doRequest(requestURL string) ([]byte, string, error) {
	return c.doRequestWithRetry(requestURL, true)
}

func (c *ShopifyClient) doRequestWithRetry(requestURL string, retryOnRateLimit bool) ([]byte, string, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao criar requisição")
	}

	req.Header.Set("X-Shopify-Access-Token", c.cfg.Shopify.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao chamar a API da Shopify")
	}
	defer resp.Body.Close()

	// Limite de requisições da Shopify: espera e repete uma única vez
	if resp.StatusCode == http.StatusTooManyRequests && retryOnRateLimit {
		retryAfter := 2 * time.Second
		if value := resp.Header.Get("Retry-After"); value != "" {
			if parsed, parseErr := time.ParseDuration(value + "s"); parseErr == nil {
				retryAfter = parsed
			}
		}

		time.Sleep(retryAfter)
		return c.doRequestWithRetry(requestURL, false)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("API da Shopify respondeu com status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao ler resposta da Shopify")
	}

	return body, resp.Header.Get("Link"), nil
}

// nextPageURL monta a URL da próxima página a partir do cursor do header Link.
// Header sem rel="next" encerra a paginação.
func (c *ShopifyClient) nextPageURL(shopDomain, linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	matches := linkNextPattern.FindStringSubmatch(linkHeader)
	if len(matches) < 2 {
		return ""
	}

	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", c.cfg.Shopify.PageSize))
	params.Set("page_info", matches[1])

	return c.buildURL(shopDomain, "orders.json", params)
}
