package shopifyclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/profitlens/profit-dashboard-api/internal/config"
)

func newTestClient(httpClient *http.Client) *ShopifyClient {
	return &ShopifyClient{
		cfg:        &config.Config{},
		httpClient: httpClient,
	}
}

func TestDoRequestRateLimit(t *testing.T) {
	t.Run("deve repetir uma única vez e devolver o erro se o limite persistir", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(server.Client())

		_, _, err := client.doRequest(server.URL)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.Equal(t, 2, calls)
	})

	t.Run("deve completar a requisição quando o limite libera na repetição", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"orders":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.Client())

		body, _, err := client.doRequest(server.URL)

		assert.NoError(t, err)
		assert.Equal(t, `{"orders":[]}`, string(body))
		assert.Equal(t, 2, calls)
	})
}
