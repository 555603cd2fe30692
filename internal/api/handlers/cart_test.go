package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/api/middleware"
	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/repository/memory"
	"github.com/foodtuck/storefront-api/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	repos := memory.NewRepositories()
	notifier := cart.NewNotifier()

	router := gin.New()
	cartRoutes := router.Group("/v1/cart")
	cartRoutes.Use(middleware.SessionMiddleware(logger))
	{
		cartRoutes.GET("", HandleGetCart(repos, notifier, logger))
		cartRoutes.GET("/count", HandleCartCount(repos, notifier, logger))
		cartRoutes.POST("/items", HandleAddItem(repos, notifier, logger))
		cartRoutes.PUT("/items/:index", HandleSetQuantity(repos, notifier, logger))
		cartRoutes.DELETE("/items/:index", HandleRemoveItem(repos, notifier, logger))
		cartRoutes.POST("/coupon", HandleApplyCoupon(repos, notifier, logger))
	}

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "test-session"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) service.CartView {
	t.Helper()
	var view service.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestCartHandlers(t *testing.T) {
	addPizza := `{"id": 1, "name": "Pizza", "price": 9.99, "imageUrl": "/img/pizza.png", "quantity": 2}`

	t.Run("add item returns the refreshed cart view", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)

		require.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		require.Len(t, view.Items, 1)
		assert.True(t, view.Items[0].Subtotal.Equal(decimal.RequireFromString("19.98")))
		assert.True(t, view.Summary.GrandTotal.Equal(decimal.RequireFromString("24.98")))
	})

	t.Run("add item rejects an invalid payload", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPost, "/v1/cart/items", `{"price": 9.99}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("add item accepts a zero price and zero ID", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPost, "/v1/cart/items",
			`{"id": 0, "name": "Water", "price": 0}`)

		require.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		require.Len(t, view.Items, 1)
		assert.Equal(t, int64(0), view.Items[0].ID)
		assert.True(t, view.Items[0].Price.IsZero())
	})

	t.Run("add item rejects a negative price", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPost, "/v1/cart/items",
			`{"id": 1, "name": "Pizza", "price": -1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("get cart applies the coupon query parameter", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)

		w := doRequest(router, http.MethodGet, "/v1/cart?coupon=uzair", "")

		require.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		assert.True(t, view.Summary.DiscountedSubtotal.Equal(decimal.RequireFromString("17.98")))
		assert.True(t, view.Summary.GrandTotal.Equal(decimal.RequireFromString("22.98")))
	})

	t.Run("set quantity clamps to 1", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)

		w := doRequest(router, http.MethodPut, "/v1/cart/items/0", `{"quantity": -5}`)

		require.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		assert.Equal(t, 1, view.Items[0].Quantity)
	})

	t.Run("set quantity zero clamps to 1", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)

		w := doRequest(router, http.MethodPut, "/v1/cart/items/0", `{"quantity": 0}`)

		require.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		assert.Equal(t, 1, view.Items[0].Quantity)
	})

	t.Run("set quantity with a non-numeric index is rejected", func(t *testing.T) {
		router := newTestRouter()

		w := doRequest(router, http.MethodPut, "/v1/cart/items/abc", `{"quantity": 2}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("set quantity out of range is a no-op", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)

		w := doRequest(router, http.MethodPut, "/v1/cart/items/5", `{"quantity": 9}`)

		require.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		require.Len(t, view.Items, 1)
		assert.Equal(t, 2, view.Items[0].Quantity)
	})

	t.Run("remove item empties the cart", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)

		w := doRequest(router, http.MethodDelete, "/v1/cart/items/0", "")

		require.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		assert.Empty(t, view.Items)
	})

	t.Run("coupon endpoint resolves unknown codes to zero", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)

		w := doRequest(router, http.MethodPost, "/v1/cart/coupon", `{"code": "xyz"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Code         string          `json:"code"`
			DiscountRate decimal.Decimal `json:"discount_rate"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "xyz", resp.Code)
		assert.True(t, resp.DiscountRate.IsZero())
	})

	t.Run("count reports total quantity", func(t *testing.T) {
		router := newTestRouter()
		doRequest(router, http.MethodPost, "/v1/cart/items", addPizza)
		doRequest(router, http.MethodPost, "/v1/cart/items", `{"id": 2, "name": "Burger", "price": 5.49}`)

		w := doRequest(router, http.MethodGet, "/v1/cart/count", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Quantity int `json:"quantity"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Quantity)
	})

	t.Run("a session cookie is minted when absent", func(t *testing.T) {
		router := newTestRouter()

		req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		found := false
		for _, c := range cookies {
			if c.Name == "cart_session" && c.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "expected a cart_session cookie to be set")
	})
}
