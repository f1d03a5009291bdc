package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crossfit-gym-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopService_GetProducts(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shop/products", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"products": []*models.Product{
				{ID: "p1", Name: "Shirt", Price: 2990, Category: models.CategoryClothing, InStock: true},
			},
		})
	}))
	defer backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})
	products := svc.GetProducts(context.Background())

	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestShopService_GetProductsFallsBackToFixtures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "backend reports failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := httptest.NewServer(tt.handler)
			defer backend.Close()

			svc := NewShopService(ShopConfig{BaseURL: backend.URL})
			products := svc.GetProducts(context.Background())

			assert.Len(t, products, len(MockProducts()), "expected the fixture catalog")
		})
	}
}

func TestShopService_GetProductsKeepsEmptyCatalog(t *testing.T) {
	// A successful response with no products is a deliberately empty
	// catalog, not a failure. Fixtures must not replace it.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "products": []*models.Product{}})
	}))
	defer backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})
	products := svc.GetProducts(context.Background())

	assert.Empty(t, products)
}

func TestShopService_GetProductsFallsBackWhenUnreachable(t *testing.T) {
	// Closed server: connection refused.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})
	products := svc.GetProducts(context.Background())

	assert.Len(t, products, len(MockProducts()), "expected the fixture catalog")
}

func TestShopService_GetProductFixtureLookup(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})

	fixture := MockProducts()[0]
	product, err := svc.GetProduct(context.Background(), fixture.ID)
	require.NoError(t, err)
	assert.Equal(t, fixture.Name, product.Name)

	_, err = svc.GetProduct(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestShopService_CartSendsBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.CartResponse{
			Items:    []models.CartItem{{ID: "i1", ProductID: "p1", Price: 2990, Quantity: 1, Subtotal: 2990}},
			Subtotal: 2990, ShippingCost: 490, Total: 3480,
		})
	}))
	defer backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})
	cart, err := svc.GetCart(context.Background(), "token123")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token123", gotAuth)
	assert.Equal(t, 3480, cart.Total, "totals come from the backend")
}

func TestShopService_CartErrorsPropagate(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})
	_, err := svc.GetCart(context.Background(), "token123")
	require.Error(t, err, "cart errors must propagate so the session fallback can take over")
	assert.ErrorIs(t, err, models.ErrBackendUnavailable)
}

func TestShopService_TransportErrorKeepsCause(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})
	_, err := svc.GetCart(context.Background(), "token123")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrBackendUnavailable)
	// The underlying transport error must survive for the logs
	assert.Contains(t, err.Error(), "/api/shop/cart")
}

func TestShopService_GetWishlistFallsBackToEmpty(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	svc := NewShopService(ShopConfig{BaseURL: backend.URL})
	wishlist := svc.GetWishlist(context.Background(), "token123")

	assert.NotNil(t, wishlist)
	assert.Empty(t, wishlist)
}

func TestShopService_CreateOrderValidates(t *testing.T) {
	svc := NewShopService(ShopConfig{BaseURL: "http://localhost:0"})

	_, err := svc.CreateOrder(context.Background(), "token", &models.OrderCreateRequest{})
	require.Error(t, err, "invalid order must be rejected before any network call")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
