package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"crossfit-gym-platform/internal/models"
)

// ShopConfig represents the external shop backend configuration
type ShopConfig struct {
	BaseURL string
}

// ShopService talks to the external shop backend that owns products, carts,
// orders, wishlists and reviews. Every call is a single attempt with a
// 5-second timeout; read endpoints degrade silently to fixture data so the
// site keeps working when the backend is down.
type ShopService struct {
	config ShopConfig
	client *http.Client
}

// NewShopService creates a new shop backend client
func NewShopService(config ShopConfig) *ShopService {
	return &ShopService{
		config: config,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type productsResponse struct {
	Success  bool              `json:"success"`
	Products []*models.Product `json:"products"`
}

type reviewsResponse struct {
	Success bool             `json:"success"`
	Reviews []*models.Review `json:"reviews"`
}

type wishlistResponse struct {
	Success  bool              `json:"success"`
	Products []*models.Product `json:"products"`
}

type ordersResponse struct {
	Success bool            `json:"success"`
	Orders  []*models.Order `json:"orders"`
}

// GetProducts fetches the full catalog. On any failure the built-in fixture
// catalog is returned instead; the caller cannot tell the difference, which
// is the intended degrade-gracefully behavior for the demo shop.
func (s *ShopService) GetProducts(ctx context.Context) []*models.Product {
	var resp productsResponse
	if err := s.getJSON(ctx, "/api/shop/products", "", &resp); err != nil {
		return MockProducts()
	}
	if !resp.Success {
		return MockProducts()
	}
	// A successful empty catalog stays empty; fixtures only cover failures
	return resp.Products
}

// GetProduct fetches a single product, falling back to the fixture catalog
func (s *ShopService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.getJSON(ctx, "/api/shop/products/"+id, "", &product); err != nil || product.ID == "" {
		for _, p := range MockProducts() {
			if p.ID == id {
				return p, nil
			}
		}
		return nil, models.ErrProductNotFound
	}
	return &product, nil
}

// GetReviews fetches the reviews of a product, falling back to fixtures
func (s *ShopService) GetReviews(ctx context.Context, productID string) []*models.Review {
	var resp reviewsResponse
	if err := s.getJSON(ctx, "/api/shop/products/"+productID+"/reviews", "", &resp); err != nil || !resp.Success {
		return MockReviews(productID)
	}
	return resp.Reviews
}

// CreateReview submits a review on behalf of the authenticated user
func (s *ShopService) CreateReview(ctx context.Context, token string, req *models.ReviewCreateRequest) (*models.Review, error) {
	var review models.Review
	err := s.postJSON(ctx, "/api/shop/products/"+req.ProductID+"/reviews", token, req, &review)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetWishlist fetches the user's wishlist; an unreachable backend yields an
// empty list rather than an error.
func (s *ShopService) GetWishlist(ctx context.Context, token string) []*models.Product {
	var resp wishlistResponse
	if err := s.getJSON(ctx, "/api/shop/wishlist", token, &resp); err != nil || !resp.Success {
		return []*models.Product{}
	}
	return resp.Products
}

// AddToWishlist adds a product to the user's wishlist
func (s *ShopService) AddToWishlist(ctx context.Context, token, productID string) error {
	return s.postJSON(ctx, "/api/shop/wishlist/"+productID, token, nil, nil)
}

// RemoveFromWishlist removes a product from the user's wishlist
func (s *ShopService) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.config.BaseURL+"/api/shop/wishlist/"+productID, nil)
	if err != nil {
		return fmt.Errorf("failed to create wishlist request: %w", err)
	}
	return s.send(req, token, nil)
}

// GetCart fetches the server-computed cart. Errors are returned so the
// handler can fall back to the session cart.
func (s *ShopService) GetCart(ctx context.Context, token string) (*models.CartResponse, error) {
	var cart models.CartResponse
	if err := s.getJSON(ctx, "/api/shop/cart", token, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem adds an item to the backend cart
func (s *ShopService) AddCartItem(ctx context.Context, token string, item *models.CartItem) (*models.CartResponse, error) {
	var cart models.CartResponse
	if err := s.postJSON(ctx, "/api/shop/cart/items", token, item, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem changes the quantity of a cart item
func (s *ShopService) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*models.CartResponse, error) {
	body := map[string]int{"quantity": quantity}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.config.BaseURL+"/api/shop/cart/items/"+itemID, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var cart models.CartResponse
	if err := s.send(req, token, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveCartItem removes an item from the backend cart
func (s *ShopService) RemoveCartItem(ctx context.Context, token, itemID string) (*models.CartResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.config.BaseURL+"/api/shop/cart/items/"+itemID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart request: %w", err)
	}

	var cart models.CartResponse
	if err := s.send(req, token, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// CreateOrder submits a checkout to the shop backend
func (s *ShopService) CreateOrder(ctx context.Context, token string, req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	var order models.Order
	if err := s.postJSON(ctx, "/api/shop/orders", token, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrders fetches the user's order history
func (s *ShopService) GetOrders(ctx context.Context, token string) ([]*models.Order, error) {
	var resp ordersResponse
	if err := s.getJSON(ctx, "/api/shop/orders", token, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (s *ShopService) getJSON(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create shop request: %w", err)
	}
	return s.send(req, token, out)
}

func (s *ShopService) postJSON(ctx context.Context, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal shop request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create shop request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.send(req, token, out)
}

// send executes a single attempt against the shop backend. No retries; the
// caller decides whether to degrade to fixtures or surface the error.
func (s *ShopService) send(req *http.Request, token string, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("shop backend unreachable: %v: %w", err, models.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("shop backend returned %d: %w", resp.StatusCode, models.ErrBackendUnavailable)
	}

	if out == nil {
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read shop response: %w", err)
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode shop response: %w", err)
	}
	return nil
}
