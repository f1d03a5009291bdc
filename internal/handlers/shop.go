package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"crossfit-gym-platform/internal/middleware"
	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// ShopHandler handles the product catalog, reviews, wishlist and orders.
// Product data comes from the external shop backend with baked-in fixtures
// as fallback; filtering and sorting happen here. Checkout degrades to a
// session-backed order when the backend is unreachable, like the cart does.
type ShopHandler struct {
	shopService services.ShopServiceInterface
	store       sessions.Store
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService services.ShopServiceInterface, store sessions.Store) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
		store:       store,
	}
}

// ListProducts returns the catalog filtered by the query parameters
func (h *ShopHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.shopService.GetProducts(r.Context())

	filters := parseProductFilters(r)
	filtered := models.FilterProducts(products, filters)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": filtered,
		"total":    len(filtered),
	})
}

// GetProduct returns a single product
func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.shopService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Produkt nicht gefunden")
			return
		}
		writeError(w, http.StatusInternalServerError, "Produkt konnte nicht geladen werden")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListReviews returns the reviews of a product
func (h *ShopHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	reviews := h.shopService.GetReviews(r.Context(), productID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

// CreateReview submits a product review. Requires a signed-in member.
func (h *ShopHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	var req models.ReviewCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ProductID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Ungültige Bewertung")
		return
	}

	review, err := h.shopService.CreateReview(r.Context(), token, &req)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Bewertung konnte nicht gespeichert werden")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// GetWishlist returns the member's wishlist
func (h *ShopHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	products := h.shopService.GetWishlist(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    len(products),
	})
}

// AddToWishlist adds a product to the member's wishlist
func (h *ShopHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	productID := chi.URLParam(r, "id")

	if err := h.shopService.AddToWishlist(r.Context(), token, productID); err != nil {
		writeError(w, http.StatusBadGateway, "Wunschliste konnte nicht aktualisiert werden")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// RemoveFromWishlist removes a product from the member's wishlist
func (h *ShopHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	productID := chi.URLParam(r, "id")

	if err := h.shopService.RemoveFromWishlist(r.Context(), token, productID); err != nil {
		writeError(w, http.StatusBadGateway, "Wunschliste konnte nicht aktualisiert werden")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// CreateOrder submits a checkout. Requires a signed-in member. When the
// shop backend is unreachable the order is recorded in the session with a
// locally generated order number so the checkout is not lost.
func (h *ShopHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	var req models.OrderCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.shopService.CreateOrder(r.Context(), token, &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Ungültige Bestellung")
			return
		}
		if errors.Is(err, models.ErrBackendUnavailable) {
			h.createSessionOrder(w, r, &req)
			return
		}
		writeError(w, http.StatusBadGateway, "Bestellung konnte nicht aufgegeben werden")
		return
	}

	order.StatusDisplay = order.GetStatusDisplayName()
	writeJSON(w, http.StatusCreated, order)
}

// ListOrders returns the member's order history, merging in any orders the
// session collected while the backend was down.
func (h *ShopHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	orders, err := h.shopService.GetOrders(r.Context(), token)
	if err != nil {
		if errors.Is(err, models.ErrBackendUnavailable) {
			orders = h.getOrdersFromSession(w, r)
		} else {
			writeError(w, http.StatusBadGateway, "Bestellungen konnten nicht geladen werden")
			return
		}
	}

	for _, o := range orders {
		o.StatusDisplay = o.GetStatusDisplayName()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  len(orders),
	})
}

// createSessionOrder builds a pending order from the checkout request and
// appends it to the session. Totals are computed locally with the same
// rules as the fallback cart; the cart itself is cleared since the items
// moved into the order.
func (h *ShopHandler) createSessionOrder(w http.ResponseWriter, r *http.Request, req *models.OrderCreateRequest) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	totals := models.CartResponse{Items: req.Items}
	totals.Recalculate()

	order := &models.Order{
		OrderNumber:  models.GenerateOrderNumber(),
		Status:       models.OrderPending,
		Items:        totals.Items,
		Subtotal:     totals.Subtotal,
		ShippingCost: totals.ShippingCost,
		Total:        totals.Total,
		CreatedAt:    time.Now(),
	}
	order.StatusDisplay = order.GetStatusDisplayName()

	orders := ordersFromSession(session)
	orders = append(orders, order)
	if encoded, err := json.Marshal(orders); err == nil {
		session.Values["orders"] = string(encoded)
	}
	delete(session.Values, "cart")

	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *ShopHandler) getOrdersFromSession(w http.ResponseWriter, r *http.Request) []*models.Order {
	session, err := h.store.Get(r, "session")
	if err != nil {
		return nil
	}
	return ordersFromSession(session)
}

func ordersFromSession(session *sessions.Session) []*models.Order {
	raw, ok := session.Values["orders"]
	if !ok {
		return nil
	}

	encoded, ok := raw.(string)
	if !ok {
		return nil
	}

	var orders []*models.Order
	if err := json.Unmarshal([]byte(encoded), &orders); err != nil {
		return nil
	}
	return orders
}

func parseProductFilters(r *http.Request) models.ProductFilters {
	q := r.URL.Query()

	filters := models.ProductFilters{
		Category: models.ProductCategory(q.Get("category")),
		Query:    q.Get("q"),
		SortBy:   q.Get("sort"),
	}

	if v, err := strconv.Atoi(q.Get("price_min")); err == nil {
		filters.PriceMin = &v
	}
	if v, err := strconv.Atoi(q.Get("price_max")); err == nil {
		filters.PriceMax = &v
	}
	if v, err := strconv.ParseBool(q.Get("in_stock")); err == nil {
		filters.InStock = &v
	}
	if v, err := strconv.ParseBool(q.Get("featured")); err == nil {
		filters.Featured = &v
	}

	return filters
}
