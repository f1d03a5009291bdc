package handlers

import (
	"encoding/json"
	"net/http"

	"crossfit-gym-platform/internal/middleware"
	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// CartHandler handles the shopping cart. The external shop backend owns the
// cart; when it is unreachable the cart lives in the session so the visitor
// can keep shopping and check out later.
type CartHandler struct {
	shopService services.ShopServiceInterface
	store       sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(shopService services.ShopServiceInterface, store sessions.Store) *CartHandler {
	return &CartHandler{
		shopService: shopService,
		store:       store,
	}
}

// GetCart returns the current cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	cart, err := h.shopService.GetCart(r.Context(), token)
	if err != nil {
		h.respondWithSessionCart(w, r, nil)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// AddItem adds a product to the cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	var item models.CartItem
	if !decodeJSON(w, r, &item) {
		return
	}
	if item.ProductID == "" || item.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "Ungültiger Artikel")
		return
	}

	cart, err := h.shopService.AddCartItem(r.Context(), token, &item)
	if err != nil {
		h.respondWithSessionCart(w, r, func(cart *models.CartResponse) {
			item.ID = uuid.NewString()
			item.Subtotal = item.Price * item.Quantity
			cart.Items = append(cart.Items, item)
		})
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// UpdateItem changes the quantity of a cart item
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "Ungültige Menge")
		return
	}

	cart, err := h.shopService.UpdateCartItem(r.Context(), token, itemID, req.Quantity)
	if err != nil {
		h.respondWithSessionCart(w, r, func(cart *models.CartResponse) {
			for i := range cart.Items {
				if cart.Items[i].ID == itemID {
					cart.Items[i].Quantity = req.Quantity
					cart.Items[i].Subtotal = cart.Items[i].Price * req.Quantity
					break
				}
			}
		})
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// RemoveItem removes an item from the cart
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())
	itemID := chi.URLParam(r, "id")

	cart, err := h.shopService.RemoveCartItem(r.Context(), token, itemID)
	if err != nil {
		h.respondWithSessionCart(w, r, func(cart *models.CartResponse) {
			items := cart.Items[:0]
			for _, item := range cart.Items {
				if item.ID != itemID {
					items = append(items, item)
				}
			}
			cart.Items = items
		})
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// respondWithSessionCart applies an optional mutation to the session cart
// and returns it. Used whenever the shop backend is unreachable.
func (h *CartHandler) respondWithSessionCart(w http.ResponseWriter, r *http.Request, mutate func(*models.CartResponse)) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	cart := h.getCartFromSession(session)
	if mutate != nil {
		mutate(cart)
	}
	cart.Recalculate()

	h.saveCartToSession(session, cart)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) getCartFromSession(session *sessions.Session) *models.CartResponse {
	raw, ok := session.Values["cart"]
	if !ok {
		return &models.CartResponse{}
	}

	encoded, ok := raw.(string)
	if !ok {
		return &models.CartResponse{}
	}

	var cart models.CartResponse
	if err := json.Unmarshal([]byte(encoded), &cart); err != nil {
		return &models.CartResponse{}
	}

	return &cart
}

func (h *CartHandler) saveCartToSession(session *sessions.Session, cart *models.CartResponse) {
	encoded, err := json.Marshal(cart)
	if err != nil {
		return
	}
	session.Values["cart"] = string(encoded)
}
