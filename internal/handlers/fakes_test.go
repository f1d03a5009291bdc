package handlers

import (
	"context"
	"time"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/repositories"
	"crossfit-gym-platform/internal/services"
)

// fakeLeadService implements services.LeadServiceInterface in memory
type fakeLeadService struct {
	leads     []*models.Lead
	createErr error
}

func (f *fakeLeadService) CreateLead(req *models.LeadCreateRequest) (*models.Lead, map[string]string, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}
	if f.createErr != nil {
		return nil, nil, f.createErr
	}

	lead := &models.Lead{
		ID:           "lead-1",
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		InterestedIn: req.InterestedIn,
		Source:       req.Source,
		Status:       models.LeadNew,
		CreatedAt:    time.Now(),
	}
	f.leads = append(f.leads, lead)
	return lead, nil, nil
}

func (f *fakeLeadService) GetLead(id string) (*models.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, models.ErrLeadNotFound
}

func (f *fakeLeadService) SearchLeads(filters repositories.LeadSearchFilters) ([]*models.Lead, int, error) {
	return f.leads, len(f.leads), nil
}

func (f *fakeLeadService) UpdateLeadStatus(id string, status models.LeadStatus) (*models.Lead, error) {
	lead, err := f.GetLead(id)
	if err != nil {
		return nil, err
	}
	lead.Status = status
	return lead, nil
}

func (f *fakeLeadService) LeadStatistics() (map[models.LeadStatus]int, error) {
	counts := make(map[models.LeadStatus]int)
	for _, l := range f.leads {
		counts[l.Status]++
	}
	return counts, nil
}

// fakeShopService serves fixture data and can simulate an unreachable
// backend for the cart fallback path.
type fakeShopService struct {
	products    []*models.Product
	cart        *models.CartResponse
	backendDown bool
}

func newFakeShopService() *fakeShopService {
	return &fakeShopService{
		products: services.MockProducts(),
		cart:     &models.CartResponse{},
	}
}

func (f *fakeShopService) GetProducts(ctx context.Context) []*models.Product {
	return f.products
}

func (f *fakeShopService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (f *fakeShopService) GetReviews(ctx context.Context, productID string) []*models.Review {
	return services.MockReviews(productID)
}

func (f *fakeShopService) CreateReview(ctx context.Context, token string, req *models.ReviewCreateRequest) (*models.Review, error) {
	if f.backendDown {
		return nil, models.ErrBackendUnavailable
	}
	return &models.Review{ID: "review-1", ProductID: req.ProductID, Rating: req.Rating}, nil
}

func (f *fakeShopService) GetWishlist(ctx context.Context, token string) []*models.Product {
	return nil
}

func (f *fakeShopService) AddToWishlist(ctx context.Context, token, productID string) error {
	if f.backendDown {
		return models.ErrBackendUnavailable
	}
	return nil
}

func (f *fakeShopService) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	if f.backendDown {
		return models.ErrBackendUnavailable
	}
	return nil
}

func (f *fakeShopService) GetCart(ctx context.Context, token string) (*models.CartResponse, error) {
	if f.backendDown {
		return nil, models.ErrBackendUnavailable
	}
	return f.cart, nil
}

func (f *fakeShopService) AddCartItem(ctx context.Context, token string, item *models.CartItem) (*models.CartResponse, error) {
	if f.backendDown {
		return nil, models.ErrBackendUnavailable
	}
	item.Subtotal = item.Price * item.Quantity
	f.cart.Items = append(f.cart.Items, *item)
	f.cart.Recalculate()
	return f.cart, nil
}

func (f *fakeShopService) UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*models.CartResponse, error) {
	if f.backendDown {
		return nil, models.ErrBackendUnavailable
	}
	return f.cart, nil
}

func (f *fakeShopService) RemoveCartItem(ctx context.Context, token, itemID string) (*models.CartResponse, error) {
	if f.backendDown {
		return nil, models.ErrBackendUnavailable
	}
	return f.cart, nil
}

func (f *fakeShopService) CreateOrder(ctx context.Context, token string, req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, models.ErrInvalidInput
	}
	if f.backendDown {
		return nil, models.ErrBackendUnavailable
	}
	return &models.Order{OrderNumber: models.GenerateOrderNumber(), Status: models.OrderPending}, nil
}

func (f *fakeShopService) GetOrders(ctx context.Context, token string) ([]*models.Order, error) {
	if f.backendDown {
		return nil, models.ErrBackendUnavailable
	}
	return nil, nil
}

// fakeScheduleService serves the fixture week and records booking calls
type fakeScheduleService struct {
	classes []*models.Class
	booked  []*models.ClassActionRequest
	err     error
}

func newFakeScheduleService() *fakeScheduleService {
	return &fakeScheduleService{classes: services.MockClasses()}
}

func (f *fakeScheduleService) GetClasses(ctx context.Context) []*models.Class {
	return f.classes
}

func (f *fakeScheduleService) BookClass(ctx context.Context, token string, req *models.ClassActionRequest) error {
	if f.err != nil {
		return f.err
	}
	f.booked = append(f.booked, req)
	return nil
}

func (f *fakeScheduleService) JoinWaitlist(ctx context.Context, token string, req *models.ClassActionRequest) error {
	if f.err != nil {
		return f.err
	}
	f.booked = append(f.booked, req)
	return nil
}
