package services

import (
	"context"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/repositories"
)

// ShopServiceInterface defines the interface for the shop backend client
type ShopServiceInterface interface {
	GetProducts(ctx context.Context) []*models.Product
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetReviews(ctx context.Context, productID string) []*models.Review
	CreateReview(ctx context.Context, token string, req *models.ReviewCreateRequest) (*models.Review, error)
	GetWishlist(ctx context.Context, token string) []*models.Product
	AddToWishlist(ctx context.Context, token, productID string) error
	RemoveFromWishlist(ctx context.Context, token, productID string) error
	GetCart(ctx context.Context, token string) (*models.CartResponse, error)
	AddCartItem(ctx context.Context, token string, item *models.CartItem) (*models.CartResponse, error)
	UpdateCartItem(ctx context.Context, token, itemID string, quantity int) (*models.CartResponse, error)
	RemoveCartItem(ctx context.Context, token, itemID string) (*models.CartResponse, error)
	CreateOrder(ctx context.Context, token string, req *models.OrderCreateRequest) (*models.Order, error)
	GetOrders(ctx context.Context, token string) ([]*models.Order, error)
}

// LeadServiceInterface defines the interface for lead intake and follow-up
type LeadServiceInterface interface {
	CreateLead(req *models.LeadCreateRequest) (*models.Lead, map[string]string, error)
	GetLead(id string) (*models.Lead, error)
	SearchLeads(filters repositories.LeadSearchFilters) ([]*models.Lead, int, error)
	UpdateLeadStatus(id string, status models.LeadStatus) (*models.Lead, error)
	LeadStatistics() (map[models.LeadStatus]int, error)
}

// ScheduleServiceInterface defines the interface for the gym-management client
type ScheduleServiceInterface interface {
	GetClasses(ctx context.Context) []*models.Class
	BookClass(ctx context.Context, token string, req *models.ClassActionRequest) error
	JoinWaitlist(ctx context.Context, token string, req *models.ClassActionRequest) error
}
