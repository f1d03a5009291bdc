package models

import (
	"errors"
	"strings"
	"time"
)

// Review represents a product review. Reviews are owned by the external shop
// backend.
type Review struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	Author           string    `json:"author"`
	Rating           int       `json:"rating"` // 1-5
	Title            string    `json:"title"`
	Comment          string    `json:"comment"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	HelpfulCount     int       `json:"helpful_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// ReviewCreateRequest is the body for submitting a review
type ReviewCreateRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
}

// Validate validates the review submission
func (req *ReviewCreateRequest) Validate() error {
	if req.ProductID == "" {
		return errors.New("product id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if len(req.Title) > 100 {
		return errors.New("title must be at most 100 characters")
	}
	if len(req.Comment) > 2000 {
		return errors.New("comment must be at most 2000 characters")
	}
	return nil
}
