package services

import (
	"log"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/repositories"
)

// LeadStore is the persistence surface the lead service needs
type LeadStore interface {
	Create(req *models.LeadCreateRequest) (*models.Lead, error)
	GetByID(id string) (*models.Lead, error)
	Search(filters repositories.LeadSearchFilters) ([]*models.Lead, int, error)
	UpdateStatus(id string, status models.LeadStatus) (*models.Lead, error)
	CountByStatus() (map[models.LeadStatus]int, error)
}

// LeadService handles lead intake and the admin follow-up workflow
type LeadService struct {
	store LeadStore
	email EmailServiceInterface
}

// NewLeadService creates a new lead service
func NewLeadService(store LeadStore, email EmailServiceInterface) *LeadService {
	return &LeadService{
		store: store,
		email: email,
	}
}

// CreateLead validates, persists and announces a new lead. The notification
// email is best-effort: a mail failure never fails the submission.
func (s *LeadService) CreateLead(req *models.LeadCreateRequest) (*models.Lead, map[string]string, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}

	lead, err := s.store.Create(req)
	if err != nil {
		return nil, nil, err
	}

	if s.email != nil {
		if err := s.email.SendLeadNotification(lead); err != nil {
			log.Printf("Failed to send lead notification for %s: %v", lead.ID, err)
		}
	}

	return lead, nil, nil
}

// GetLead returns a single lead
func (s *LeadService) GetLead(id string) (*models.Lead, error) {
	return s.store.GetByID(id)
}

// SearchLeads returns leads matching the admin filters plus the total count
func (s *LeadService) SearchLeads(filters repositories.LeadSearchFilters) ([]*models.Lead, int, error) {
	return s.store.Search(filters)
}

// UpdateLeadStatus moves a lead through the follow-up workflow
func (s *LeadService) UpdateLeadStatus(id string, status models.LeadStatus) (*models.Lead, error) {
	return s.store.UpdateStatus(id, status)
}

// LeadStatistics returns lead counts per status
func (s *LeadService) LeadStatistics() (map[models.LeadStatus]int, error) {
	return s.store.CountByStatus()
}
