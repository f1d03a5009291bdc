package services

import (
	"sort"
	"sync"
	"time"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/repositories"

	"github.com/google/uuid"
)

// MemoryLeadStore keeps leads in memory. The server falls back to it when no
// database is reachable so the site stays up; leads are lost on restart.
type MemoryLeadStore struct {
	mu    sync.RWMutex
	leads []*models.Lead
}

// NewMemoryLeadStore creates a new in-memory lead store
func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{}
}

// Create stores a new lead. Like the database store it accepts duplicates.
func (s *MemoryLeadStore) Create(req *models.LeadCreateRequest) (*models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	lead := &models.Lead{
		ID:              uuid.NewString(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         req.Message,
		InterestedIn:    req.InterestedIn,
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		ExperienceLevel: req.ExperienceLevel,
		Source:          req.Source,
		Status:          models.LeadNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.leads = append(s.leads, lead)
	return lead, nil
}

// GetByID returns a single lead
func (s *MemoryLeadStore) GetByID(id string) (*models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, models.ErrLeadNotFound
}

// Search returns leads matching the filters plus the total count
func (s *MemoryLeadStore) Search(filters repositories.LeadSearchFilters) ([]*models.Lead, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.Lead
	for _, l := range s.leads {
		if filters.Status != "" && l.Status != filters.Status {
			continue
		}
		if filters.Source != "" && l.Source != filters.Source {
			continue
		}
		if filters.DateFrom != nil && l.CreatedAt.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && !l.CreatedAt.Before(*filters.DateTo) {
			continue
		}
		matched = append(matched, l)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if filters.SortDesc {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return matched[offset:end], total, nil
}

// UpdateStatus moves a lead through the follow-up workflow
func (s *MemoryLeadStore) UpdateStatus(id string, status models.LeadStatus) (*models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.leads {
		if l.ID == id {
			l.Status = status
			l.UpdatedAt = time.Now()
			return l, nil
		}
	}
	return nil, models.ErrLeadNotFound
}

// CountByStatus returns lead counts per status
func (s *MemoryLeadStore) CountByStatus() (map[models.LeadStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.LeadStatus]int)
	for _, l := range s.leads {
		counts[l.Status]++
	}
	return counts, nil
}
