package services

import (
	"sync"

	"crossfit-gym-platform/internal/models"
)

// MockEmailService records notifications instead of sending them, for tests
// and local development without a Resend key.
type MockEmailService struct {
	mu       sync.Mutex
	Sent     []*models.Lead
	FailNext bool
	Err      error
}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SendLeadNotification records the lead
func (s *MockEmailService) SendLeadNotification(lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNext {
		s.FailNext = false
		return s.Err
	}

	s.Sent = append(s.Sent, lead)
	return nil
}

// TestConnection always succeeds
func (s *MockEmailService) TestConnection() error {
	return nil
}

// SentCount returns how many notifications were recorded
func (s *MockEmailService) SentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sent)
}
