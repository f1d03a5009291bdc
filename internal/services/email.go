package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"crossfit-gym-platform/internal/models"
)

// EmailServiceInterface defines the interface for email notifications
type EmailServiceInterface interface {
	SendLeadNotification(lead *models.Lead) error
	TestConnection() error
}

// ResendConfig represents Resend email service configuration
type ResendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
	LeadEmail string
}

// ResendEmailService sends notifications via the Resend API
type ResendEmailService struct {
	config ResendConfig
	client *http.Client
}

// NewResendEmailService creates a new Resend email service
func NewResendEmailService(config ResendConfig) *ResendEmailService {
	return &ResendEmailService{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// ResendEmailRequest represents the request structure for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

func (s *ResendEmailService) getFromField() string {
	if s.config.FromName != "" {
		return fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}
	return s.config.FromEmail
}

// SendLeadNotification mails a new lead to the box team
func (s *ResendEmailService) SendLeadNotification(lead *models.Lead) error {
	subject := fmt.Sprintf("Neue Anfrage von %s", lead.FullName())
	if lead.HasBooking() {
		subject = fmt.Sprintf("Neue Probetraining-Buchung von %s", lead.FullName())
	}

	text := fmt.Sprintf(
		"Name: %s\nE-Mail: %s\nTelefon: %s\nInteresse: %s\nQuelle: %s\n",
		lead.FullName(), lead.Email, lead.Phone, lead.InterestedIn, lead.Source,
	)
	if lead.HasBooking() {
		text += fmt.Sprintf("Wunschtermin: %s um %s\nErfahrung: %s\n",
			lead.BookingDate, lead.BookingTime, lead.ExperienceLevel)
	}
	if lead.Message != "" {
		text += "\nNachricht:\n" + lead.Message + "\n"
	}

	return s.send(ResendEmailRequest{
		From:    s.getFromField(),
		To:      []string{s.config.LeadEmail},
		Subject: subject,
		Text:    text,
	})
}

// TestConnection verifies the API key is present and accepted
func (s *ResendEmailService) TestConnection() error {
	if s.config.APIKey == "" {
		return errors.New("resend API key not configured")
	}

	req, err := http.NewRequest(http.MethodGet, "https://api.resend.com/domains", nil)
	if err != nil {
		return fmt.Errorf("failed to create test request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("resend API key rejected")
	}
	return nil
}

func (s *ResendEmailService) send(email ResendEmailRequest) error {
	if s.config.APIKey == "" {
		return errors.New("resend API key not configured")
	}

	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var parsed ResendErrorResponse
		if json.Unmarshal(bodyBytes, &parsed) == nil && parsed.Message != "" {
			return fmt.Errorf("resend returned %d: %s", resp.StatusCode, parsed.Message)
		}
		return fmt.Errorf("resend returned %d", resp.StatusCode)
	}

	return nil
}
