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

// WodifyConfig represents the external gym-management configuration
type WodifyConfig struct {
	BaseURL string
	APIKey  string
}

// WodifyService talks to the external gym-management system that owns the
// class schedule, bookings and waitlists. Like the shop client it is a
// single-attempt, 5-second-timeout client; only the read path falls back to
// fixtures.
type WodifyService struct {
	config WodifyConfig
	client *http.Client
}

// NewWodifyService creates a new gym-management client
func NewWodifyService(config WodifyConfig) *WodifyService {
	return &WodifyService{
		config: config,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type classesResponse struct {
	Success bool            `json:"success"`
	Classes []*models.Class `json:"classes"`
}

type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetClasses fetches the weekly schedule, falling back to the fixture week
func (s *WodifyService) GetClasses(ctx context.Context) []*models.Class {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL+"/api/schedule/classes", nil)
	if err != nil {
		return MockClasses()
	}
	req.Header.Set("Accept", "application/json")
	if s.config.APIKey != "" {
		req.Header.Set("X-Api-Key", s.config.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return MockClasses()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return MockClasses()
	}

	var parsed classesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || !parsed.Success {
		return MockClasses()
	}
	return parsed.Classes
}

// BookClass books a spot in a class for the given user
func (s *WodifyService) BookClass(ctx context.Context, token string, req *models.ClassActionRequest) error {
	return s.postAction(ctx, "/api/schedule/book", token, req)
}

// JoinWaitlist puts the user on the waitlist of a full class
func (s *WodifyService) JoinWaitlist(ctx context.Context, token string, req *models.ClassActionRequest) error {
	return s.postAction(ctx, "/api/schedule/waitlist", token, req)
}

func (s *WodifyService) postAction(ctx context.Context, path, token string, body *models.ClassActionRequest) error {
	if err := body.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create schedule request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if s.config.APIKey != "" {
		req.Header.Set("X-Api-Key", s.config.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("gym backend unreachable: %v: %w", err, models.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read schedule response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var parsed actionResponse
		if json.Unmarshal(bodyBytes, &parsed) == nil && parsed.Message != "" {
			return fmt.Errorf("schedule request rejected: %s", parsed.Message)
		}
		return fmt.Errorf("gym backend returned %d: %w", resp.StatusCode, models.ErrBackendUnavailable)
	}

	var parsed actionResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return fmt.Errorf("failed to decode schedule response: %w", err)
	}
	if !parsed.Success {
		return fmt.Errorf("schedule request rejected: %s", parsed.Message)
	}
	return nil
}
