package models

import (
	"errors"
	"strings"
	"time"
)

// LeadStatus represents the follow-up status of a lead
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadClosed    LeadStatus = "closed"
)

// Lead represents a contact or trial-booking request submitted on the site
type Lead struct {
	ID              string     `json:"id" db:"id"`
	FirstName       string     `json:"first_name" db:"first_name"`
	LastName        string     `json:"last_name" db:"last_name"`
	Email           string     `json:"email" db:"email"`
	Phone           string     `json:"phone" db:"phone"`
	Message         string     `json:"message" db:"message"`
	InterestedIn    string     `json:"interested_in" db:"interested_in"`
	BookingDate     string     `json:"booking_date" db:"booking_date"`
	BookingTime     string     `json:"booking_time" db:"booking_time"`
	ExperienceLevel string     `json:"experience_level" db:"experience_level"`
	Source          string     `json:"source" db:"source"`
	Status          LeadStatus `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// LeadCreateRequest is the JSON body of POST /api/leads. The name fields are
// camelCase while the rest is snake_case; that is the wire format the pages
// send and it is kept as-is.
type LeadCreateRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Message         string `json:"message,omitempty"`
	InterestedIn    string `json:"interested_in"`
	BookingDate     string `json:"booking_date,omitempty"`
	BookingTime     string `json:"booking_time,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Source          string `json:"source"`
}

// Validate checks the request fields and returns a field -> message map.
// Phone, message and the scheduling fields are optional here: the one-shot
// endpoint also serves plain contact enquiries without a booking slot.
func (req *LeadCreateRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if msg := ValidateName(req.FirstName); msg != "" {
		errs["firstName"] = msg
	}
	if msg := ValidateName(req.LastName); msg != "" {
		errs["lastName"] = msg
	}
	if msg := ValidateEmail(req.Email); msg != "" {
		errs["email"] = msg
	}
	if strings.TrimSpace(req.Phone) != "" {
		if msg := ValidatePhone(req.Phone); msg != "" {
			errs["phone"] = msg
		}
	}
	if strings.TrimSpace(req.BookingDate) != "" {
		if msg := ValidateBookingDate(req.BookingDate, time.Now()); msg != "" {
			errs["booking_date"] = msg
		}
	}
	if strings.TrimSpace(req.InterestedIn) == "" {
		errs["interested_in"] = msgRequired
	}
	if strings.TrimSpace(req.Source) == "" {
		errs["source"] = msgRequired
	}

	return errs
}

// LeadStatusUpdateRequest updates the follow-up status of a lead
type LeadStatusUpdateRequest struct {
	Status LeadStatus `json:"status"`
}

// Validate validates the status update
func (req *LeadStatusUpdateRequest) Validate() error {
	switch req.Status {
	case LeadNew, LeadContacted, LeadConverted, LeadClosed:
		return nil
	default:
		return errors.New("invalid lead status")
	}
}

// FullName returns the lead's display name
func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// HasBooking reports whether the lead asked for a concrete trial slot
func (l *Lead) HasBooking() bool {
	return l.BookingDate != "" && l.BookingTime != ""
}
