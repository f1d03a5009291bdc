package models

import (
	"regexp"
	"strings"
	"time"
)

// BookingFormData holds the fields collected by the multi-step booking form.
// Field values arrive as strings straight from the form; validation happens
// per step via ValidateStep.
type BookingFormData struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	Experience string `json:"experience"`
	Message    string `json:"message"`
	Privacy    bool   `json:"privacy"`
}

var (
	// Letters (including German umlauts and ß), spaces and hyphens only.
	nameRegex = regexp.MustCompile(`^[a-zA-ZäöüÄÖÜß\s-]+$`)
	// RFC-ish email check used across the site.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[0-9]{4,14}$`)
)

// German field error messages, matching the copy on the site.
const (
	msgRequired    = "Dieses Feld ist ein Pflichtfeld"
	msgName        = "Bitte geben Sie 2-50 Zeichen ein (nur Buchstaben, Leerzeichen und Bindestriche)"
	msgEmail       = "Bitte geben Sie eine gültige E-Mail-Adresse ein"
	msgPhone       = "Bitte geben Sie eine gültige Telefonnummer ein"
	msgDateInvalid = "Bitte geben Sie ein gültiges Datum ein"
	msgDatePast    = "Das Datum darf nicht in der Vergangenheit liegen"
	msgDateTooFar  = "Das Datum darf maximal 3 Monate in der Zukunft liegen"
	msgTime        = "Bitte wählen Sie eine Uhrzeit"
	msgPrivacy     = "Bitte akzeptieren Sie die Datenschutzerklärung"
)

// WizardSteps is the number of form steps before the terminal success state.
const WizardSteps = 3

// ValidateStep validates the fields belonging to the given step and returns
// a field -> message map. An empty map means the step may be advanced.
func (f *BookingFormData) ValidateStep(step int) map[string]string {
	errs := make(map[string]string)

	switch step {
	case 1:
		if msg := ValidateName(f.FirstName); msg != "" {
			errs["firstName"] = msg
		}
		if msg := ValidateName(f.LastName); msg != "" {
			errs["lastName"] = msg
		}
		if msg := ValidateEmail(f.Email); msg != "" {
			errs["email"] = msg
		}
		if msg := ValidatePhone(f.Phone); msg != "" {
			errs["phone"] = msg
		}
	case 2:
		if msg := ValidateBookingDate(f.Date, time.Now()); msg != "" {
			errs["date"] = msg
		}
		if strings.TrimSpace(f.Time) == "" {
			errs["time"] = msgTime
		}
	case 3:
		if !f.Privacy {
			errs["privacy"] = msgPrivacy
		}
	}

	return errs
}

// ValidateAll validates every step at once, for single-shot submissions.
func (f *BookingFormData) ValidateAll() map[string]string {
	errs := make(map[string]string)
	for step := 1; step <= WizardSteps; step++ {
		for field, msg := range f.ValidateStep(step) {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateName checks a first or last name field. Returns an empty string
// when the value is valid, otherwise the German error message.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return msgRequired
	}
	if len([]rune(trimmed)) < 2 || len([]rune(trimmed)) > 50 {
		return msgName
	}
	if !nameRegex.MatchString(trimmed) {
		return msgName
	}
	return ""
}

// ValidateEmail checks an email field.
func ValidateEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return msgRequired
	}
	if len(trimmed) > 100 {
		return msgEmail
	}
	if !emailRegex.MatchString(trimmed) {
		return msgEmail
	}
	return ""
}

// ValidatePhone checks a phone field. Spaces and hyphens are stripped before
// matching; the cleaned number needs at least 5 digits.
func ValidatePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return msgRequired
	}
	if len(trimmed) > 50 {
		return msgPhone
	}
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(trimmed)
	if len(cleaned) < 5 {
		return msgPhone
	}
	if !phoneRegex.MatchString(cleaned) {
		return msgPhone
	}
	return ""
}

// ValidateBookingDate checks the requested date: it must parse, must not lie
// in the past (date-only comparison) and must be at most 3 months ahead.
func ValidateBookingDate(date string, now time.Time) string {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return msgRequired
	}

	parsed, err := time.ParseInLocation("2006-01-02", trimmed, now.Location())
	if err != nil {
		return msgDateInvalid
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return msgDatePast
	}
	if parsed.After(today.AddDate(0, 3, 0)) {
		return msgDateTooFar
	}
	return ""
}
