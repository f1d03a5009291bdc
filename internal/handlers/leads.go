package handlers

import (
	"errors"
	"net/http"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// LeadHandler handles direct lead submissions from the contact and booking
// forms on the site.
type LeadHandler struct {
	leadService services.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService services.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead accepts a lead submission. Every accepted submission creates a
// new row; clients resubmitting the same form create duplicates for the team
// to merge by hand.
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req models.LeadCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, fieldErrs, err := h.leadService.CreateLead(&req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Die Anfrage konnte nicht gespeichert werden")
		return
	}
	if len(fieldErrs) > 0 {
		writeValidationError(w, fieldErrs)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

// GetLead returns a single lead by ID
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.leadService.GetLead(id)
	if err != nil {
		if errors.Is(err, models.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, "Anfrage nicht gefunden")
			return
		}
		writeError(w, http.StatusInternalServerError, "Die Anfrage konnte nicht geladen werden")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}
