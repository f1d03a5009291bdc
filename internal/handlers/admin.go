package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/repositories"
	"crossfit-gym-platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// AdminHandler exposes the lead follow-up workflow to the box team
type AdminHandler struct {
	leadService services.LeadServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(leadService services.LeadServiceInterface) *AdminHandler {
	return &AdminHandler{leadService: leadService}
}

// ListLeads returns leads matching the query filters plus the total count
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	filters := parseLeadFilters(r)

	leads, total, err := h.leadService.SearchLeads(filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Anfragen konnten nicht geladen werden")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"leads":  leads,
		"total":  total,
		"limit":  filters.Limit,
		"offset": filters.Offset,
	})
}

// UpdateLeadStatus moves a lead through the follow-up workflow
func (h *AdminHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.LeadStatusUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Ungültiger Status")
		return
	}

	lead, err := h.leadService.UpdateLeadStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, models.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, "Anfrage nicht gefunden")
			return
		}
		writeError(w, http.StatusInternalServerError, "Status konnte nicht aktualisiert werden")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// LeadStatistics returns lead counts per follow-up status
func (h *AdminHandler) LeadStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leadService.LeadStatistics()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Statistik konnte nicht geladen werden")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func parseLeadFilters(r *http.Request) repositories.LeadSearchFilters {
	q := r.URL.Query()

	filters := repositories.LeadSearchFilters{
		Status:   models.LeadStatus(q.Get("status")),
		Source:   q.Get("source"),
		SortDesc: q.Get("sort") != "oldest",
	}

	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		filters.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		filters.Offset = v
	}
	if t, err := time.Parse("2006-01-02", q.Get("date_from")); err == nil {
		filters.DateFrom = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("date_to")); err == nil {
		filters.DateTo = &t
	}

	return filters
}
