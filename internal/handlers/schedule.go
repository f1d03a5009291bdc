package handlers

import (
	"errors"
	"net/http"

	"crossfit-gym-platform/internal/middleware"
	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/services"
)

// ScheduleHandler exposes the weekly class schedule and the booking and
// waitlist actions proxied to the gym management backend.
type ScheduleHandler struct {
	scheduleService services.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService services.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ListClasses returns the weekly schedule filtered by the query parameters.
// With grouped=true the classes come back keyed by weekday.
func (h *ScheduleHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes := h.scheduleService.GetClasses(r.Context())

	q := r.URL.Query()
	filters := models.ClassFilters{
		Day:        q.Get("day"),
		Type:       q.Get("type"),
		Level:      q.Get("level"),
		TimeBucket: q.Get("time"),
	}
	filtered := models.FilterClasses(classes, filters)

	if q.Get("grouped") == "true" {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"days":     models.Weekdays,
			"schedule": models.GroupClassesByWeekday(filtered),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"classes": filtered,
		"total":   len(filtered),
	})
}

// BookClass books a spot in a class. A full class is refused here with a
// pointer to the waitlist instead of bothering the backend.
func (h *ScheduleHandler) BookClass(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	var req models.ClassActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.fillUserFromContext(r, &req)

	if class := h.findClass(r, req.ClassID); class != nil && class.IsFull() {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":    "Diese Klasse ist bereits voll",
			"waitlist": true,
		})
		return
	}

	if err := h.scheduleService.BookClass(r.Context(), token, &req); err != nil {
		h.writeActionError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Deine Buchung ist bestätigt",
	})
}

// JoinWaitlist puts the user on the waitlist of a full class
func (h *ScheduleHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetTokenFromContext(r.Context())

	var req models.ClassActionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.fillUserFromContext(r, &req)

	if err := h.scheduleService.JoinWaitlist(r.Context(), token, &req); err != nil {
		h.writeActionError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Du stehst auf der Warteliste",
	})
}

// fillUserFromContext fills identity fields from the bearer token so clients
// only need to send the class ID.
func (h *ScheduleHandler) fillUserFromContext(r *http.Request, req *models.ClassActionRequest) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		return
	}

	if req.UserID == "" {
		req.UserID = user.ID
	}
	if req.UserEmail == "" {
		req.UserEmail = user.Email
	}
	if req.UserName == "" {
		req.UserName = user.Name
	}
}

func (h *ScheduleHandler) findClass(r *http.Request, classID string) *models.Class {
	for _, c := range h.scheduleService.GetClasses(r.Context()) {
		if c.ID == classID {
			return c
		}
	}
	return nil
}

func (h *ScheduleHandler) writeActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Ungültige Anfrage")
	case errors.Is(err, models.ErrBackendUnavailable):
		writeError(w, http.StatusBadGateway, "Die Buchung ist gerade nicht möglich. Bitte versuche es später noch einmal.")
	default:
		writeError(w, http.StatusConflict, err.Error())
	}
}
