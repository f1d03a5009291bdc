package handlers

import (
	"encoding/json"
	"net/http"

	"crossfit-gym-platform/internal/models"
	"crossfit-gym-platform/internal/services"

	"github.com/gorilla/sessions"
)

const submitErrorMessage = "Deine Anfrage konnte nicht gesendet werden. Bitte versuche es später noch einmal."

// BookingHandler drives the multi-step trial booking form. The wizard state
// lives in the session; every mutation returns the full state so the client
// can render from it.
type BookingHandler struct {
	leadService services.LeadServiceInterface
	store       sessions.Store
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(leadService services.LeadServiceInterface, store sessions.Store) *BookingHandler {
	return &BookingHandler{
		leadService: leadService,
		store:       store,
	}
}

// GetState returns the current wizard state
func (h *BookingHandler) GetState(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	wizard := h.getWizardFromSession(session)
	writeJSON(w, http.StatusOK, wizard)
}

// UpdateData merges submitted form fields into the wizard state without
// validating. Validation happens on the step transition.
func (h *BookingHandler) UpdateData(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	wizard := h.getWizardFromSession(session)

	var data models.BookingFormData
	if !decodeJSON(w, r, &data) {
		return
	}

	wizard.Data = data
	h.saveWizardToSession(session, wizard)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, wizard)
}

// Next validates the current step and advances when it is clean
func (h *BookingHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	wizard := h.getWizardFromSession(session)
	wizard.Next()

	h.saveWizardToSession(session, wizard)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, wizard)
}

// Back moves one step back. Entered data and field errors stay; a previous
// submission failure is dismissed.
func (h *BookingHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	wizard := h.getWizardFromSession(session)
	wizard.Back()

	h.saveWizardToSession(session, wizard)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, wizard)
}

// Submit validates the final step and hands the lead to the lead service.
// A storage failure keeps the wizard on the last step with a submit error so
// the entered data survives.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	wizard := h.getWizardFromSession(session)

	if !wizard.Submit() {
		h.saveWizardToSession(session, wizard)
		if err := session.Save(r, w); err != nil {
			writeError(w, http.StatusInternalServerError, "Session error")
			return
		}
		writeJSON(w, http.StatusBadRequest, wizard)
		return
	}

	req := &models.LeadCreateRequest{
		FirstName:       wizard.Data.FirstName,
		LastName:        wizard.Data.LastName,
		Email:           wizard.Data.Email,
		Phone:           wizard.Data.Phone,
		Message:         wizard.Data.Message,
		InterestedIn:    "Probetraining",
		BookingDate:     wizard.Data.Date,
		BookingTime:     wizard.Data.Time,
		ExperienceLevel: wizard.Data.Experience,
		Source:          "booking_wizard",
	}

	lead, fieldErrs, err := h.leadService.CreateLead(req)
	if err != nil {
		wizard.SubmitError = submitErrorMessage
		h.saveWizardToSession(session, wizard)
		if err := session.Save(r, w); err != nil {
			writeError(w, http.StatusInternalServerError, "Session error")
			return
		}
		writeJSON(w, http.StatusBadGateway, wizard)
		return
	}
	if len(fieldErrs) > 0 {
		wizard.Errors = fieldErrs
		h.saveWizardToSession(session, wizard)
		if err := session.Save(r, w); err != nil {
			writeError(w, http.StatusInternalServerError, "Session error")
			return
		}
		writeJSON(w, http.StatusBadRequest, wizard)
		return
	}

	wizard.Complete()
	h.saveWizardToSession(session, wizard)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"wizard": wizard,
		"lead":   lead,
	})
}

// Reset starts a fresh wizard
func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, "session")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	wizard := models.NewWizard()
	h.saveWizardToSession(session, wizard)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "Session error")
		return
	}

	writeJSON(w, http.StatusOK, wizard)
}

func (h *BookingHandler) getWizardFromSession(session *sessions.Session) *models.Wizard {
	raw, ok := session.Values["booking_wizard"]
	if !ok {
		return models.NewWizard()
	}

	encoded, ok := raw.(string)
	if !ok {
		return models.NewWizard()
	}

	var wizard models.Wizard
	if err := json.Unmarshal([]byte(encoded), &wizard); err != nil {
		return models.NewWizard()
	}

	return &wizard
}

func (h *BookingHandler) saveWizardToSession(session *sessions.Session, wizard *models.Wizard) {
	encoded, err := json.Marshal(wizard)
	if err != nil {
		return
	}
	session.Values["booking_wizard"] = string(encoded)
}
