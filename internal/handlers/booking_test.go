package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crossfit-gym-platform/internal/models"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wizardClient drives the booking endpoints while carrying the session
// cookie between requests, like a browser would.
type wizardClient struct {
	t       *testing.T
	handler *BookingHandler
	cookies []*http.Cookie
}

func newWizardClient(t *testing.T, leadService *fakeLeadService) *wizardClient {
	t.Helper()
	store := sessions.NewCookieStore([]byte("test-session-secret"))
	return &wizardClient{
		t:       t,
		handler: NewBookingHandler(leadService, store),
	}
}

func (c *wizardClient) do(method, path string, body interface{}, fn http.HandlerFunc) (*httptest.ResponseRecorder, *models.Wizard) {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	fn(rec, req)

	if set := rec.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}

	var wizard models.Wizard
	if err := json.Unmarshal(rec.Body.Bytes(), &wizard); err != nil {
		return rec, nil
	}
	return rec, &wizard
}

func validBookingData() models.BookingFormData {
	return models.BookingFormData{
		FirstName: "Anna",
		LastName:  "Schmidt",
		Email:     "anna.schmidt@example.com",
		Phone:     "+49 170 1234567",
		Date:      time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:      "18:00",
		Privacy:   true,
	}
}

func TestBookingWizard_HappyPath(t *testing.T) {
	leads := &fakeLeadService{}
	c := newWizardClient(t, leads)

	// Fresh wizard starts on step 1
	rec, wizard := c.do("GET", "/api/booking", nil, c.handler.GetState)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, wizard.Step)

	// Fill the form and walk forward
	c.do("POST", "/api/booking/data", validBookingData(), c.handler.UpdateData)

	_, wizard = c.do("POST", "/api/booking/next", nil, c.handler.Next)
	require.Equal(t, 2, wizard.Step)

	_, wizard = c.do("POST", "/api/booking/next", nil, c.handler.Next)
	require.Equal(t, 3, wizard.Step)

	rec, _ = c.do("POST", "/api/booking/submit", nil, c.handler.Submit)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, leads.leads, 1)
	assert.Equal(t, "booking_wizard", leads.leads[0].Source)

	// The wizard reached the terminal state
	_, wizard = c.do("GET", "/api/booking", nil, c.handler.GetState)
	assert.Equal(t, models.StepSuccess, wizard.Step)
}

func TestBookingWizard_NextBlocksOnInvalidStep(t *testing.T) {
	c := newWizardClient(t, &fakeLeadService{})

	data := validBookingData()
	data.Email = "kaputt"
	c.do("POST", "/api/booking/data", data, c.handler.UpdateData)

	_, wizard := c.do("POST", "/api/booking/next", nil, c.handler.Next)
	assert.Equal(t, 1, wizard.Step, "invalid step must not advance")
	assert.NotEmpty(t, wizard.Errors["email"])
}

func TestBookingWizard_PastDateRejected(t *testing.T) {
	c := newWizardClient(t, &fakeLeadService{})

	data := validBookingData()
	data.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	c.do("POST", "/api/booking/data", data, c.handler.UpdateData)

	c.do("POST", "/api/booking/next", nil, c.handler.Next)
	_, wizard := c.do("POST", "/api/booking/next", nil, c.handler.Next)

	require.Equal(t, 2, wizard.Step, "expected to stay on step 2")
	assert.Contains(t, wizard.Errors["date"], "Vergangenheit")
}

func TestBookingWizard_SubmitFailureKeepsData(t *testing.T) {
	leads := &fakeLeadService{createErr: errors.New("database down")}
	c := newWizardClient(t, leads)

	c.do("POST", "/api/booking/data", validBookingData(), c.handler.UpdateData)
	c.do("POST", "/api/booking/next", nil, c.handler.Next)
	c.do("POST", "/api/booking/next", nil, c.handler.Next)

	rec, wizard := c.do("POST", "/api/booking/submit", nil, c.handler.Submit)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 3, wizard.Step, "failed submit must stay on step 3")
	assert.NotEmpty(t, wizard.SubmitError)
	assert.Equal(t, "Anna", wizard.Data.FirstName, "entered data must survive a failed submit")

	// Back dismisses only the submit error
	_, wizard = c.do("POST", "/api/booking/back", nil, c.handler.Back)
	assert.Equal(t, 2, wizard.Step)
	assert.Empty(t, wizard.SubmitError, "back must clear the submit error")
	assert.Equal(t, "anna.schmidt@example.com", wizard.Data.Email, "back must keep the entered data")
}

func TestBookingWizard_Reset(t *testing.T) {
	c := newWizardClient(t, &fakeLeadService{})

	c.do("POST", "/api/booking/data", validBookingData(), c.handler.UpdateData)
	c.do("POST", "/api/booking/next", nil, c.handler.Next)

	_, wizard := c.do("POST", "/api/booking/reset", nil, c.handler.Reset)
	assert.Equal(t, 1, wizard.Step)
	assert.Empty(t, wizard.Data.FirstName, "reset must start over")
}
