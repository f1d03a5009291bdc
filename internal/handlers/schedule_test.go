package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crossfit-gym-platform/internal/middleware"
	"crossfit-gym-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleHandler_ListClasses(t *testing.T) {
	schedule := newFakeScheduleService()
	handler := NewScheduleHandler(schedule)

	req := httptest.NewRequest("GET", "/api/schedule/classes", nil)
	rec := httptest.NewRecorder()
	handler.ListClasses(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Classes []*models.Class `json:"classes"`
		Total   int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(schedule.classes), resp.Total)
}

func TestScheduleHandler_ListClassesFiltered(t *testing.T) {
	schedule := &fakeScheduleService{classes: []*models.Class{
		{ID: "c1", Name: "WOD", Type: "wod", Weekday: "Montag", StartTime: "06:30"},
		{ID: "c2", Name: "WOD", Type: "wod", Weekday: "Montag", StartTime: "18:00"},
		{ID: "c3", Name: "Weightlifting", Type: "weightlifting", Weekday: "Dienstag", StartTime: "19:00"},
	}}
	handler := NewScheduleHandler(schedule)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"by day", "?day=Montag", []string{"c1", "c2"}},
		{"by type", "?type=weightlifting", []string{"c3"}},
		{"by time bucket", "?time=" + models.BucketEarly, []string{"c1"}},
		{"combined", "?day=Montag&time=" + models.BucketEvening, []string{"c2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/schedule/classes"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.ListClasses(rec, req)

			var resp struct {
				Classes []*models.Class `json:"classes"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			var got []string
			for _, c := range resp.Classes {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleHandler_ListClassesGrouped(t *testing.T) {
	handler := NewScheduleHandler(newFakeScheduleService())

	req := httptest.NewRequest("GET", "/api/schedule/classes?grouped=true", nil)
	rec := httptest.NewRecorder()
	handler.ListClasses(rec, req)

	var resp struct {
		Days     []string                   `json:"days"`
		Schedule map[string][]*models.Class `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Days, len(models.Weekdays), "grouped listing keeps weekday order")
	assert.NotEmpty(t, resp.Schedule["Montag"], "fixture week has Monday classes")
}

func TestScheduleHandler_BookClass(t *testing.T) {
	schedule := newFakeScheduleService()
	handler := NewScheduleHandler(schedule)

	// Pick a class with open spots
	var open *models.Class
	for _, c := range schedule.classes {
		if !c.IsFull() {
			open = c
			break
		}
	}

	user := &models.User{ID: "user-123", Email: "anna@example.com", Name: "Anna"}
	body := `{"class_id": "` + open.ID + `"}`
	req := httptest.NewRequest("POST", "/api/schedule/book", strings.NewReader(body))
	req = req.WithContext(middleware.SetUserContext(req.Context(), user))
	rec := httptest.NewRecorder()
	handler.BookClass(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, schedule.booked, 1)
	// Identity fields come from the token, not the client
	assert.Equal(t, "user-123", schedule.booked[0].UserID)
	assert.Equal(t, "anna@example.com", schedule.booked[0].UserEmail)
}

func TestScheduleHandler_BookFullClassPointsToWaitlist(t *testing.T) {
	schedule := newFakeScheduleService()
	handler := NewScheduleHandler(schedule)

	var full *models.Class
	for _, c := range schedule.classes {
		if c.IsFull() {
			full = c
			break
		}
	}
	require.NotNil(t, full, "Fixture week needs a full class")

	user := &models.User{ID: "user-123", Email: "anna@example.com"}
	body := `{"class_id": "` + full.ID + `"}`
	req := httptest.NewRequest("POST", "/api/schedule/book", strings.NewReader(body))
	req = req.WithContext(middleware.SetUserContext(req.Context(), user))
	rec := httptest.NewRecorder()
	handler.BookClass(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Waitlist bool `json:"waitlist"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Waitlist, "full class must point to the waitlist")
	assert.Empty(t, schedule.booked, "full class must not reach the backend")
}

func TestScheduleHandler_JoinWaitlist(t *testing.T) {
	schedule := newFakeScheduleService()
	handler := NewScheduleHandler(schedule)

	user := &models.User{ID: "user-123", Email: "anna@example.com"}
	req := httptest.NewRequest("POST", "/api/schedule/waitlist", strings.NewReader(`{"class_id": "class-mo-1215"}`))
	req = req.WithContext(middleware.SetUserContext(req.Context(), user))
	rec := httptest.NewRecorder()
	handler.JoinWaitlist(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestScheduleHandler_BackendUnavailable(t *testing.T) {
	schedule := newFakeScheduleService()
	schedule.err = models.ErrBackendUnavailable
	handler := NewScheduleHandler(schedule)

	user := &models.User{ID: "user-123", Email: "anna@example.com"}
	req := httptest.NewRequest("POST", "/api/schedule/waitlist", strings.NewReader(`{"class_id": "class-mo-1215"}`))
	req = req.WithContext(middleware.SetUserContext(req.Context(), user))
	rec := httptest.NewRecorder()
	handler.JoinWaitlist(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
