package repositories

import (
	"database/sql"
	"testing"
	"time"

	"crossfit-gym-platform/internal/models"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLeadTestDB(t *testing.T) *sql.DB {
	// This would typically use a test database
	// For now, we'll skip actual database tests and focus on the structure
	t.Skip("Database tests require test database setup")
	return nil
}

func TestLeadRepository_Create(t *testing.T) {
	db := setupLeadTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewLeadRepository(db)

	tests := []struct {
		name    string
		req     *models.LeadCreateRequest
		wantErr bool
	}{
		{
			name: "valid lead",
			req: &models.LeadCreateRequest{
				FirstName:    "Max",
				LastName:     "Mustermann",
				Email:        "max@example.de",
				Phone:        "+49 30 12345678",
				InterestedIn: "probetraining",
				BookingDate:  time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
				BookingTime:  "18:00",
				Source:       "contact_page",
			},
			wantErr: false,
		},
		{
			name: "invalid email",
			req: &models.LeadCreateRequest{
				FirstName:    "Max",
				LastName:     "Mustermann",
				Email:        "max.example.de",
				InterestedIn: "probetraining",
				Source:       "contact_page",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, err := repo.Create(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, lead.ID, "created lead must have an ID")
			assert.Equal(t, models.LeadNew, lead.Status)
		})
	}
}

func TestLeadRepository_Search(t *testing.T) {
	db := setupLeadTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewLeadRepository(db)

	leads, total, err := repo.Search(LeadSearchFilters{
		Status:   models.LeadNew,
		Limit:    10,
		SortDesc: true,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(leads), total)
}
