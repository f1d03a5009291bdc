package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"crossfit-gym-platform/internal/models"

	"github.com/google/uuid"
)

// LeadRepository handles lead data operations
type LeadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// LeadSearchFilters represents filters for the admin lead listing
type LeadSearchFilters struct {
	Status   models.LeadStatus // Filter by follow-up status
	Source   string            // Filter by submission source
	DateFrom *time.Time        // Leads created from this date
	DateTo   *time.Time        // Leads created before this date
	Limit    int               // Number of results to return
	Offset   int               // Number of results to skip
	SortDesc bool              // Newest first when true
}

const leadColumns = `id, first_name, last_name, email, phone, message, interested_in,
	booking_date, booking_time, experience_level, source, status, created_at, updated_at`

// Create persists a new lead. A fresh UUID is assigned; duplicate submissions
// deliberately create duplicate rows (the form carries no idempotency key).
func (r *LeadRepository) Create(req *models.LeadCreateRequest) (*models.Lead, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %w", models.ErrInvalidInput)
	}

	query := `
		INSERT INTO leads (id, first_name, last_name, email, phone, message, interested_in,
			booking_date, booking_time, experience_level, source, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + leadColumns

	now := time.Now()
	lead := &models.Lead{}

	err := r.db.QueryRow(
		query,
		uuid.NewString(),
		strings.TrimSpace(req.FirstName),
		strings.TrimSpace(req.LastName),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Phone),
		req.Message,
		req.InterestedIn,
		nullableString(req.BookingDate),
		nullableString(req.BookingTime),
		nullableString(req.ExperienceLevel),
		req.Source,
		models.LeadNew,
		now,
		now,
	).Scan(scanTargets(lead)...)

	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return lead, nil
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id string) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead := &models.Lead{}
	err := r.db.QueryRow(query, id).Scan(scanTargets(lead)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// Search returns leads matching the filters plus the total match count
func (r *LeadRepository) Search(filters LeadSearchFilters) ([]*models.Lead, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}
	if filters.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argIndex))
		args = append(args, filters.Source)
		argIndex++
	}
	if filters.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIndex))
		args = append(args, *filters.DateFrom)
		argIndex++
	}
	if filters.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", argIndex))
		args = append(args, *filters.DateTo)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count first
	countQuery := "SELECT COUNT(*) FROM leads " + whereClause
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	order := "ASC"
	if filters.SortDesc {
		order = "DESC"
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(
		"SELECT "+leadColumns+" FROM leads %s ORDER BY created_at %s LIMIT $%d OFFSET $%d",
		whereClause, order, argIndex, argIndex+1,
	)
	args = append(args, limit, filters.Offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		if err := rows.Scan(scanTargets(lead)...); err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	return leads, total, rows.Err()
}

// UpdateStatus updates the follow-up status of a lead
func (r *LeadRepository) UpdateStatus(id string, status models.LeadStatus) (*models.Lead, error) {
	req := models.LeadStatusUpdateRequest{Status: status}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE leads
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + leadColumns

	lead := &models.Lead{}
	err := r.db.QueryRow(query, id, status, time.Now()).Scan(scanTargets(lead)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	return lead, nil
}

// CountByStatus returns lead counts per status for the admin dashboard
func (r *LeadRepository) CountByStatus() (map[models.LeadStatus]int, error) {
	rows, err := r.db.Query("SELECT status, COUNT(*) FROM leads GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.LeadStatus]int)
	for rows.Next() {
		var status models.LeadStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan lead count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// scanTargets returns the scan destinations matching leadColumns. The
// nullable columns go through sql-null wrappers via the lead pointers below.
func scanTargets(lead *models.Lead) []interface{} {
	return []interface{}{
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&nullString{&lead.Phone},
		&nullString{&lead.Message},
		&lead.InterestedIn,
		&nullString{&lead.BookingDate},
		&nullString{&lead.BookingTime},
		&nullString{&lead.ExperienceLevel},
		&lead.Source,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	}
}

// nullString scans SQL NULL into an empty string
type nullString struct {
	dest *string
}

func (n *nullString) Scan(value interface{}) error {
	if value == nil {
		*n.dest = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*n.dest = v
	case []byte:
		*n.dest = string(v)
	case time.Time:
		*n.dest = v.Format("2006-01-02")
	default:
		return fmt.Errorf("cannot scan %T into string", value)
	}
	return nil
}

func nullableString(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
