// internal/repository/postgres/visit_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/visit"
)

type VisitRepository struct {
	db *pgxpool.Pool
}

func NewVisitRepository(db *pgxpool.Pool) *VisitRepository {
	return &VisitRepository{db: db}
}

// Create inserts a visit row. The customer name and business type are
// written as a point-in-time snapshot, never re-joined.
func (r *VisitRepository) Create(ctx context.Context, v *visit.Visit) error {
	query := `
		INSERT INTO visits (
			agent_id, customer_id, customer_name, business_type,
			notes, risk_assessment, service_recommendations, follow_up_date,
			status, photos
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, visit_date
	`

	err := r.db.QueryRow(
		ctx, query,
		v.AgentID, v.CustomerID, v.CustomerName, v.BusinessType,
		v.Notes, v.RiskAssessment, v.ServiceRecommendations, v.FollowUpDate,
		v.Status, v.Photos,
	).Scan(&v.ID, &v.VisitDate)

	if err != nil {
		return fmt.Errorf("failed to create visit: %w", err)
	}

	return nil
}

func (r *VisitRepository) CountByAgent(ctx context.Context, agentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM visits WHERE agent_id = $1`, agentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

func (r *VisitRepository) CountByAgentAndStatus(ctx context.Context, agentID int64, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM visits WHERE agent_id = $1 AND status = $2`,
		agentID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits by status: %w", err)
	}
	return count, nil
}

// RecentCustomersByAgent returns each customer the agent has visited exactly
// once, tagged with the latest visit date, newest first.
func (r *VisitRepository) RecentCustomersByAgent(ctx context.Context, agentID int64) ([]visit.AgentCustomer, error) {
	query := `
		SELECT * FROM (
			SELECT DISTINCT ON (v.customer_id)
				c.id, c.business_name, c.owner_name, c.email, c.phone, c.address,
				c.business_type, c.status, c.location_lat, c.location_lng,
				c.qr_code_url, c.created_at, v.visit_date
			FROM visits v
			JOIN customers c ON c.id = v.customer_id
			WHERE v.agent_id = $1
			ORDER BY v.customer_id, v.visit_date DESC
		) latest
		ORDER BY visit_date DESC
	`

	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent customers: %w", err)
	}
	defer rows.Close()

	result := []visit.AgentCustomer{}
	for rows.Next() {
		var ac visit.AgentCustomer
		err := rows.Scan(
			&ac.ID, &ac.BusinessName, &ac.OwnerName, &ac.Email, &ac.Phone, &ac.Address,
			&ac.BusinessType, &ac.Status, &ac.LocationLat, &ac.LocationLng,
			&ac.QRCodeURL, &ac.CreatedAt, &ac.LastVisit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent customer: %w", err)
		}
		result = append(result, ac)
	}

	return result, rows.Err()
}
