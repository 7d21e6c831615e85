// internal/repository/postgres/service_repo.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/servicereq"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

const serviceColumns = `id, customer_id, agent_id, service_type, status,
	request_date, scheduled_date, completed_date, amount, commission, notes`

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func scanService(row pgx.Row, s *servicereq.ServiceRequest) error {
	return row.Scan(
		&s.ID, &s.CustomerID, &s.AgentID, &s.ServiceType, &s.Status,
		&s.RequestDate, &s.ScheduledDate, &s.CompletedDate, &s.Amount, &s.Commission, &s.Notes,
	)
}

func (r *ServiceRepository) Create(ctx context.Context, s *servicereq.ServiceRequest) error {
	query := `
		INSERT INTO services (
			customer_id, agent_id, service_type, status, scheduled_date, amount, commission, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, request_date
	`

	err := r.db.QueryRow(
		ctx, query,
		s.CustomerID, s.AgentID, s.ServiceType, s.Status, s.ScheduledDate,
		s.Amount, s.Commission, s.Notes,
	).Scan(&s.ID, &s.RequestDate)

	if err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}

	return nil
}

// ListAll joins customer and agent display names for the admin view.
func (r *ServiceRepository) ListAll(ctx context.Context) ([]servicereq.WithNames, error) {
	query := `
		SELECT s.id, s.customer_id, s.agent_id, s.service_type, s.status,
		       s.request_date, s.scheduled_date, s.completed_date, s.amount, s.commission, s.notes,
		       c.business_name, a.name
		FROM services s
		LEFT JOIN customers c ON c.id = s.customer_id
		LEFT JOIN agents a ON a.id = s.agent_id
		ORDER BY s.request_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := []servicereq.WithNames{}
	for rows.Next() {
		var s servicereq.WithNames
		err := rows.Scan(
			&s.ID, &s.CustomerID, &s.AgentID, &s.ServiceType, &s.Status,
			&s.RequestDate, &s.ScheduledDate, &s.CompletedDate, &s.Amount, &s.Commission, &s.Notes,
			&s.BusinessName, &s.AgentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	return services, rows.Err()
}

func (r *ServiceRepository) ListRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]servicereq.ServiceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE customer_id = $1 ORDER BY request_date DESC`, serviceColumns)
	args := []interface{}{customerID}

	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for customer: %w", err)
	}
	defer rows.Close()

	return collectServices(rows)
}

func (r *ServiceRepository) History(ctx context.Context, customerID int64) ([]servicereq.ServiceRequest, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM services WHERE customer_id = $1 ORDER BY scheduled_date DESC NULLS LAST`,
		serviceColumns,
	)

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service history: %w", err)
	}
	defer rows.Close()

	return collectServices(rows)
}

// UpdateStatus overwrites the status with no transition guard; an agent can
// optionally be assigned in the same call.
func (r *ServiceRepository) UpdateStatus(ctx context.Context, id int64, status string, agentID *int64) error {
	query := `UPDATE services SET status = $1 WHERE id = $2`
	args := []interface{}{status, id}
	if agentID != nil {
		query = `UPDATE services SET status = $1, agent_id = $2 WHERE id = $3`
		args = []interface{}{status, *agentID, id}
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update service status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}

func collectServices(rows pgx.Rows) ([]servicereq.ServiceRequest, error) {
	services := []servicereq.ServiceRequest{}
	for rows.Next() {
		var s servicereq.ServiceRequest
		if err := scanService(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}
