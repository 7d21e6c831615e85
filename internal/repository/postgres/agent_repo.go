// internal/repository/postgres/agent_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

const agentColumns = `id, name, email, password, phone, cnic, territory, status,
	profile_photo, cnic_document, terms_accepted, commission_rate,
	location_lat, location_lng, last_active, created_at`

type AgentRepository struct {
	db *pgxpool.Pool
}

func NewAgentRepository(db *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{db: db}
}

func scanAgent(row pgx.Row, a *agent.Agent) error {
	return row.Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Phone, &a.CNIC, &a.Territory, &a.Status,
		&a.ProfilePhoto, &a.CNICDocument, &a.TermsAccepted, &a.CommissionRate,
		&a.LocationLat, &a.LocationLng, &a.LastActive, &a.CreatedAt,
	)
}

// Create inserts a new agent. Status defaults to Pending at the schema level
// but is always set explicitly by callers.
func (r *AgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	query := `
		INSERT INTO agents (
			name, email, password, phone, cnic, territory, status,
			profile_photo, cnic_document, terms_accepted, commission_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		a.Name, a.Email, a.PasswordHash, a.Phone, a.CNIC, a.Territory, a.Status,
		a.ProfilePhoto, a.CNICDocument, a.TermsAccepted, a.CommissionRate,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	return nil
}

func (r *AgentRepository) FindByID(ctx context.Context, id int64) (*agent.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents WHERE id = $1`, agentColumns)

	var a agent.Agent
	err := scanAgent(r.db.QueryRow(ctx, query, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}

	return &a, nil
}

func (r *AgentRepository) FindByEmail(ctx context.Context, email string) (*agent.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents WHERE LOWER(email) = LOWER($1)`, agentColumns)

	var a agent.Agent
	err := scanAgent(r.db.QueryRow(ctx, query, email), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find agent: %w", err)
	}

	return &a, nil
}

func (r *AgentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE agents SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update agent status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateLocation also bumps last_active, which feeds the admin map view.
func (r *AgentRepository) UpdateLocation(ctx context.Context, id int64, lat, lng float64) error {
	query := `UPDATE agents SET location_lat = $1, location_lng = $2, last_active = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, query, lat, lng, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update agent location: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *AgentRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE agents SET password = $1 WHERE LOWER(email) = LOWER($2)`,
		passwordHash, email,
	)
	if err != nil {
		return fmt.Errorf("failed to update agent password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *AgentRepository) ListByStatus(ctx context.Context, status string) ([]agent.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents`, agentColumns)
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	agents := []agent.Agent{}
	for rows.Next() {
		var a agent.Agent
		if err := scanAgent(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, a)
	}

	return agents, rows.Err()
}

func (r *AgentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM agents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count agents: %w", err)
	}
	return count, nil
}

func (r *AgentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM agents WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count agents by status: %w", err)
	}
	return count, nil
}
