// internal/repository/postgres/admin_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/admin"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	query := `
		INSERT INTO admins (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, a.Email, a.PasswordHash, a.Name).Scan(&a.ID); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := `SELECT id, email, password, name FROM admins WHERE LOWER(email) = LOWER($1)`

	var a admin.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE admins SET password = $1 WHERE LOWER(email) = LOWER($2)`,
		passwordHash, email,
	)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
