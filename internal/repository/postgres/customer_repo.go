// internal/repository/postgres/customer_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

const customerColumns = `id, business_name, owner_name, email, password, phone, address,
	business_type, status, location_lat, location_lng, qr_code_url, created_at`

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func scanCustomer(row pgx.Row, c *customer.Customer) error {
	return row.Scan(
		&c.ID, &c.BusinessName, &c.OwnerName, &c.Email, &c.PasswordHash, &c.Phone, &c.Address,
		&c.BusinessType, &c.Status, &c.LocationLat, &c.LocationLng, &c.QRCodeURL, &c.CreatedAt,
	)
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			business_name, owner_name, email, password, phone, address,
			business_type, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		c.BusinessName, c.OwnerName, c.Email, c.PasswordHash, c.Phone, c.Address,
		c.BusinessType, c.Status,
	).Scan(&c.ID, &c.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)

	var c customer.Customer
	err := scanCustomer(r.db.QueryRow(ctx, query, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &c, nil
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE LOWER(email) = LOWER($1)`, customerColumns)

	var c customer.Customer
	err := scanCustomer(r.db.QueryRow(ctx, query, email), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &c, nil
}

// Search matches business name or phone for autocomplete.
func (r *CustomerRepository) Search(ctx context.Context, query string, limit int) ([]customer.Customer, error) {
	if limit < 1 {
		limit = 10
	}

	sqlQuery := fmt.Sprintf(`
		SELECT %s FROM customers
		WHERE business_name ILIKE $1 OR phone ILIKE $1
		ORDER BY business_name
		LIMIT $2
	`, customerColumns)

	rows, err := r.db.Query(ctx, sqlQuery, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

// UpdateQRCodeURL is a partial update scoped to qr_code_url only.
func (r *CustomerRepository) UpdateQRCodeURL(ctx context.Context, id int64, url string) error {
	result, err := r.db.Exec(ctx, `UPDATE customers SET qr_code_url = $1 WHERE id = $2`, url, id)
	if err != nil {
		return fmt.Errorf("failed to update qr code url: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) UpdateLocation(ctx context.Context, id int64, lat, lng float64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET location_lat = $1, location_lng = $2 WHERE id = $3`,
		lat, lng, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer location: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET password = $1 WHERE LOWER(email) = LOWER($2)`,
		passwordHash, email,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers ORDER BY created_at DESC`, customerColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func collectCustomers(rows pgx.Rows) ([]customer.Customer, error) {
	customers := []customer.Customer{}
	for rows.Next() {
		var c customer.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
