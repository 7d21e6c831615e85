// internal/repository/postgres/inventory_repo.go
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/inventory"
)

const extinguisherColumns = `id, customer_id, visit_id, type, capacity, quantity,
	install_date, last_refill_date, expiry_date, condition, status,
	certificate_photo, extinguisher_photo`

type InventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, e *inventory.Extinguisher) error {
	query := `
		INSERT INTO extinguishers (
			customer_id, visit_id, type, capacity, quantity,
			install_date, last_refill_date, expiry_date, condition, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx, query,
		e.CustomerID, e.VisitID, e.Type, e.Capacity, e.Quantity,
		e.InstallDate, e.LastRefillDate, e.ExpiryDate, e.Condition, e.Status,
	).Scan(&e.ID)

	if err != nil {
		return fmt.Errorf("failed to create extinguisher: %w", err)
	}

	return nil
}

// CreateBatch writes all rows in a single multi-row INSERT so the batch is
// atomic: either every extinguisher is recorded or none are.
func (r *InventoryRepository) CreateBatch(ctx context.Context, items []inventory.Extinguisher) error {
	if len(items) == 0 {
		return nil
	}

	var (
		sb   strings.Builder
		args []interface{}
	)

	sb.WriteString(`
		INSERT INTO extinguishers (
			customer_id, visit_id, type, capacity, quantity,
			install_date, last_refill_date, expiry_date, condition, status
		) VALUES `)

	for i, e := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 10
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10))
		args = append(args,
			e.CustomerID, e.VisitID, e.Type, e.Capacity, e.Quantity,
			e.InstallDate, e.LastRefillDate, e.ExpiryDate, e.Condition, e.Status,
		)
	}

	if _, err := r.db.Exec(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to insert inventory batch: %w", err)
	}

	return nil
}

func (r *InventoryRepository) ListByCustomer(ctx context.Context, customerID int64) ([]inventory.Extinguisher, error) {
	query := fmt.Sprintf(`SELECT %s FROM extinguishers WHERE customer_id = $1 ORDER BY id`, extinguisherColumns)

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list extinguishers: %w", err)
	}
	defer rows.Close()

	items := []inventory.Extinguisher{}
	for rows.Next() {
		var e inventory.Extinguisher
		err := rows.Scan(
			&e.ID, &e.CustomerID, &e.VisitID, &e.Type, &e.Capacity, &e.Quantity,
			&e.InstallDate, &e.LastRefillDate, &e.ExpiryDate, &e.Condition, &e.Status,
			&e.CertificatePhoto, &e.ExtinguisherPhoto,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan extinguisher: %w", err)
		}
		items = append(items, e)
	}

	return items, rows.Err()
}
