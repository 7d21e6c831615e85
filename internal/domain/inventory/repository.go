// internal/domain/inventory/repository.go
package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, e *Extinguisher) error

	// CreateBatch inserts all rows atomically: either every row is written
	// or none are.
	CreateBatch(ctx context.Context, items []Extinguisher) error

	ListByCustomer(ctx context.Context, customerID int64) ([]Extinguisher, error)
}
