// internal/domain/servicereq/repository.go
package servicereq

import "context"

type Repository interface {
	Create(ctx context.Context, s *ServiceRequest) error

	ListAll(ctx context.Context) ([]WithNames, error)

	// ListRecentByCustomer orders by request_date descending; limit <= 0
	// means no limit.
	ListRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]ServiceRequest, error)

	// History orders by scheduled_date descending.
	History(ctx context.Context, customerID int64) ([]ServiceRequest, error)

	// UpdateStatus overwrites the status and optionally assigns an agent.
	UpdateStatus(ctx context.Context, id int64, status string, agentID *int64) error

	Count(ctx context.Context) (int64, error)
}
