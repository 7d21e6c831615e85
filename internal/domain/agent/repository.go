// internal/domain/agent/repository.go
package agent

import "context"

type Repository interface {
	Create(ctx context.Context, a *Agent) error
	FindByID(ctx context.Context, id int64) (*Agent, error)
	FindByEmail(ctx context.Context, email string) (*Agent, error)

	// Lifecycle: Pending -> Active (approve), Pending/Active -> Suspended (reject)
	UpdateStatus(ctx context.Context, id int64, status string) error

	UpdateLocation(ctx context.Context, id int64, lat, lng float64) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	// ListByStatus returns all agents when status is empty.
	ListByStatus(ctx context.Context, status string) ([]Agent, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}
