// internal/domain/visit/repository.go
package visit

import "context"

type Repository interface {
	Create(ctx context.Context, v *Visit) error

	CountByAgent(ctx context.Context, agentID int64) (int64, error)
	CountByAgentAndStatus(ctx context.Context, agentID int64, status string) (int64, error)

	// RecentCustomersByAgent returns the distinct customers an agent has
	// visited, newest visit first.
	RecentCustomersByAgent(ctx context.Context, agentID int64) ([]AgentCustomer, error)
}
