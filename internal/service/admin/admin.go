// internal/service/admin/admin.go
package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/admin"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/servicereq"
)

// AdminService backs the back-office console: agent approval, platform
// stats, and the global map view.
type AdminService struct {
	agentRepo    agent.Repository
	customerRepo customer.Repository
	serviceRepo  servicereq.Repository
	logger       *zap.Logger
}

func NewAdminService(
	agentRepo agent.Repository,
	customerRepo customer.Repository,
	serviceRepo servicereq.Repository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		agentRepo:    agentRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// ListAgents returns agents filtered by status; an empty status means all.
func (s *AdminService) ListAgents(ctx context.Context, status string) ([]agent.Agent, error) {
	return s.agentRepo.ListByStatus(ctx, status)
}

// ApproveAgent flips a pending agent to Active so they can log in.
func (s *AdminService) ApproveAgent(ctx context.Context, id int64) error {
	if err := s.agentRepo.UpdateStatus(ctx, id, agent.StatusActive); err != nil {
		return err
	}
	s.logger.Info("agent approved", zap.Int64("agent_id", id))
	return nil
}

// RejectAgent suspends the agent. The record is kept for audit.
func (s *AdminService) RejectAgent(ctx context.Context, id int64) error {
	if err := s.agentRepo.UpdateStatus(ctx, id, agent.StatusSuspended); err != nil {
		return err
	}
	s.logger.Info("agent rejected", zap.Int64("agent_id", id))
	return nil
}

func (s *AdminService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	return s.customerRepo.List(ctx)
}

// Stats aggregates live counters with a canned revenue series the console
// charts until billing data exists.
func (s *AdminService) Stats(ctx context.Context) (*admin.Stats, error) {
	totalAgents, err := s.agentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingAgents, err := s.agentRepo.CountByStatus(ctx, agent.StatusPending)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalServices, err := s.serviceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &admin.Stats{
		TotalAgents:    totalAgents,
		PendingAgents:  pendingAgents,
		TotalCustomers: totalCustomers,
		TotalServices:  totalServices,
		RevenueChart: []admin.RevenuePoint{
			{Name: "Jan", Revenue: 4000, Services: 24},
			{Name: "Feb", Revenue: 3000, Services: 18},
			{Name: "Mar", Revenue: 2000, Services: 12},
			{Name: "Apr", Revenue: 2780, Services: 20},
			{Name: "May", Revenue: 1890, Services: 15},
			{Name: "Jun", Revenue: 5390, Services: 30},
		},
	}, nil
}

type MapData struct {
	Agents    []agent.Agent       `json:"agents"`
	Customers []customer.Customer `json:"customers"`
}

// MapData returns active agents plus every customer for the global map.
// Coordinates are passed through exactly as stored.
func (s *AdminService) MapData(ctx context.Context) (*MapData, error) {
	agents, err := s.agentRepo.ListByStatus(ctx, agent.StatusActive)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &MapData{Agents: agents, Customers: customers}, nil
}
