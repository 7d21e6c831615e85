// internal/service/agent/agent.go
package agent

import (
	"context"

	"go.uber.org/zap"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/visit"
)

// AgentService covers the agent's own workspace: performance stats, the
// customers they service, and live location reporting.
type AgentService struct {
	agentRepo agent.Repository
	visitRepo visit.Repository
	logger    *zap.Logger
}

func NewAgentService(agentRepo agent.Repository, visitRepo visit.Repository, logger *zap.Logger) *AgentService {
	return &AgentService{agentRepo: agentRepo, visitRepo: visitRepo, logger: logger}
}

const earningsPerConversion = 50

// Stats aggregates live visit counters with a canned six-month series the
// mobile dashboard charts. Earnings are a flat rate per completed visit
// until billing lands.
func (s *AgentService) Stats(ctx context.Context, agentID int64) (*agent.Stats, error) {
	totalVisits, err := s.visitRepo.CountByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	conversions, err := s.visitRepo.CountByAgentAndStatus(ctx, agentID, visit.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &agent.Stats{
		TotalVisits: totalVisits,
		Conversions: conversions,
		Earnings:    conversions * earningsPerConversion,
		ChartData: []agent.MonthlyStat{
			{Name: "Jan", Visits: 12, Earnings: 400},
			{Name: "Feb", Visits: 19, Earnings: 750},
			{Name: "Mar", Visits: 15, Earnings: 600},
			{Name: "Apr", Visits: 22, Earnings: 1200},
			{Name: "May", Visits: 30, Earnings: 1500},
			{Name: "Jun", Visits: 35, Earnings: 1800},
		},
	}, nil
}

// MyCustomers lists every customer the agent has visited, newest visit first.
func (s *AgentService) MyCustomers(ctx context.Context, agentID int64) ([]visit.AgentCustomer, error) {
	return s.visitRepo.RecentCustomersByAgent(ctx, agentID)
}

func (s *AgentService) UpdateLocation(ctx context.Context, agentID int64, lat, lng float64) error {
	if err := s.agentRepo.UpdateLocation(ctx, agentID, lat, lng); err != nil {
		s.logger.Error("failed to update agent location", zap.Int64("agent_id", agentID), zap.Error(err))
		return err
	}
	return nil
}
