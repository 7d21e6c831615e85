package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/servicereq"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

type fakeAgentRepo struct {
	agents map[int64]*agent.Agent
	nextID int64
}

func newFakeAgentRepo() *fakeAgentRepo {
	return &fakeAgentRepo{agents: map[int64]*agent.Agent{}}
}

func (f *fakeAgentRepo) Create(_ context.Context, a *agent.Agent) error {
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.agents[a.ID] = &cp
	return nil
}

func (f *fakeAgentRepo) FindByID(_ context.Context, id int64) (*agent.Agent, error) {
	a, ok := f.agents[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return a, nil
}

func (f *fakeAgentRepo) FindByEmail(_ context.Context, email string) (*agent.Agent, error) {
	return nil, xerrors.ErrNotFound
}

func (f *fakeAgentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	a, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	a.Status = status
	return nil
}

func (f *fakeAgentRepo) UpdateLocation(_ context.Context, id int64, lat, lng float64) error {
	return nil
}

func (f *fakeAgentRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return nil
}

func (f *fakeAgentRepo) ListByStatus(_ context.Context, status string) ([]agent.Agent, error) {
	result := []agent.Agent{}
	for _, a := range f.agents {
		if status == "" || a.Status == status {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeAgentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.agents)), nil
}

func (f *fakeAgentRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	agents, _ := f.ListByStatus(ctx, status)
	return int64(len(agents)), nil
}

type fakeCustomerRepo struct {
	count int64
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error { return nil }
func (f *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*customer.Customer, error) {
	return nil, xerrors.ErrNotFound
}
func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	return nil, xerrors.ErrNotFound
}
func (f *fakeCustomerRepo) Search(_ context.Context, query string, limit int) ([]customer.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) UpdateQRCodeURL(_ context.Context, id int64, url string) error {
	return nil
}
func (f *fakeCustomerRepo) UpdateLocation(_ context.Context, id int64, lat, lng float64) error {
	return nil
}
func (f *fakeCustomerRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return nil
}
func (f *fakeCustomerRepo) List(_ context.Context) ([]customer.Customer, error) {
	return []customer.Customer{}, nil
}
func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) { return f.count, nil }

type fakeServiceRepo struct {
	count int64
}

func (f *fakeServiceRepo) Create(_ context.Context, s *servicereq.ServiceRequest) error { return nil }
func (f *fakeServiceRepo) ListAll(_ context.Context) ([]servicereq.WithNames, error)    { return nil, nil }
func (f *fakeServiceRepo) ListRecentByCustomer(_ context.Context, customerID int64, limit int) ([]servicereq.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeServiceRepo) History(_ context.Context, customerID int64) ([]servicereq.ServiceRequest, error) {
	return nil, nil
}
func (f *fakeServiceRepo) UpdateStatus(_ context.Context, id int64, status string, agentID *int64) error {
	return nil
}
func (f *fakeServiceRepo) Count(_ context.Context) (int64, error) { return f.count, nil }

func TestApproveAndRejectAgent(t *testing.T) {
	agents := newFakeAgentRepo()
	svc := NewAdminService(agents, &fakeCustomerRepo{}, &fakeServiceRepo{}, zap.NewNop())

	a := &agent.Agent{Name: "Ali", Status: agent.StatusPending}
	require.NoError(t, agents.Create(context.Background(), a))

	require.NoError(t, svc.ApproveAgent(context.Background(), a.ID))
	assert.Equal(t, agent.StatusActive, agents.agents[a.ID].Status)

	require.NoError(t, svc.RejectAgent(context.Background(), a.ID))
	assert.Equal(t, agent.StatusSuspended, agents.agents[a.ID].Status)
}

func TestApproveUnknownAgent(t *testing.T) {
	svc := NewAdminService(newFakeAgentRepo(), &fakeCustomerRepo{}, &fakeServiceRepo{}, zap.NewNop())

	err := svc.ApproveAgent(context.Background(), 404)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestStatsCounters(t *testing.T) {
	agents := newFakeAgentRepo()
	require.NoError(t, agents.Create(context.Background(), &agent.Agent{Status: agent.StatusPending}))
	require.NoError(t, agents.Create(context.Background(), &agent.Agent{Status: agent.StatusActive}))

	svc := NewAdminService(agents, &fakeCustomerRepo{count: 12}, &fakeServiceRepo{count: 7}, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalAgents)
	assert.Equal(t, int64(1), stats.PendingAgents)
	assert.Equal(t, int64(12), stats.TotalCustomers)
	assert.Equal(t, int64(7), stats.TotalServices)
	assert.Len(t, stats.RevenueChart, 6)
}

func TestMapDataFiltersActiveAgents(t *testing.T) {
	agents := newFakeAgentRepo()
	require.NoError(t, agents.Create(context.Background(), &agent.Agent{Status: agent.StatusActive}))
	require.NoError(t, agents.Create(context.Background(), &agent.Agent{Status: agent.StatusPending}))

	svc := NewAdminService(agents, &fakeCustomerRepo{}, &fakeServiceRepo{}, zap.NewNop())

	data, err := svc.MapData(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Agents, 1)
}
