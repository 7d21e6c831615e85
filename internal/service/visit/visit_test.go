package visit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/inventory"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/visit"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

type fakeVisitRepo struct {
	visits    []visit.Visit
	createErr error
	nextID    int64
}

func (f *fakeVisitRepo) Create(_ context.Context, v *visit.Visit) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	v.ID = f.nextID
	f.visits = append(f.visits, *v)
	return nil
}

func (f *fakeVisitRepo) CountByAgent(_ context.Context, agentID int64) (int64, error) {
	var n int64
	for _, v := range f.visits {
		if v.AgentID == agentID {
			n++
		}
	}
	return n, nil
}

func (f *fakeVisitRepo) CountByAgentAndStatus(_ context.Context, agentID int64, status string) (int64, error) {
	var n int64
	for _, v := range f.visits {
		if v.AgentID == agentID && v.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeVisitRepo) RecentCustomersByAgent(_ context.Context, agentID int64) ([]visit.AgentCustomer, error) {
	return []visit.AgentCustomer{}, nil
}

type fakeInventoryRepo struct {
	items    []inventory.Extinguisher
	batchErr error
}

func (f *fakeInventoryRepo) Create(_ context.Context, e *inventory.Extinguisher) error {
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeInventoryRepo) CreateBatch(_ context.Context, items []inventory.Extinguisher) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeInventoryRepo) ListByCustomer(_ context.Context, customerID int64) ([]inventory.Extinguisher, error) {
	return f.items, nil
}

type fakeResolver struct {
	resolution *customer.Resolution
	err        error
	lastReq    *customer.ResolveRequest
}

func (f *fakeResolver) ResolveForVisit(_ context.Context, req *customer.ResolveRequest) (*customer.Resolution, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resolution, nil
}

func newTestService(visits *fakeVisitRepo, inv *fakeInventoryRepo, resolver *fakeResolver) *VisitService {
	return NewVisitService(visits, inv, resolver, zap.NewNop())
}

func TestLogVisitWithExistingCustomer(t *testing.T) {
	visits := &fakeVisitRepo{}
	inv := &fakeInventoryRepo{}
	resolver := &fakeResolver{resolution: &customer.Resolution{CustomerID: 9}}
	svc := newTestService(visits, inv, resolver)

	result, err := svc.LogVisit(context.Background(), &visit.LogRequest{
		AgentID:      3,
		CustomerID:   9,
		BusinessName: "Sialkot Sports",
		BusinessType: "Retail",
		Notes:        "routine check",
		FollowUpDate: "2026-09-15",
	}, []string{"/uploads/visits/a.jpg"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.VisitID)
	assert.Equal(t, int64(9), result.CustomerID)
	assert.False(t, result.LeadCreated)
	assert.Empty(t, result.Warnings)

	require.Len(t, visits.visits, 1)
	v := visits.visits[0]
	assert.Equal(t, "Sialkot Sports", v.CustomerName.String, "customer name is snapshotted")
	assert.Equal(t, visit.StatusCompleted, v.Status)
	assert.True(t, v.FollowUpDate.Valid)
	assert.Equal(t, []string{"/uploads/visits/a.jpg"}, []string(v.Photos))
}

func TestLogVisitCreatesLeadAndCarriesWarnings(t *testing.T) {
	visits := &fakeVisitRepo{}
	resolver := &fakeResolver{resolution: &customer.Resolution{
		CustomerID: 11,
		Created:    true,
		Warnings:   []string{"qr code not attached: disk full"},
	}}
	svc := newTestService(visits, &fakeInventoryRepo{}, resolver)

	result, err := svc.LogVisit(context.Background(), &visit.LogRequest{
		AgentID:      1,
		BusinessName: "Peshawar Plastics",
	}, nil)
	require.NoError(t, err)

	assert.True(t, result.LeadCreated)
	assert.Equal(t, int64(11), result.CustomerID)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "qr code not attached")
	assert.Equal(t, "Peshawar Plastics", resolver.lastReq.BusinessName)
}

func TestLogVisitResolutionFailureIsFatal(t *testing.T) {
	resolver := &fakeResolver{err: xerrors.ErrInvalidInput}
	svc := newTestService(&fakeVisitRepo{}, &fakeInventoryRepo{}, resolver)

	_, err := svc.LogVisit(context.Background(), &visit.LogRequest{AgentID: 1}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xerrors.ErrInvalidInput))
}

func TestLogVisitCreateFailureIsFatal(t *testing.T) {
	visits := &fakeVisitRepo{createErr: errors.New("insert failed")}
	resolver := &fakeResolver{resolution: &customer.Resolution{CustomerID: 5}}
	svc := newTestService(visits, &fakeInventoryRepo{}, resolver)

	_, err := svc.LogVisit(context.Background(), &visit.LogRequest{AgentID: 1, CustomerID: 5}, nil)
	require.Error(t, err)
}

func TestLogVisitRecordsInventoryBatch(t *testing.T) {
	visits := &fakeVisitRepo{}
	inv := &fakeInventoryRepo{}
	resolver := &fakeResolver{resolution: &customer.Resolution{CustomerID: 9}}
	svc := newTestService(visits, inv, resolver)

	payload := `[
		{"type": "ABC Dry Powder", "capacity": "6kg", "quantity": 2, "expiry_date": "2020-01-01"},
		{"type": "CO2", "condition": "Good"}
	]`

	result, err := svc.LogVisit(context.Background(), &visit.LogRequest{
		AgentID:    1,
		CustomerID: 9,
		Inventory:  payload,
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	require.Len(t, inv.items, 2)
	first := inv.items[0]
	assert.Equal(t, int64(9), first.CustomerID)
	assert.Equal(t, result.VisitID, first.VisitID.Int64)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, inventory.StatusValid, first.Status, "expired dates still record as Valid")

	second := inv.items[1]
	assert.Equal(t, 1, second.Quantity, "missing quantity defaults to 1")
	assert.False(t, second.ExpiryDate.Valid)
}

func TestLogVisitMalformedInventoryIsWarning(t *testing.T) {
	inv := &fakeInventoryRepo{}
	resolver := &fakeResolver{resolution: &customer.Resolution{CustomerID: 9}}
	svc := newTestService(&fakeVisitRepo{}, inv, resolver)

	result, err := svc.LogVisit(context.Background(), &visit.LogRequest{
		AgentID:    1,
		CustomerID: 9,
		Inventory:  `{"not": "an array"`,
	}, nil)
	require.NoError(t, err, "bad inventory must not fail the visit")

	assert.NotZero(t, result.VisitID)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "inventory skipped")
	assert.Empty(t, inv.items)
}

func TestLogVisitInventoryInsertFailureIsWarning(t *testing.T) {
	inv := &fakeInventoryRepo{batchErr: errors.New("constraint violation")}
	resolver := &fakeResolver{resolution: &customer.Resolution{CustomerID: 9}}
	svc := newTestService(&fakeVisitRepo{}, inv, resolver)

	result, err := svc.LogVisit(context.Background(), &visit.LogRequest{
		AgentID:    1,
		CustomerID: 9,
		Inventory:  `[{"type": "Foam"}]`,
	}, nil)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "inventory not saved")
	assert.Empty(t, inv.items, "batch is all-or-nothing")
}

func TestLogVisitBadItemDateDropsWholeBatch(t *testing.T) {
	inv := &fakeInventoryRepo{}
	resolver := &fakeResolver{resolution: &customer.Resolution{CustomerID: 9}}
	svc := newTestService(&fakeVisitRepo{}, inv, resolver)

	payload := `[
		{"type": "Foam", "expiry_date": "2027-03-01"},
		{"type": "CO2", "install_date": "not-a-date"}
	]`

	result, err := svc.LogVisit(context.Background(), &visit.LogRequest{
		AgentID:    1,
		CustomerID: 9,
		Inventory:  payload,
	}, nil)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Empty(t, inv.items, "no partial batch on a bad item")
}

func TestLogVisitInvalidFollowUpDateIsWarning(t *testing.T) {
	visits := &fakeVisitRepo{}
	resolver := &fakeResolver{resolution: &customer.Resolution{CustomerID: 2}}
	svc := newTestService(visits, &fakeInventoryRepo{}, resolver)

	result, err := svc.LogVisit(context.Background(), &visit.LogRequest{
		AgentID:      1,
		CustomerID:   2,
		FollowUpDate: "next tuesday",
	}, nil)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "follow_up_date ignored")
	assert.False(t, visits.visits[0].FollowUpDate.Valid)
}
