package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domagent "github.com/sawaidbasit2/aixosFire-backend/internal/domain/agent"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/inventory"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/visit"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
	agentservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/agent"
	customerservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/customer"
	visitservice "github.com/sawaidbasit2/aixosFire-backend/internal/service/visit"
)

type fakeAgentRepo struct{}

func (f *fakeAgentRepo) Create(_ context.Context, a *domagent.Agent) error { return nil }
func (f *fakeAgentRepo) FindByID(_ context.Context, id int64) (*domagent.Agent, error) {
	return nil, xerrors.ErrNotFound
}
func (f *fakeAgentRepo) FindByEmail(_ context.Context, email string) (*domagent.Agent, error) {
	return nil, xerrors.ErrNotFound
}
func (f *fakeAgentRepo) UpdateStatus(_ context.Context, id int64, status string) error { return nil }
func (f *fakeAgentRepo) UpdateLocation(_ context.Context, id int64, lat, lng float64) error {
	return nil
}
func (f *fakeAgentRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	return nil
}
func (f *fakeAgentRepo) ListByStatus(_ context.Context, status string) ([]domagent.Agent, error) {
	return nil, nil
}
func (f *fakeAgentRepo) Count(_ context.Context) (int64, error)                  { return 0, nil }
func (f *fakeAgentRepo) CountByStatus(_ context.Context, _ string) (int64, error) { return 0, nil }

type fakeVisitRepo struct {
	visits []visit.Visit
	nextID int64
}

func (f *fakeVisitRepo) Create(_ context.Context, v *visit.Visit) error {
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
	items []inventory.Extinguisher
}

func (f *fakeInventoryRepo) Create(_ context.Context, e *inventory.Extinguisher) error {
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeInventoryRepo) CreateBatch(_ context.Context, items []inventory.Extinguisher) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeInventoryRepo) ListByCustomer(_ context.Context, customerID int64) ([]inventory.Extinguisher, error) {
	return f.items, nil
}

type fakeCustomerRepo struct {
	customers map[int64]*customer.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]*customer.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *customer.Customer) error {
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.customers[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id int64) (*customer.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	return nil, xerrors.ErrNotFound
}

func (f *fakeCustomerRepo) Search(_ context.Context, query string, limit int) ([]customer.Customer, error) {
	result := []customer.Customer{}
	for _, c := range f.customers {
		if strings.Contains(strings.ToLower(c.BusinessName), strings.ToLower(query)) {
			result = append(result, *c)
		}
	}
	return result, nil
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
func (f *fakeCustomerRepo) List(_ context.Context) ([]customer.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error)              { return 0, nil }

type fakeBlobStore struct {
	saved map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{saved: map[string][]byte{}}
}

func (f *fakeBlobStore) Save(_ context.Context, objectPath string, data []byte) (string, error) {
	f.saved[objectPath] = data
	return "/uploads/" + objectPath, nil
}

type handlerEnv struct {
	router    *gin.Engine
	visits    *fakeVisitRepo
	inv       *fakeInventoryRepo
	customers *fakeCustomerRepo
}

func newHandlerEnv() *handlerEnv {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	customers := newFakeCustomerRepo()
	visits := &fakeVisitRepo{}
	inv := &fakeInventoryRepo{}
	blobs := newFakeBlobStore()

	customerService := customerservice.NewCustomerService(
		customers, inv, nil, blobs, "https://app.aixos.com", logger,
	)
	visitService := visitservice.NewVisitService(visits, inv, customerService, logger)
	agentService := agentservice.NewAgentService(&fakeAgentRepo{}, visits, logger)

	h := NewAgentHandler(agentService, visitService, customerService, blobs)

	r := gin.New()
	api := r.Group("/api/agents")
	api.GET("/customers/search", h.SearchCustomers)
	api.POST("/visits", h.LogVisit)
	api.GET("/:id/stats", h.Stats)
	api.GET("/:id/my-customers", h.MyCustomers)
	api.POST("/location", h.UpdateLocation)

	return &handlerEnv{router: r, visits: visits, inv: inv, customers: customers}
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogVisitHappyPath(t *testing.T) {
	env := newHandlerEnv()

	w := postForm(t, env.router, "/api/agents/visits", url.Values{
		"agent_id":    {"3"},
		"customer_id": {"9"},
		"notes":       {"all good"},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Visit logged successfully", body["message"])
	assert.Equal(t, float64(1), body["visitId"])

	require.Len(t, env.visits.visits, 1)
	assert.Equal(t, int64(9), env.visits.visits[0].CustomerID)
}

func TestLogVisitCreatesLead(t *testing.T) {
	env := newHandlerEnv()

	w := postForm(t, env.router, "/api/agents/visits", url.Values{
		"agent_id":      {"1"},
		"business_name": {"Korangi Chemicals"},
		"business_type": {"Industrial"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, env.customers.customers, 1)
	for _, c := range env.customers.customers {
		assert.Equal(t, customer.StatusLead, c.Status)
	}
}

func TestLogVisitMissingAgentID(t *testing.T) {
	env := newHandlerEnv()

	w := postForm(t, env.router, "/api/agents/visits", url.Values{
		"business_name": {"Somewhere"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestLogVisitMissingCustomerAndBusinessName(t *testing.T) {
	env := newHandlerEnv()

	w := postForm(t, env.router, "/api/agents/visits", url.Values{
		"agent_id": {"1"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to log visit", body["error"])
	assert.Empty(t, env.visits.visits)
}

func TestLogVisitMalformedInventoryStillSucceeds(t *testing.T) {
	env := newHandlerEnv()

	w := postForm(t, env.router, "/api/agents/visits", url.Values{
		"agent_id":    {"1"},
		"customer_id": {"4"},
		"inventory":   {`not json at all`},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, env.visits.visits, 1)
	assert.Empty(t, env.inv.items, "bad inventory records nothing")
}

func TestLogVisitExpiredInventoryStaysValid(t *testing.T) {
	env := newHandlerEnv()

	w := postForm(t, env.router, "/api/agents/visits", url.Values{
		"agent_id":    {"1"},
		"customer_id": {"4"},
		"inventory":   {`[{"type": "CO2", "expiry_date": "2019-05-01"}]`},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, env.inv.items, 1)
	assert.Equal(t, inventory.StatusValid, env.inv.items[0].Status)
}

func TestSearchCustomersEmptyQuery(t *testing.T) {
	env := newHandlerEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/agents/customers/search", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestStatsEarnings(t *testing.T) {
	env := newHandlerEnv()

	// Two completed visits for agent 5
	for i := 0; i < 2; i++ {
		w := postForm(t, env.router, "/api/agents/visits", url.Values{
			"agent_id":    {"5"},
			"customer_id": {"1"},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/agents/5/stats", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stats domagent.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalVisits)
	assert.Equal(t, int64(2), stats.Conversions)
	assert.Equal(t, int64(100), stats.Earnings)
	assert.Len(t, stats.ChartData, 6)
}

func TestStatsInvalidID(t *testing.T) {
	env := newHandlerEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/agents/abc/stats", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLocation(t *testing.T) {
	env := newHandlerEnv()

	body := `{"id": 3, "lat": 24.8607, "lng": 67.0011}`
	req := httptest.NewRequest(http.MethodPost, "/api/agents/location", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Location updated")
}
