// internal/service/customer/customer.go
package customer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/inventory"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/servicereq"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
	"github.com/sawaidbasit2/aixosFire-backend/internal/pkg/qr"
	"github.com/sawaidbasit2/aixosFire-backend/internal/storage"
)

// CustomerService owns customer resolution and lead conversion plus the
// customer-facing reads (dashboard, inventory, history).
type CustomerService struct {
	customerRepo  customer.Repository
	inventoryRepo inventory.Repository
	serviceRepo   servicereq.Repository
	blobs         storage.BlobStore
	deepLinkBase  string
	logger        *zap.Logger
}

func NewCustomerService(
	customerRepo customer.Repository,
	inventoryRepo inventory.Repository,
	serviceRepo servicereq.Repository,
	blobs storage.BlobStore,
	deepLinkBase string,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
		serviceRepo:   serviceRepo,
		blobs:         blobs,
		deepLinkBase:  strings.TrimRight(deepLinkBase, "/"),
		logger:        logger,
	}
}

// ResolveForVisit produces a concrete customer id to attach a visit to.
//
// A supplied id is trusted as-is (caller-verified) and returned unchanged.
// Otherwise a minimal Lead record is created with placeholder credentials,
// and a QR asset is attached best-effort. The customer insert is the only
// hard failure here; QR generation and the URL backfill degrade to warnings.
//
// Deliberately not idempotent: two id-less calls create two Leads.
func (s *CustomerService) ResolveForVisit(ctx context.Context, req *customer.ResolveRequest) (*customer.Resolution, error) {
	if req.CustomerID > 0 {
		return &customer.Resolution{CustomerID: req.CustomerID}, nil
	}

	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "business_name is required when no customer_id is given")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = customer.LeadEmail()
	}

	passwordHash, err := placeholderPasswordHash()
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize lead credential: %w", err)
	}

	c := &customer.Customer{
		BusinessName: req.BusinessName,
		OwnerName:    nullString(req.OwnerName),
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        nullString(req.Phone),
		Address:      nullString(req.Address),
		BusinessType: nullString(req.BusinessType),
		Status:       customer.StatusLead,
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create lead customer",
			zap.String("business_name", req.BusinessName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create lead customer: %w", err)
	}

	s.logger.Info("lead customer created",
		zap.Int64("customer_id", c.ID),
		zap.String("business_name", c.BusinessName),
	)

	res := &customer.Resolution{CustomerID: c.ID, Created: true}

	if _, err := s.AttachQRCode(ctx, c.ID, req.BusinessName); err != nil {
		s.logger.Warn("qr code attachment failed for lead",
			zap.Int64("customer_id", c.ID),
			zap.Error(err),
		)
		res.Warnings = append(res.Warnings, fmt.Sprintf("qr code not attached: %v", err))
	}

	return res, nil
}

// AttachQRCode encodes the customer's identity payload into a QR image,
// stores it, and backfills qr_code_url on the customer row. Returns the
// public URL of the stored image.
func (s *CustomerService) AttachQRCode(ctx context.Context, customerID int64, businessName string) (string, error) {
	payload := customer.QRPayload{
		ID:   customerID,
		Type: "customer",
		Name: businessName,
		URL:  fmt.Sprintf("%s/customer/%d", s.deepLinkBase, customerID),
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal qr payload: %w", err)
	}

	png, err := qr.EncodePNG(string(content))
	if err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("qrcodes/qr-customer-%d-%d.png", customerID, time.Now().UnixMilli())
	url, err := s.blobs.Save(ctx, objectPath, png)
	if err != nil {
		return "", fmt.Errorf("failed to store qr image: %w", err)
	}

	if err := s.customerRepo.UpdateQRCodeURL(ctx, customerID, url); err != nil {
		return "", fmt.Errorf("failed to backfill qr code url: %w", err)
	}

	return url, nil
}

// Search powers the agent-side autocomplete.
func (s *CustomerService) Search(ctx context.Context, query string) ([]customer.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return []customer.Customer{}, nil
	}
	return s.customerRepo.Search(ctx, query, 10)
}

type DashboardResponse struct {
	Extinguishers []inventory.Extinguisher    `json:"extinguishers"`
	Services      []servicereq.ServiceRequest `json:"services"`
}

// Dashboard bundles the customer's inventory with their five most recent
// service requests.
func (s *CustomerService) Dashboard(ctx context.Context, customerID int64) (*DashboardResponse, error) {
	extinguishers, err := s.inventoryRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	services, err := s.serviceRepo.ListRecentByCustomer(ctx, customerID, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	return &DashboardResponse{Extinguishers: extinguishers, Services: services}, nil
}

func (s *CustomerService) Inventory(ctx context.Context, customerID int64) ([]inventory.Extinguisher, error) {
	return s.inventoryRepo.ListByCustomer(ctx, customerID)
}

func (s *CustomerService) History(ctx context.Context, customerID int64) ([]servicereq.ServiceRequest, error) {
	return s.serviceRepo.History(ctx, customerID)
}

// AddExtinguisher registers a single customer-reported extinguisher. Status
// is always Valid at creation, matching the visit-logging batch path.
func (s *CustomerService) AddExtinguisher(ctx context.Context, req *inventory.AddRequest) (int64, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	e := &inventory.Extinguisher{
		CustomerID:  req.CustomerID,
		Type:        req.Type,
		Capacity:    nullString(req.Capacity),
		Quantity:    quantity,
		InstallDate: lenientDate(req.InstallDate),
		ExpiryDate:  lenientDate(req.ExpiryDate),
		Status:      inventory.StatusValid,
	}

	if err := s.inventoryRepo.Create(ctx, e); err != nil {
		s.logger.Error("failed to add extinguisher", zap.Int64("customer_id", req.CustomerID), zap.Error(err))
		return 0, err
	}

	return e.ID, nil
}

func (s *CustomerService) UpdateLocation(ctx context.Context, id int64, lat, lng float64) error {
	return s.customerRepo.UpdateLocation(ctx, id, lat, lng)
}

// placeholderPasswordHash synthesizes a credential for records that are not
// expected to log in (leads). The plaintext is random and discarded.
func placeholderPasswordHash() (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(ulid.Make().String()), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// lenientDate parses YYYY-MM-DD, falling back to null on anything else.
func lenientDate(s string) sql.NullTime {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
