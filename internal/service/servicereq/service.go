// internal/service/servicereq/service.go
package servicereq

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/servicereq"
	xerrors "github.com/sawaidbasit2/aixosFire-backend/internal/pkg/errors"
)

// ServiceRequestService manages the service request ledger: customer
// bookings, the admin-wide listing, and status transitions.
type ServiceRequestService struct {
	repo   servicereq.Repository
	logger *zap.Logger
}

func NewServiceRequestService(repo servicereq.Repository, logger *zap.Logger) *ServiceRequestService {
	return &ServiceRequestService{repo: repo, logger: logger}
}

// Book files a new service request in the Requested state. The scheduled
// date is optional; an unparseable value is stored as null rather than
// rejecting the booking.
func (s *ServiceRequestService) Book(ctx context.Context, req *servicereq.BookRequest) (*servicereq.ServiceRequest, error) {
	if req.CustomerID <= 0 {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "customerId is required")
	}
	if strings.TrimSpace(req.ServiceType) == "" {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "serviceType is required")
	}

	sr := &servicereq.ServiceRequest{
		CustomerID:    req.CustomerID,
		ServiceType:   req.ServiceType,
		Status:        servicereq.StatusRequested,
		ScheduledDate: lenientDate(req.Date),
		Notes:         nullString(req.Notes),
	}

	if err := s.repo.Create(ctx, sr); err != nil {
		s.logger.Error("failed to book service", zap.Int64("customer_id", req.CustomerID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("service booked",
		zap.Int64("service_id", sr.ID),
		zap.Int64("customer_id", sr.CustomerID),
		zap.String("service_type", sr.ServiceType),
	)

	return sr, nil
}

// ListAll returns every request with customer and agent names joined in,
// for the admin console.
func (s *ServiceRequestService) ListAll(ctx context.Context) ([]servicereq.WithNames, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus overwrites the request's status and optionally assigns an
// agent. Transitions are not validated; the admin console is trusted.
func (s *ServiceRequestService) UpdateStatus(ctx context.Context, id int64, req *servicereq.UpdateStatusRequest) error {
	if strings.TrimSpace(req.Status) == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "status is required")
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status, req.AgentID); err != nil {
		return err
	}

	s.logger.Info("service status updated",
		zap.Int64("service_id", id),
		zap.String("status", req.Status),
	)
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func lenientDate(s string) sql.NullTime {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
