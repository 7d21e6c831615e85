// internal/service/visit/visit.go
package visit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/inventory"
	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/visit"
)

// CustomerResolver turns a visit submission into a concrete customer id,
// creating a lead when none is supplied.
type CustomerResolver interface {
	ResolveForVisit(ctx context.Context, req *customer.ResolveRequest) (*customer.Resolution, error)
}

type VisitService struct {
	visitRepo     visit.Repository
	inventoryRepo inventory.Repository
	customers     CustomerResolver
	logger        *zap.Logger
}

func NewVisitService(
	visitRepo visit.Repository,
	inventoryRepo inventory.Repository,
	customers CustomerResolver,
	logger *zap.Logger,
) *VisitService {
	return &VisitService{
		visitRepo:     visitRepo,
		inventoryRepo: inventoryRepo,
		customers:     customers,
		logger:        logger,
	}
}

// LogVisit records a field visit. Customer resolution and the visit insert
// are the fatal steps; everything after the visit row exists (inventory
// parsing and the batch insert) only degrades the result with warnings.
func (s *VisitService) LogVisit(ctx context.Context, req *visit.LogRequest, photoURLs []string) (*visit.LogResult, error) {
	res, err := s.customers.ResolveForVisit(ctx, &customer.ResolveRequest{
		CustomerID:   req.CustomerID,
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		BusinessType: req.BusinessType,
	})
	if err != nil {
		return nil, err
	}

	result := &visit.LogResult{
		CustomerID:  res.CustomerID,
		LeadCreated: res.Created,
		Warnings:    res.Warnings,
	}

	followUp, warn := parseFollowUp(req.FollowUpDate)
	if warn != "" {
		result.Warnings = append(result.Warnings, warn)
	}

	v := &visit.Visit{
		AgentID:                req.AgentID,
		CustomerID:             res.CustomerID,
		CustomerName:           nullString(req.BusinessName),
		BusinessType:           nullString(req.BusinessType),
		Notes:                  nullString(req.Notes),
		RiskAssessment:         nullString(req.RiskAssessment),
		ServiceRecommendations: nullString(req.ServiceRecommendations),
		FollowUpDate:           followUp,
		Status:                 visit.StatusCompleted,
		Photos:                 pq.StringArray(photoURLs),
	}

	if err := s.visitRepo.Create(ctx, v); err != nil {
		s.logger.Error("failed to record visit",
			zap.Int64("agent_id", req.AgentID),
			zap.Int64("customer_id", res.CustomerID),
			zap.Error(err),
		)
		return nil, err
	}

	result.VisitID = v.ID

	if strings.TrimSpace(req.Inventory) != "" {
		if warn := s.recordInventory(ctx, res.CustomerID, v.ID, req.Inventory); warn != "" {
			result.Warnings = append(result.Warnings, warn)
		}
	}

	s.logger.Info("visit recorded",
		zap.Int64("visit_id", v.ID),
		zap.Int64("agent_id", req.AgentID),
		zap.Int64("customer_id", res.CustomerID),
		zap.Bool("lead_created", res.Created),
	)

	return result, nil
}

// recordInventory translates the raw inventory payload into extinguisher
// rows and inserts them as one all-or-nothing batch. Any parse or insert
// problem drops the whole batch and comes back as a warning string.
func (s *VisitService) recordInventory(ctx context.Context, customerID, visitID int64, raw string) string {
	var items []inventory.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("inventory payload is not valid JSON",
			zap.Int64("visit_id", visitID),
			zap.Error(err),
		)
		return fmt.Sprintf("inventory skipped: %v", err)
	}

	rows := make([]inventory.Extinguisher, 0, len(items))
	for i, item := range items {
		install, err := optionalDate(item.InstallDate)
		if err != nil {
			return fmt.Sprintf("inventory skipped: item %d has invalid installDate", i)
		}
		refill, err := optionalDate(item.LastRefillDate)
		if err != nil {
			return fmt.Sprintf("inventory skipped: item %d has invalid lastRefillDate", i)
		}
		expiry, err := optionalDate(item.ExpiryDate)
		if err != nil {
			return fmt.Sprintf("inventory skipped: item %d has invalid expiryDate", i)
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		rows = append(rows, inventory.Extinguisher{
			CustomerID:     customerID,
			VisitID:        sql.NullInt64{Int64: visitID, Valid: true},
			Type:           item.Type,
			Capacity:       nullString(item.Capacity),
			Quantity:       quantity,
			InstallDate:    install,
			LastRefillDate: refill,
			ExpiryDate:     expiry,
			Condition:      nullString(item.Condition),
			Status:         inventory.StatusValid,
		})
	}

	if len(rows) == 0 {
		return ""
	}

	if err := s.inventoryRepo.CreateBatch(ctx, rows); err != nil {
		s.logger.Warn("inventory batch insert failed",
			zap.Int64("visit_id", visitID),
			zap.Int("items", len(rows)),
			zap.Error(err),
		)
		return fmt.Sprintf("inventory not saved: %v", err)
	}

	return ""
}

func parseFollowUp(raw string) (sql.NullTime, string) {
	if strings.TrimSpace(raw) == "" {
		return sql.NullTime{}, ""
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return sql.NullTime{}, fmt.Sprintf("follow_up_date ignored: %q is not a valid date", raw)
	}
	return sql.NullTime{Time: t, Valid: true}, ""
}

// optionalDate treats empty as null but rejects malformed values.
func optionalDate(raw string) (sql.NullTime, error) {
	if strings.TrimSpace(raw) == "" {
		return sql.NullTime{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
