// internal/domain/visit/entity.go
package visit

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/sawaidbasit2/aixosFire-backend/internal/domain/customer"
)

// StatusCompleted is the default and only modeled visit status.
const StatusCompleted = "Completed"

type Visit struct {
	ID         int64 `json:"id" db:"id"`
	AgentID    int64 `json:"agent_id" db:"agent_id"`
	CustomerID int64 `json:"customer_id" db:"customer_id"`

	// Snapshot of the customer at visit time so history survives later
	// edits or deletion of the customer record.
	CustomerName sql.NullString `json:"customer_name,omitempty" db:"customer_name"`
	BusinessType sql.NullString `json:"business_type,omitempty" db:"business_type"`

	VisitDate time.Time `json:"visit_date" db:"visit_date"`

	Notes                  sql.NullString `json:"notes,omitempty" db:"notes"`
	RiskAssessment         sql.NullString `json:"risk_assessment,omitempty" db:"risk_assessment"`
	ServiceRecommendations sql.NullString `json:"service_recommendations,omitempty" db:"service_recommendations"`
	FollowUpDate           sql.NullTime   `json:"follow_up_date,omitempty" db:"follow_up_date"`

	Status string `json:"status" db:"status"`

	// Public URLs of incidental photo attachments uploaded with the visit
	Photos pq.StringArray `json:"photos,omitempty" db:"photos"`
}

// AgentCustomer is a customer the agent has visited, tagged with the most
// recent visit date.
type AgentCustomer struct {
	customer.Customer
	LastVisit time.Time `json:"last_visit"`
}
