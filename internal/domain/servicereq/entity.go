// internal/domain/servicereq/entity.go
package servicereq

import (
	"database/sql"
	"time"
)

// Service request statuses. Transitions are caller-driven overwrites with no
// guard against illegal jumps; that permissiveness is the existing contract.
const (
	StatusRequested  = "Requested"
	StatusScheduled  = "Scheduled"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

type ServiceRequest struct {
	ID         int64         `json:"id" db:"id"`
	CustomerID int64         `json:"customer_id" db:"customer_id"`
	AgentID    sql.NullInt64 `json:"agent_id,omitempty" db:"agent_id"`

	ServiceType string `json:"service_type" db:"service_type"`
	Status      string `json:"status" db:"status"`

	RequestDate   time.Time    `json:"request_date" db:"request_date"`
	ScheduledDate sql.NullTime `json:"scheduled_date,omitempty" db:"scheduled_date"`
	CompletedDate sql.NullTime `json:"completed_date,omitempty" db:"completed_date"`

	Amount     float64        `json:"amount" db:"amount"`
	Commission float64        `json:"commission" db:"commission"`
	Notes      sql.NullString `json:"notes,omitempty" db:"notes"`
}

// WithNames is a service request joined with the customer and agent display
// names for admin listings.
type WithNames struct {
	ServiceRequest
	BusinessName sql.NullString `json:"business_name"`
	AgentName    sql.NullString `json:"agent_name"`
}
