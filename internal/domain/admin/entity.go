// internal/domain/admin/entity.go
package admin

import "database/sql"

// Admin is the single privileged role. No status lifecycle.
type Admin struct {
	ID           int64          `json:"id" db:"id"`
	Email        string         `json:"email" db:"email"`
	PasswordHash string         `json:"-" db:"password"`
	Name         sql.NullString `json:"name,omitempty" db:"name"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalAgents    int64          `json:"totalAgents"`
	PendingAgents  int64          `json:"pendingAgents"`
	TotalCustomers int64          `json:"totalCustomers"`
	TotalServices  int64          `json:"totalServices"`
	RevenueChart   []RevenuePoint `json:"revenueChart"`
}

type RevenuePoint struct {
	Name     string `json:"name"`
	Revenue  int    `json:"revenue"`
	Services int    `json:"services"`
}
