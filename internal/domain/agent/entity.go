// internal/domain/agent/entity.go
package agent

import (
	"database/sql"
	"time"
)

// Agent lifecycle statuses. A new registration starts Pending and only moves
// via admin action.
const (
	StatusPending   = "Pending"
	StatusActive    = "Active"
	StatusSuspended = "Suspended"
)

type Agent struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`

	PasswordHash string `json:"-" db:"password"`

	Phone     sql.NullString `json:"phone,omitempty" db:"phone"`
	CNIC      sql.NullString `json:"cnic,omitempty" db:"cnic"`
	Territory sql.NullString `json:"territory,omitempty" db:"territory"`

	Status string `json:"status" db:"status"`

	ProfilePhoto  sql.NullString `json:"profile_photo,omitempty" db:"profile_photo"`
	CNICDocument  sql.NullString `json:"cnic_document,omitempty" db:"cnic_document"`
	TermsAccepted bool           `json:"terms_accepted" db:"terms_accepted"`

	CommissionRate float64 `json:"commission_rate" db:"commission_rate"`

	// Last known geolocation, updated from the field app
	LocationLat sql.NullFloat64 `json:"location_lat,omitempty" db:"location_lat"`
	LocationLng sql.NullFloat64 `json:"location_lng,omitempty" db:"location_lng"`
	LastActive  sql.NullTime    `json:"last_active,omitempty" db:"last_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
