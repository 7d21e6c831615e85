// internal/domain/customer/entity.go
package customer

import (
	"database/sql"
	"time"
)

// Customer lifecycle statuses. Lead customers are auto-created during a field
// visit with no matched record; Active customers registered themselves.
const (
	StatusActive   = "Active"
	StatusLead     = "Lead"
	StatusInactive = "Inactive"
)

type Customer struct {
	ID           int64          `json:"id" db:"id"`
	BusinessName string         `json:"business_name" db:"business_name"`
	OwnerName    sql.NullString `json:"owner_name,omitempty" db:"owner_name"`

	// Unique when present; placeholder-synthesized when the caller omitted it
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password"`

	Phone        sql.NullString `json:"phone,omitempty" db:"phone"`
	Address      sql.NullString `json:"address,omitempty" db:"address"`
	BusinessType sql.NullString `json:"business_type,omitempty" db:"business_type"`

	Status string `json:"status" db:"status"`

	LocationLat sql.NullFloat64 `json:"location_lat,omitempty" db:"location_lat"`
	LocationLng sql.NullFloat64 `json:"location_lng,omitempty" db:"location_lng"`

	QRCodeURL sql.NullString `json:"qr_code_url,omitempty" db:"qr_code_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// QRPayload is the structured content encoded into a customer's QR image.
// The shape is load-bearing: deployed scanner apps parse exactly these keys.
type QRPayload struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
