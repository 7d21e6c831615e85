// internal/domain/inventory/entity.go
package inventory

import "database/sql"

// Extinguisher statuses. Items are always written Valid at creation; the
// Expired transition is owned by a later reconciliation, not this service.
const (
	StatusValid   = "Valid"
	StatusExpired = "Expired"
)

type Extinguisher struct {
	ID         int64         `json:"id" db:"id"`
	CustomerID int64         `json:"customer_id" db:"customer_id"`
	VisitID    sql.NullInt64 `json:"visit_id,omitempty" db:"visit_id"`

	Type     string         `json:"type" db:"type"`
	Capacity sql.NullString `json:"capacity,omitempty" db:"capacity"`
	Quantity int            `json:"quantity" db:"quantity"`

	InstallDate    sql.NullTime `json:"install_date,omitempty" db:"install_date"`
	LastRefillDate sql.NullTime `json:"last_refill_date,omitempty" db:"last_refill_date"`
	ExpiryDate     sql.NullTime `json:"expiry_date,omitempty" db:"expiry_date"`

	Condition sql.NullString `json:"condition,omitempty" db:"condition"`
	Status    string         `json:"status" db:"status"`

	CertificatePhoto  sql.NullString `json:"certificate_photo,omitempty" db:"certificate_photo"`
	ExtinguisherPhoto sql.NullString `json:"extinguisher_photo,omitempty" db:"extinguisher_photo"`
}
