// internal/domain/customer/dto.go
package customer

type RegisterRequest struct {
	BusinessName string `json:"business_name" binding:"required,max=255"`
	OwnerName    string `json:"owner_name" binding:"max=255"`
	Email        string `json:"email" binding:"omitempty,email,max=255"`
	Password     string `json:"password" binding:"required,min=6"`
	Phone        string `json:"phone" binding:"max=20"`
	Address      string `json:"address"`
	BusinessType string `json:"business_type" binding:"max=255"`
}

// ResolveRequest is the business-profile bundle handed to customer
// resolution when a visit is logged. CustomerID wins when set; otherwise
// BusinessName is required and a Lead record is created.
type ResolveRequest struct {
	CustomerID   int64
	BusinessName string
	OwnerName    string
	Email        string
	Phone        string
	Address      string
	BusinessType string
}

// Resolution is the outcome of customer resolution: a concrete customer id
// plus any non-fatal warnings collected along the way (QR generation or
// URL backfill failures).
type Resolution struct {
	CustomerID int64
	Created    bool
	Warnings   []string
}

type UpdateLocationRequest struct {
	ID  int64   `json:"id" binding:"required"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
