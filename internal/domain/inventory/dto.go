// internal/domain/inventory/dto.go
package inventory

// Item is one element of the JSON-encoded inventory array attached to a
// visit. Dates arrive as YYYY-MM-DD strings and may be absent.
type Item struct {
	Type           string `json:"type"`
	Capacity       string `json:"capacity"`
	Quantity       int    `json:"quantity"`
	InstallDate    string `json:"install_date"`
	LastRefillDate string `json:"last_refill_date"`
	ExpiryDate     string `json:"expiry_date"`
	Condition      string `json:"condition"`
}

// AddRequest is a customer-initiated single extinguisher registration.
type AddRequest struct {
	CustomerID  int64  `json:"customerId" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Capacity    string `json:"capacity"`
	Quantity    int    `json:"quantity"`
	InstallDate string `json:"installDate"`
	ExpiryDate  string `json:"expiryDate"`
}
