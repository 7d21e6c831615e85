// internal/domain/servicereq/dto.go
package servicereq

type BookRequest struct {
	CustomerID  int64  `json:"customerId" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	AgentID *int64 `json:"agentId"`
}
