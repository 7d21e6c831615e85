// internal/domain/visit/dto.go
package visit

// LogRequest is the multipart/form body of a visit-logging call. CustomerID
// is trusted as-is when supplied; otherwise BusinessName is required and a
// Lead customer is created on the fly.
type LogRequest struct {
	AgentID    int64 `form:"agent_id" binding:"required"`
	CustomerID int64 `form:"customer_id"`

	BusinessName string `form:"business_name"`
	OwnerName    string `form:"owner_name"`
	Email        string `form:"email"`
	Phone        string `form:"phone"`
	Address      string `form:"address"`
	BusinessType string `form:"business_type"`

	Notes                  string `form:"notes"`
	RiskAssessment         string `form:"risk_assessment"`
	ServiceRecommendations string `form:"service_recommendations"`
	FollowUpDate           string `form:"follow_up_date"`

	// JSON-encoded array of inventory items; best-effort, untrusted
	Inventory string `form:"inventory"`
}

// LogResult separates the primary outcome (the visit) from non-fatal
// warnings raised on best-effort paths (QR, inventory). Warnings are for the
// caller's logging layer; they never change the success response.
type LogResult struct {
	VisitID     int64
	CustomerID  int64
	LeadCreated bool
	Warnings    []string
}
