// internal/domain/agent/dto.go
package agent

type RegisterRequest struct {
	Name          string `form:"name" binding:"required,max=255"`
	Email         string `form:"email" binding:"required,email,max=255"`
	Password      string `form:"password" binding:"required,min=6"`
	Phone         string `form:"phone" binding:"required,max=20"`
	CNIC          string `form:"cnic" binding:"max=20"`
	Territory     string `form:"territory" binding:"max=255"`
	TermsAccepted bool   `form:"terms_accepted"`
}

type UpdateLocationRequest struct {
	ID  int64   `json:"id" binding:"required"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MonthlyStat struct {
	Name     string `json:"name"`
	Visits   int    `json:"visits"`
	Earnings int    `json:"earnings"`
}

type Stats struct {
	TotalVisits int64         `json:"totalVisits"`
	Conversions int64         `json:"conversions"`
	Earnings    int64         `json:"earnings"`
	ChartData   []MonthlyStat `json:"chartData"`
}
