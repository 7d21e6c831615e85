// internal/domain/customer/repository.go
package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)

	// Search matches business name or phone, for agent-side autocomplete.
	Search(ctx context.Context, query string, limit int) ([]Customer, error)

	// UpdateQRCodeURL is a partial update scoped to qr_code_url only.
	UpdateQRCodeURL(ctx context.Context, id int64, url string) error

	UpdateLocation(ctx context.Context, id int64, lat, lng float64) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	List(ctx context.Context) ([]Customer, error)
	Count(ctx context.Context) (int64, error)
}
