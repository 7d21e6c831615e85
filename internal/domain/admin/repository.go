// internal/domain/admin/repository.go
package admin

import "context"

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
