// Package accounts contains persistence and business logic for user accounts.
package accounts

import (
	"context"

	"github.com/SinaFr/todolist-backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}
