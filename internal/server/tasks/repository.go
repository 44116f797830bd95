// Package tasks contains persistence and business logic for per-account tasks.
package tasks

import (
	"context"

	"github.com/SinaFr/todolist-backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	ListByAccount(ctx context.Context, accountID int64) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
}
