package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/SinaFr/todolist-backend/internal/common"
	"github.com/SinaFr/todolist-backend/internal/server/accounts"
	"github.com/SinaFr/todolist-backend/internal/server/models"
)

// Service implements task operations. Ownership is enforced only at
// creation: a new task is always attached to the account of the principal
// who creates it. Reads, updates and deletes by task id are not scoped to
// the owner.
type Service struct {
	repo     Repository
	accounts accounts.Repository
}

func NewService(repo Repository, accountRepo accounts.Repository) *Service {
	return &Service{repo: repo, accounts: accountRepo}
}

// ListForAccount returns the tasks owned by the given account. A missing
// account yields common.ErrorNotFound.
func (s *Service) ListForAccount(ctx context.Context, accountID int64) ([]*models.Task, error) {

	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return s.repo.ListByAccount(ctx, accountID)
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

// Create resolves the principal's username to its account and attaches the
// new task to it, overriding any account id in the input. A username with no
// matching account yields common.ErrorUnauthorized.
func (s *Service) Create(ctx context.Context, principalUsername string, task *models.Task) (*models.Task, error) {

	account, err := s.accounts.GetByUsername(ctx, principalUsername)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error resolving account: %w", err)
	}

	task.AccountID = account.ID

	return s.repo.Create(ctx, task)
}

// Update overwrites the mutable fields of the stored task. The owning
// account id is kept as is.
func (s *Service) Update(ctx context.Context, id int64, in *models.Task) (*models.Task, error) {

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Priority = in.Priority
	existing.TerminationDate = in.TerminationDate
	existing.IsDone = in.IsDone

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
