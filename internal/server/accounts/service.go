package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SinaFr/todolist-backend/internal/common"
	"github.com/SinaFr/todolist-backend/internal/server/auth"
	"github.com/SinaFr/todolist-backend/internal/server/models"
)

// Service implements account lifecycle operations: signup, login,
// profile/password updates, and deletion. Password plaintext never leaves
// this layer; only bcrypt hashes reach the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Signup creates a new account with a freshly hashed password. A username
// already held by another account yields common.ErrorUsernameTaken.
func (s *Service) Signup(ctx context.Context, account *models.Account, password string) (*models.Account, error) {

	exists, err := s.repo.UsernameExists(ctx, account.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, common.ErrorUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	account.PasswordHash = hash

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return created, nil
}

// Login verifies the given credentials. Unknown usernames and wrong
// passwords are indistinguishable to the caller: both yield
// common.ErrorInvalidCredentials.
func (s *Service) Login(ctx context.Context, username string, password string) (*models.Account, error) {

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	return account, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) List(ctx context.Context) ([]*models.Account, error) {
	return s.repo.List(ctx)
}

// UsernameAvailable reports whether no account currently holds username.
func (s *Service) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	exists, err := s.repo.UsernameExists(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// Update overwrites name, username and email of the stored account and
// re-hashes the password only when a non-blank one is supplied.
// usernameChanged reports whether the stored username differed from the
// incoming one, so the transport layer can re-issue the session cookie (the
// token's only claim is the username).
func (s *Service) Update(ctx context.Context, id int64, in *models.Account, password string) (account *models.Account, usernameChanged bool, err error) {

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	usernameChanged = existing.Username != in.Username

	existing.Name = in.Name
	existing.Username = in.Username
	existing.Email = in.Email

	if strings.TrimSpace(password) != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, false, common.ErrorInternal
		}
		existing.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, false, err
	}

	return existing, usernameChanged, nil
}

// Delete removes the account and returns the deleted record, so the caller
// can compare its username against the acting principal's.
func (s *Service) Delete(ctx context.Context, id int64) (*models.Account, error) {

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return account, nil
}
