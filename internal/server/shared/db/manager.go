// Package db wires the PostgreSQL connection, the repositories built on it,
// and the startup schema migrations.
package db

import (
	"context"
	"database/sql"

	"github.com/SinaFr/todolist-backend/internal/server/accounts"
	"github.com/SinaFr/todolist-backend/internal/server/tasks"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Accounts() accounts.Repository
	Tasks() tasks.Repository
}
