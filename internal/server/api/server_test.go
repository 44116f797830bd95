package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SinaFr/todolist-backend/internal/common"
	"github.com/SinaFr/todolist-backend/internal/logging"
	"github.com/SinaFr/todolist-backend/internal/server/accounts"
	"github.com/SinaFr/todolist-backend/internal/server/auth"
	"github.com/SinaFr/todolist-backend/internal/server/config"
	"github.com/SinaFr/todolist-backend/internal/server/models"
	"github.com/SinaFr/todolist-backend/internal/server/tasks"
)

const testSecret = "test-secret"

// --- in-memory repositories ---

type memAccountRepo struct {
	byID   map[int64]*models.Account
	nextID int64
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byID: map[int64]*models.Account{}, nextID: 1}
}

func (m *memAccountRepo) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	stored := *account
	stored.ID = m.nextID
	m.nextID++
	m.byID[stored.ID] = &stored
	return &stored, nil
}

func (m *memAccountRepo) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	if a, ok := m.byID[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, common.ErrorNotFound
}

func (m *memAccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	for _, a := range m.byID {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memAccountRepo) List(ctx context.Context) ([]*models.Account, error) {
	out := []*models.Account{}
	for _, a := range m.byID {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memAccountRepo) Update(ctx context.Context, account *models.Account) error {
	if _, ok := m.byID[account.ID]; !ok {
		return common.ErrorNotFound
	}
	stored := *account
	m.byID[account.ID] = &stored
	return nil
}

func (m *memAccountRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memAccountRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	return false, nil
}

type memTaskRepo struct {
	byID   map[int64]*models.Task
	nextID int64
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{byID: map[int64]*models.Task{}, nextID: 1}
}

func (m *memTaskRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	stored := *task
	stored.ID = m.nextID
	m.nextID++
	m.byID[stored.ID] = &stored
	return &stored, nil
}

func (m *memTaskRepo) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	if task, ok := m.byID[id]; ok {
		copied := *task
		return &copied, nil
	}
	return nil, common.ErrorNotFound
}

func (m *memTaskRepo) ListByAccount(ctx context.Context, accountID int64) ([]*models.Task, error) {
	out := []*models.Task{}
	for _, task := range m.byID {
		if task.AccountID == accountID {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memTaskRepo) Update(ctx context.Context, task *models.Task) error {
	if _, ok := m.byID[task.ID]; !ok {
		return common.ErrorNotFound
	}
	stored := *task
	m.byID[task.ID] = &stored
	return nil
}

func (m *memTaskRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(m.byID, id)
	return nil
}

// --- test server ---

type testEnv struct {
	server      *Server
	accountRepo *memAccountRepo
	taskRepo    *memTaskRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		EndpointAddr:          ":0",
		SecretKey:             testSecret,
		SessionCookieLifetime: time.Hour,
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	accountRepo := newMemAccountRepo()
	taskRepo := newMemTaskRepo()

	accountService := accounts.NewService(accountRepo)
	taskService := tasks.NewService(taskRepo, accountRepo)

	return &testEnv{
		server:      NewServer(cfg, logger, accountService, taskService),
		accountRepo: accountRepo,
		taskRepo:    taskRepo,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

// signupAndLogin creates an account and returns its session cookie.
func (e *testEnv) signupAndLogin(t *testing.T, username, password string) *http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/signup",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup for %q: status %d, body %s", username, rec.Code, rec.Body.String())
	}

	rec = e.do(t, http.MethodPost, "/login",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login for %q: status %d, body %s", username, rec.Code, rec.Body.String())
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("login for %q returned no session cookie", username)
	}
	return cookie
}

// jsonFieldEquals decodes body as a JSON object and reports whether the
// named field equals want.
func jsonFieldEquals(t *testing.T, body []byte, field string, want any) bool {
	t.Helper()

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("invalid json body %q: %v", body, err)
	}
	return parsed[field] == want
}

// sessionCookie returns the last jwt cookie set on the response, nil if none.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			found = c
		}
	}
	return found
}
