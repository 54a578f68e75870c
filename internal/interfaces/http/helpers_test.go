package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/quimicos-inventario/internal/application/auth"
	"github.com/jhoicas/quimicos-inventario/internal/application/dto"
	appinventory "github.com/jhoicas/quimicos-inventario/internal/application/inventory"
	"github.com/jhoicas/quimicos-inventario/internal/application/usecase"
	"github.com/jhoicas/quimicos-inventario/internal/domain"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/internal/domain/repository"
	apphttp "github.com/jhoicas/quimicos-inventario/internal/interfaces/http"
	"github.com/jhoicas/quimicos-inventario/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	mu    sync.Mutex
	users map[string]entity.User // por email
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.users[u.Email] = *u
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

type memProducts struct {
	mu       sync.Mutex
	products map[string]entity.Product
}

func (r *memProducts) find(pred func(entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.products {
		if pred(p) {
			cp := p
			out = append(out, &cp)
		}
	}
	return out
}

func (r *memProducts) one(id string) *entity.Product {
	if p, ok := r.products[id]; ok {
		return &p
	}
	return nil
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.find(func(o entity.Product) bool { return o.Code == p.Code })) > 0 {
		return domain.ErrDuplicate
	}
	r.products[p.ID] = *p
	return nil
}

func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.one(id), nil
}

func (r *memProducts) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProducts) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if found := r.find(func(o entity.Product) bool { return o.Code == code }); len(found) > 0 {
		return found[0], nil
	}
	return nil, nil
}

func (r *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := strings.ToLower(f.Search)
	out := r.find(func(p entity.Product) bool {
		if f.Category != nil && p.Category != *f.Category {
			return false
		}
		if f.Active != nil && p.Active != *f.Active {
			return false
		}
		return s == "" || strings.Contains(strings.ToLower(p.Name+" "+p.Description+" "+p.Code), s)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProducts) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.find(func(p entity.Product) bool { return p.Active && p.Stock <= p.MinStock })
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *memProducts) mutate(id string, fn func(p *entity.Product) error) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.one(id)
	if p == nil {
		return nil, nil
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	r.products[id] = *p
	return p, nil
}

func (r *memProducts) SetStock(_ context.Context, id string, stock int, at time.Time) (*entity.Product, error) {
	return r.mutate(id, func(p *entity.Product) error {
		p.Stock, p.UpdatedAt = stock, at
		return nil
	})
}

func (r *memProducts) ApplyStockDelta(_ context.Context, id string, delta int, at time.Time) (*entity.Product, error) {
	return r.mutate(id, func(p *entity.Product) error {
		if p.Stock+delta < 0 {
			return &domain.InsufficientStockError{Current: p.Stock, Requested: -delta}
		}
		p.Stock, p.UpdatedAt = p.Stock+delta, at
		return nil
	})
}

func (r *memProducts) SetActive(_ context.Context, id string, active bool, at time.Time) (*entity.Product, error) {
	return r.mutate(id, func(p *entity.Product) error {
		p.Active, p.UpdatedAt = active, at
		return nil
	})
}

type memTx struct{ repo *memProducts }

func (t memTx) Run(_ context.Context, fn func(repo repository.ProductRepository) error) error {
	return fn(t.repo)
}

type fakePDF struct{}

func (fakePDF) GenerateInventoryReport(context.Context, appinventory.Report) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "quimicos-test"
)

type testEnv struct {
	app      *fiber.App
	products *memProducts
	users    *memUsers
	authUC   *auth.AuthUseCase
}

func newTestEnv(t *testing.T, loginLimit int) *testEnv {
	t.Helper()
	users := &memUsers{users: map[string]entity.User{}}
	products := &memProducts{products: map[string]entity.Product{}}

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}).
		WithBcryptCost(bcrypt.MinCost)
	log := logger.Nop()

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      usecase.NewProductUseCase(products, memTx{repo: products}),
		InventoryUC:    appinventory.NewInventoryUseCase(products, fakePDF{}, 5),
		Gate:           auth.NewGate(testJWTSecret),
		Logger:         log,
		LoginRateLimit: loginLimit,
	})
	return &testEnv{app: app, products: products, users: users, authUC: authUC}
}

// tokenFor registra un usuario con el rol indicado y devuelve "Bearer <token>".
func (e *testEnv) tokenFor(t *testing.T, role string) string {
	t.Helper()
	out, err := e.authUC.Register(context.Background(), registerReq(role))
	require.NoError(t, err)
	return "Bearer " + out.Token
}

func (e *testEnv) do(t *testing.T, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

var userSeq atomic.Int64

func registerReq(role string) dto.RegisterRequest {
	n := userSeq.Add(1)
	return dto.RegisterRequest{
		Name:     "Usuario " + role,
		Email:    fmt.Sprintf("%s%d@quimicos.co", role, n),
		Password: "secreto1",
		Role:     role,
	}
}
