package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/usuarios-api/internal/application/auth"
	"github.com/jhoicas/usuarios-api/internal/application/usecase"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	apphttp "github.com/jhoicas/usuarios-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/usuarios-api/pkg/jwt"
	"github.com/jhoicas/usuarios-api/pkg/password"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "usuarios-api-test"
)

func strPtr(s string) *string { return &s }

func sameCompanyID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
	order []string
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	r.order = append(r.order, u.ID)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmailAndCompany(email string, companyID *string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && sameCompanyID(u.CompanyID, companyID) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByIDAndCompany(id string, companyID *string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || !sameCompanyID(u.CompanyID, companyID) {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) ListByCompany(companyID *string, limit, offset int) ([]*entity.User, int, error) {
	matched := []*entity.User{}
	for _, id := range r.order {
		u, ok := r.users[id]
		if !ok {
			continue
		}
		if sameCompanyID(u.CompanyID, companyID) {
			cp := *u
			matched = append(matched, &cp)
		}
	}
	total := len(matched)
	if offset >= total {
		return []*entity.User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
	order     []string
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	for _, existing := range r.companies {
		if existing.Email == c.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *c
	r.companies[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCompanyRepo) List(limit, offset int) ([]*entity.Company, int, error) {
	alive := []*entity.Company{}
	for _, id := range r.order {
		if c, ok := r.companies[id]; ok {
			cp := *c
			alive = append(alive, &cp)
		}
	}
	total := len(alive)
	if offset >= total {
		return []*entity.Company{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return alive[offset:end], total, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

type memRoleRepo struct {
	roles  map[string]*entity.Role
	perms  map[string]entity.Permission
	grants map[string][]string
}

func (r *memRoleRepo) ListRoles() ([]*entity.Role, error) {
	out := []*entity.Role{}
	for _, role := range r.roles {
		cp := *role
		cp.Permissions = nil
		for _, pid := range r.grants[role.ID] {
			cp.Permissions = append(cp.Permissions, r.perms[pid])
		}
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memRoleRepo) GetRoleByID(id string) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *memRoleRepo) ListPermissions() ([]entity.Permission, error) {
	out := []entity.Permission{}
	for _, p := range r.perms {
		out = append(out, p)
	}
	return out, nil
}

func (r *memRoleRepo) GetPermissionsByIDs(ids []string) ([]entity.Permission, error) {
	out := []entity.Permission{}
	for _, id := range ids {
		if p, ok := r.perms[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memRoleRepo) SetRolePermissions(roleID string, permissionIDs []string) error {
	r.grants[roleID] = append([]string{}, permissionIDs...)
	return nil
}

type memTxRunner struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
}

func (t *memTxRunner) Run(ctx context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	return fn(t.companies, t.users)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de test con datos sembrados
// ──────────────────────────────────────────────────────────────────────────────

// testEnv aplicación Fiber completa (router + error handler) sobre fakes.
//
// Datos sembrados:
//   - superadmin  sa   admin@admin.com   (sin empresa)
//   - empresa c1 "Acme"  con admin ca1 (isCompanyAdmin) y usuario u1
//   - empresa c2 "Otra"  con usuario u2
//   - usuario inactivo ui en c1
//
// Todas las contraseñas sembradas son "secreto1".
type testEnv struct {
	app       *fiber.App
	users     *memUserRepo
	companies *memCompanyRepo
	roles     *memRoleRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hash, err := password.Hash("secreto1")
	require.NoError(t, err)

	users := &memUserRepo{users: map[string]*entity.User{}}
	companies := &memCompanyRepo{companies: map[string]*entity.Company{}}
	roles := &memRoleRepo{
		roles:  map[string]*entity.Role{},
		perms:  map[string]entity.Permission{},
		grants: map[string][]string{},
	}

	require.NoError(t, companies.Create(&entity.Company{
		ID: "c1", Name: "Acme S.A.", Email: "contacto@acme.com", PasswordHash: hash, Active: true,
	}))
	require.NoError(t, companies.Create(&entity.Company{
		ID: "c2", Name: "Otra S.A.", Email: "contacto@otra.com", PasswordHash: hash, Active: true,
	}))

	seed := []*entity.User{
		{ID: "sa", Name: "Super Admin", Email: "admin@admin.com", PasswordHash: hash,
			Role: entity.RoleSuperAdmin, Active: true},
		{ID: "ca1", Name: "Ana Admin", Email: "ana@acme.com", PasswordHash: hash,
			Role: entity.RoleAdmin, IsCompanyAdmin: true, Active: true, CompanyID: strPtr("c1")},
		{ID: "u1", Name: "Beto", Email: "beto@acme.com", PasswordHash: hash,
			Role: entity.RoleUser, Active: true, CompanyID: strPtr("c1")},
		{ID: "u2", Name: "Carla", Email: "carla@otra.com", PasswordHash: hash,
			Role: entity.RoleUser, Active: true, CompanyID: strPtr("c2")},
		{ID: "ui", Name: "Inactivo", Email: "inactivo@acme.com", PasswordHash: hash,
			Role: entity.RoleUser, Active: false, CompanyID: strPtr("c1")},
	}
	for _, u := range seed {
		require.NoError(t, users.Create(u))
	}

	roles.roles["r-admin"] = &entity.Role{ID: "r-admin", Name: entity.RoleAdmin}
	roles.perms["p-users"] = entity.Permission{ID: "p-users", Name: entity.PermManageUsers}
	roles.perms["p-reports"] = entity.Permission{ID: "p-reports", Name: entity.PermViewReports}

	jwtCfg := auth.JWTConfig{Secret: testSecret, ExpirationHours: 24, Issuer: testIssuer}

	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.NewErrorHandler(zerolog.Nop(), "test"),
	})
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC: usecase.NewCompanyUseCase(companies, &memTxRunner{companies: companies, users: users}),
		UserUC:    usecase.NewUserUseCase(users),
		RoleUC:    usecase.NewRoleUseCase(roles),
		AuthUC:    auth.NewUseCase(users, companies, jwtCfg),
		UserRepo:  users,
		JWTSecret: testSecret,
	})

	return &testEnv{app: app, users: users, companies: companies, roles: roles}
}

// tokenFor genera un Bearer token para un usuario sembrado. El middleware
// recarga el usuario vivo, así que basta con el ID en los claims.
func (e *testEnv) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	u := e.users.users[userID]
	require.NotNil(t, u, "el usuario %s debe estar sembrado", userID)

	tok, err := pkgjwt.Generate(testSecret, testIssuer, 24, pkgjwt.Claims{
		UserID:         u.ID,
		Email:          u.Email,
		Role:           u.Role,
		CompanyID:      u.CompanyID,
		IsCompanyAdmin: u.IsCompanyAdmin,
	})
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
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

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
