package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/usuarios-api/internal/application/usecase"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func sameCompanyID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
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

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(email string, companyID *string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && sameCompanyID(u.CompanyID, companyID) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDAndCompany(id string, companyID *string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || !sameCompanyID(u.CompanyID, companyID) {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ListByCompany(companyID *string, limit, offset int) ([]*entity.User, int, error) {
	matched := []*entity.User{}
	for _, id := range r.order {
		u := r.users[id]
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

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	order     []string
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
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

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, int, error) {
	total := len(r.order)
	if offset >= total {
		return []*entity.Company{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]*entity.Company, 0, end-offset)
	for _, id := range r.order[offset:end] {
		cp := *r.companies[id]
		out = append(out, &cp)
	}
	return out, total, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	if _, ok := r.companies[c.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeRoleRepo struct {
	roles  map[string]*entity.Role
	perms  map[string]entity.Permission
	grants map[string][]string // roleID -> permissionIDs
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		roles:  map[string]*entity.Role{},
		perms:  map[string]entity.Permission{},
		grants: map[string][]string{},
	}
}

func (r *fakeRoleRepo) ListRoles() ([]*entity.Role, error) {
	out := []*entity.Role{}
	for _, role := range r.roles {
		cp := *role
		cp.Permissions = nil
		for _, pid := range r.grants[role.ID] {
			cp.Permissions = append(cp.Permissions, r.perms[pid])
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRoleRepo) GetRoleByID(id string) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *fakeRoleRepo) ListPermissions() ([]entity.Permission, error) {
	out := []entity.Permission{}
	for _, p := range r.perms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRoleRepo) GetPermissionsByIDs(ids []string) ([]entity.Permission, error) {
	out := []entity.Permission{}
	for _, id := range ids {
		if p, ok := r.perms[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRoleRepo) SetRolePermissions(roleID string, permissionIDs []string) error {
	r.grants[roleID] = append([]string{}, permissionIDs...)
	return nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes, sin
// transacción real.
type fakeTxRunner struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	return fn(t.companies, t.users)
}
