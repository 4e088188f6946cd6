package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/pkg/password"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; el registro de empresa lo usa para que
// empresa y admin se creen como una unidad (falla uno, no queda ninguno).
type TxRunner interface {
	Run(ctx context.Context, fn func(companies repository.CompanyRepository, users repository.UserRepository) error) error
}

// CompanyUseCase reglas de negocio para empresas (tenants).
type CompanyUseCase struct {
	companies repository.CompanyRepository
	tx        TxRunner
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository, tx TxRunner) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, tx: tx}
}

// Register crea una empresa junto con su primer usuario administrador
// (role admin, isCompanyAdmin true) dentro de una sola transacción.
// Devuelve domain.ErrEmailAlreadyExists si el email de la empresa o el del
// admin ya están registrados.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	existing, err := uc.companies.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	companyHash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	adminHash, err := password.Hash(in.AdminPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: companyHash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	admin := &entity.User{
		ID:             uuid.New().String(),
		Name:           in.AdminName,
		Email:          in.AdminEmail,
		PasswordHash:   adminHash,
		Role:           entity.RoleAdmin,
		IsCompanyAdmin: true,
		Active:         true,
		CompanyID:      &company.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.tx.Run(ctx, func(companies repository.CompanyRepository, users repository.UserRepository) error {
		if err := companies.Create(company); err != nil {
			return err
		}
		return users.Create(admin)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterCompanyResponse{
		Message: "empresa creada exitosamente",
		Company: dto.CompanySummary{ID: company.ID, Name: company.Name, Email: company.Email},
		Admin:   dto.UserSummary{ID: admin.ID, Name: admin.Name, Email: admin.Email, Role: admin.Role},
	}, nil
}

// List lista empresas con paginación estilo page/limit.
func (uc *CompanyUseCase) List(page, limit int) (*dto.CompanyListResponse, error) {
	offset := (page - 1) * limit
	list, total, err := uc.companies.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Companies:  items,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrCompanyNotFound si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// Update actualiza nombre, email o estado activo. Si cambia el email,
// verifica que no esté en uso por otra empresa.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	if in.Email != nil && *in.Email != company.Email {
		existing, err := uc.companies.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		company.Email = *in.Email
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Active != nil {
		company.Active = *in.Active
	}
	company.UpdatedAt = time.Now()

	if err := uc.companies.Update(company); err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// Delete elimina una empresa (hard delete, sin tombstone).
func (uc *CompanyUseCase) Delete(id string) error {
	company, err := uc.companies.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}
	return uc.companies.Delete(id)
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}
