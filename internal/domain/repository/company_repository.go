package repository

import "github.com/jhoicas/usuarios-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para empresas (tenants).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type CompanyRepository interface {
	// Create persiste una nueva empresa. Devuelve domain.ErrEmailAlreadyExists
	// si el email ya está registrado por otra empresa.
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByEmail(email string) (*entity.Company, error)
	// List devuelve empresas paginadas junto con el total.
	List(limit, offset int) ([]*entity.Company, int, error)
	Update(company *entity.Company) error
	Delete(id string) error
}
