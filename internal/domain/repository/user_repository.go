package repository

import "github.com/jhoicas/usuarios-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
// companyID nil significa "sin empresa" (superadmin) y compara contra NULL,
// no contra cualquier empresa.
type UserRepository interface {
	// Create persiste un nuevo usuario. Devuelve domain.ErrEmailAlreadyExists
	// si el email viola la restricción única global.
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email string, companyID *string) (*entity.User, error)
	GetByIDAndCompany(id string, companyID *string) (*entity.User, error)
	// ListByCompany lista usuarios de una empresa con paginación.
	// Devuelve también el total para calcular páginas.
	ListByCompany(companyID *string, limit, offset int) ([]*entity.User, int, error)
	Update(user *entity.User) error
	Delete(id string) error
}
