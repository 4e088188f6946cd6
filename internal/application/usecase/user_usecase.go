package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/pkg/password"
)

// UserUseCase reglas de negocio para usuarios. Todas las operaciones están
// acotadas a la empresa del caller (companyID sale del principal, nunca del
// body): un admin solo ve y toca usuarios de su propio tenant.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Register crea un usuario en la empresa del caller. Devuelve
// domain.ErrEmailAlreadyExists si el email ya existe en esa empresa.
func (uc *UserUseCase) Register(companyID *string, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByEmailAndCompany(in.Email, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
		CompanyID:    companyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// List lista los usuarios de la empresa con paginación page/limit.
func (uc *UserUseCase) List(companyID *string, page, limit int) (*dto.UserListResponse, error) {
	offset := (page - 1) * limit
	list, total, err := uc.users.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return &dto.UserListResponse{
		Users:      items,
		Pagination: dto.NewPagination(total, page, limit),
	}, nil
}

// GetByID obtiene un usuario de la empresa del caller.
func (uc *UserUseCase) GetByID(id string, companyID *string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

// Update modifica un usuario de la empresa del caller. Asignar el rol
// superadmin por esta vía está prohibido para cualquier caller (regla
// absoluta, devuelve domain.ErrSuperadminRole). Si cambia el email se
// verifica unicidad dentro de la empresa.
func (uc *UserUseCase) Update(id string, companyID *string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Role != nil && *in.Role == entity.RoleSuperAdmin {
		return nil, domain.ErrSuperadminRole
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.users.GetByEmailAndCompany(*in.Email, companyID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Delete elimina un usuario de la empresa del caller (hard delete).
// El administrador de la empresa no puede ser eliminado por esta vía,
// sin importar los privilegios del caller.
func (uc *UserUseCase) Delete(id string, companyID *string) error {
	user, err := uc.users.GetByIDAndCompany(id, companyID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.IsCompanyAdmin {
		return domain.ErrCompanyAdminDelete
	}
	return uc.users.Delete(id)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		IsCompanyAdmin: u.IsCompanyAdmin,
		Active:         u.Active,
		CompanyID:      u.CompanyID,
		CreatedAt:      u.CreatedAt,
	}
}
