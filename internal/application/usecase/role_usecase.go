package usecase

import (
	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

// RoleUseCase consultas y asignación sobre el grafo rol-permiso.
type RoleUseCase struct {
	roles repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso con el puerto de persistencia.
func NewRoleUseCase(roles repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roles: roles}
}

// ListRoles devuelve todos los roles con sus permisos.
func (uc *RoleUseCase) ListRoles() ([]dto.RoleResponse, error) {
	roles, err := uc.roles.ListRoles()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return out, nil
}

// ListPermissions devuelve el catálogo completo de permisos.
func (uc *RoleUseCase) ListPermissions() ([]dto.PermissionResponse, error) {
	perms, err := uc.roles.ListPermissions()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, dto.PermissionResponse{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

// AssignPermissions reemplaza el conjunto completo de permisos del rol.
// La operación es idempotente y con semántica de set: un set más chico
// quita permisos previos, el set vacío los quita todos. IDs de permisos
// inexistentes se resuelven por lookup y se descartan en silencio.
func (uc *RoleUseCase) AssignPermissions(roleID string, permissionIDs []string) error {
	role, err := uc.roles.GetRoleByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrRoleNotFound
	}

	perms, err := uc.roles.GetPermissionsByIDs(permissionIDs)
	if err != nil {
		return err
	}
	resolved := make([]string, 0, len(perms))
	for _, p := range perms {
		resolved = append(resolved, p.ID)
	}
	return uc.roles.SetRolePermissions(roleID, resolved)
}

func toRoleResponse(r *entity.Role) dto.RoleResponse {
	perms := make([]dto.PermissionResponse, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, dto.PermissionResponse{ID: p.ID, Name: p.Name})
	}
	return dto.RoleResponse{ID: r.ID, Name: r.Name, Permissions: perms}
}
