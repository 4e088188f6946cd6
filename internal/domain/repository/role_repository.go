package repository

import "github.com/jhoicas/usuarios-api/internal/domain/entity"

// RoleRepository puerto de persistencia para el catálogo de roles y permisos.
type RoleRepository interface {
	// ListRoles devuelve todos los roles con sus permisos asociados.
	ListRoles() ([]*entity.Role, error)
	// GetRoleByID devuelve (nil, nil) si el rol no existe.
	GetRoleByID(id string) (*entity.Role, error)
	ListPermissions() ([]entity.Permission, error)
	// GetPermissionsByIDs resuelve los permisos existentes entre los IDs dados.
	// IDs desconocidos simplemente no aparecen en el resultado.
	GetPermissionsByIDs(ids []string) ([]entity.Permission, error)
	// SetRolePermissions reemplaza el conjunto completo de permisos del rol
	// (semántica de set: una llamada posterior con menos permisos los quita).
	SetRolePermissions(roleID string, permissionIDs []string) error
}
