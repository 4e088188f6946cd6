package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCompanyNotFound    = errors.New("empresa no encontrada")
	ErrRoleNotFound       = errors.New("rol no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSuperadminRole     = errors.New("no se puede asignar el rol superadmin")
	ErrCompanyAdminDelete = errors.New("no se puede eliminar al administrador de la empresa")
)
