package authz

import (
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

// Principal es la identidad autenticada de una petición, construida por el
// middleware de auth a partir del usuario vivo (no de los claims del token).
// Se pasa explícitamente por la cadena de autorización, nunca como estado
// global mutable.
type Principal struct {
	ID             string
	Name           string
	Email          string
	Role           string
	IsCompanyAdmin bool
	CompanyID      *string
}

// Denial resultado tipado de un predicado que niega el acceso.
// Predicate identifica qué chequeo falló (para logs); Message es el texto
// genérico que ve el cliente, sin filtrar datos de otros tenants.
type Denial struct {
	Predicate string
	Message   string
}

func (d *Denial) Error() string { return d.Message }

func deny(predicate, message string) *Denial {
	return &Denial{Predicate: predicate, Message: message}
}

// Predicate chequeo de autorización sobre un principal: nil permite el paso,
// *Denial niega, cualquier otro error es una falla de infraestructura.
type Predicate func(p Principal) error

// Evaluate ejecuta los predicados de izquierda a derecha con corto circuito:
// el primer fallo gana y su razón es la que se devuelve.
func Evaluate(p Principal, preds ...Predicate) error {
	for _, pred := range preds {
		if err := pred(p); err != nil {
			return err
		}
	}
	return nil
}

// RequireSuperAdmin permite solo al rol superadmin.
func RequireSuperAdmin(p Principal) error {
	if p.Role != entity.RoleSuperAdmin {
		return deny("superadmin", "acceso denegado: se requiere rol superadmin")
	}
	return nil
}

// RequireCompanyAdmin permite solo al administrador del tenant.
func RequireCompanyAdmin(p Principal) error {
	if !p.IsCompanyAdmin {
		return deny("companyAdmin", "acceso denegado: se requiere ser administrador de la empresa")
	}
	return nil
}

// RequireAdmin permite al rol admin o al administrador del tenant.
func RequireAdmin(p Principal) error {
	if p.Role != entity.RoleAdmin && !p.IsCompanyAdmin {
		return deny("admin", "acceso denegado: se requiere rol admin")
	}
	return nil
}

// RequireBelongsToCompany permite al superadmin, o a cualquier usuario cuya
// empresa coincida con la indicada en la ruta.
func RequireBelongsToCompany(companyID string) Predicate {
	return func(p Principal) error {
		if p.Role == entity.RoleSuperAdmin {
			return nil
		}
		if p.CompanyID == nil || *p.CompanyID != companyID {
			return deny("belongsToCompany", "no tiene permiso para acceder a esta empresa")
		}
		return nil
	}
}

// UserFinder es el contrato mínimo que necesita RequireSameCompany para
// cargar el usuario objetivo (lo implementa repository.UserRepository).
type UserFinder interface {
	GetByID(id string) (*entity.User, error)
}

// RequireSameCompany permite cuando el usuario objetivo pertenece a la misma
// empresa que el principal. El orden es intencional: primero se verifica la
// existencia del objetivo (404 si no existe) y después la tenencia (403).
func RequireSameCompany(users UserFinder, targetUserID string) Predicate {
	return func(p Principal) error {
		target, err := users.GetByID(targetUserID)
		if err != nil {
			return err
		}
		if target == nil {
			return domain.ErrUserNotFound
		}
		if !sameCompany(target, p.CompanyID) {
			return deny("sameCompany", "acceso denegado: el usuario pertenece a otra empresa")
		}
		return nil
	}
}

func sameCompany(target *entity.User, principalCompany *string) bool {
	if principalCompany == nil {
		return target.CompanyID == nil
	}
	return target.BelongsTo(*principalCompany)
}
