package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/internal/application/authz"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/usuarios-api/pkg/jwt"
)

// Local key donde el middleware deja al principal autenticado.
const localPrincipal = "principal"

// AuthMiddleware valida el Bearer Token y construye el Principal de la
// petición. Los claims son una foto al momento de emisión: acá se recarga el
// usuario vivo y se rechaza si ya no existe o está inactivo (eso cierra la
// brecha de desactivación; un token robado sigue siendo válido hasta expirar
// si el usuario sigue activo).
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("token no proporcionado")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return Unauthorized("formato esperado: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return Unauthorized("token vacío")
		}

		claims, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return err // el ErrorHandler mapea expirado/malformado/firma a 401
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return Unauthorized("usuario no encontrado")
		}
		if !user.Active {
			return Unauthorized("usuario inactivo")
		}

		c.Locals(localPrincipal, authz.Principal{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Role:           user.Role,
			IsCompanyAdmin: user.IsCompanyAdmin,
			CompanyID:      user.CompanyID,
		})
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después de AuthMiddleware).
func GetPrincipal(c *fiber.Ctx) authz.Principal {
	p, _ := c.Locals(localPrincipal).(authz.Principal)
	return p
}

// RequireSuperAdmin middleware: solo superadmin.
func RequireSuperAdmin() fiber.Handler {
	return requirePredicates(authz.RequireSuperAdmin)
}

// RequireCompanyAdmin middleware: solo el administrador del tenant.
func RequireCompanyAdmin() fiber.Handler {
	return requirePredicates(authz.RequireCompanyAdmin)
}

// RequireAdmin middleware: rol admin o administrador del tenant.
func RequireAdmin() fiber.Handler {
	return requirePredicates(authz.RequireAdmin)
}

// RequireBelongsToCompany middleware: superadmin, o que la empresa del
// principal coincida con el :id de la ruta.
func RequireBelongsToCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := c.Params("id")
		if companyID == "" {
			return BadRequest("id de empresa no proporcionado", nil)
		}
		if err := authz.Evaluate(GetPrincipal(c), authz.RequireBelongsToCompany(companyID)); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireSameCompany middleware: el usuario objetivo (:id) debe pertenecer a
// la empresa del principal. Si el objetivo no existe responde 404, no 403.
func RequireSameCompany(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		targetID := c.Params("id")
		if err := authz.Evaluate(GetPrincipal(c), authz.RequireSameCompany(users, targetID)); err != nil {
			return err
		}
		return c.Next()
	}
}

func requirePredicates(preds ...authz.Predicate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authz.Evaluate(GetPrincipal(c), preds...); err != nil {
			return err
		}
		return c.Next()
	}
}
