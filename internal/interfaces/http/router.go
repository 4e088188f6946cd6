package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jhoicas/usuarios-api/internal/application/auth"
	"github.com/jhoicas/usuarios-api/internal/application/usecase"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	UserUC    *usecase.UserUseCase
	RoleUC    *usecase.RoleUseCase
	AuthUC    *auth.UseCase
	UserRepo  repository.UserRepository
	JWTSecret string
}

// Router registra las rutas de la API con su cadena de autorización.
// Cada ruta protegida lleva auth (token + usuario vivo) y los predicados
// que requiere, evaluados en orden con corto circuito.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret, deps.UserRepo)

	// Rate limiting estricto para login y recuperación de contraseña.
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
	})

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Post("/login", authLimiter, userHandler.Login)
	users.Post("/forgot-password", authLimiter, userHandler.ForgotPassword)
	users.Post("/reset-password", authLimiter, userHandler.ResetPassword)
	users.Get("/verify-token", authRequired, userHandler.VerifyToken)
	users.Post("/register", authRequired, RequireAdmin(), userHandler.Register)
	users.Get("/", authRequired, RequireAdmin(), userHandler.List)
	users.Get("/:id", authRequired, RequireSameCompany(deps.UserRepo), userHandler.GetByID)
	users.Put("/:id", authRequired, RequireSameCompany(deps.UserRepo), userHandler.Update)
	users.Delete("/:id", authRequired, RequireAdmin(), userHandler.Delete)

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/register", authRequired, RequireSuperAdmin(), companyHandler.Register)
	companies.Get("/", authRequired, RequireSuperAdmin(), companyHandler.List)
	companies.Get("/:id", authRequired, RequireBelongsToCompany(), companyHandler.GetByID)
	companies.Put("/:id", authRequired, RequireBelongsToCompany(), companyHandler.Update)
	companies.Delete("/:id", authRequired, RequireSuperAdmin(), companyHandler.Delete)

	// Roles y permisos (solo superadmin). El grupo se monta en /api/roles y
	// las rutas repiten el segmento: los paths publicados son
	// /api/roles/roles, /api/roles/permissions y /api/roles/roles/:roleId/permissions.
	roles := api.Group("/roles", authRequired, RequireSuperAdmin())
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/roles", roleHandler.ListRoles)
	roles.Get("/permissions", roleHandler.ListPermissions)
	roles.Post("/roles/:roleId/permissions", roleHandler.AssignPermissions)
}
