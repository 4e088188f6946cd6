package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/internal/application/auth"
	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/application/usecase"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

// Mensaje genérico de forgot-password: idéntico exista o no la cuenta,
// para no revelar qué emails están registrados.
const forgotPasswordMessage = "si el email existe, recibirá instrucciones para restablecer su contraseña"

// UserHandler maneja las peticiones HTTP para usuarios y autenticación.
type UserHandler struct {
	uc     *usecase.UserUseCase
	authUC *auth.UseCase
}

// NewUserHandler construye el handler inyectando los casos de uso.
func NewUserHandler(uc *usecase.UserUseCase, authUC *auth.UseCase) *UserHandler {
	return &UserHandler{uc: uc, authUC: authUC}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest("cuerpo inválido", nil)
	}

	var v fieldErrors
	v.email("email", in.Email)
	v.minLen("password", in.Password, 6)
	if err := v.err(); err != nil {
		return err
	}

	out, err := h.authUC.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return Unauthorized("contraseña incorrecta")
		}
		return err
	}
	return respond(c, fiber.StatusOK, out)
}

// ForgotPassword godoc
// @Summary      Solicitar recuperación de contraseña
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  map[string]any
// @Router       /api/users/forgot-password [post]
func (h *UserHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest("cuerpo inválido", nil)
	}

	var v fieldErrors
	v.email("email", in.Email)
	if err := v.err(); err != nil {
		return err
	}

	// No importa si la cuenta existe o no: la respuesta es siempre la misma.
	return respond(c, fiber.StatusOK, fiber.Map{"message": forgotPasswordMessage})
}

// ResetPassword godoc
// @Summary      Resetear contraseña
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "token, newPassword"
// @Success      200   {object}  map[string]any
// @Router       /api/users/reset-password [post]
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest("cuerpo inválido", nil)
	}

	var v fieldErrors
	v.required("token", in.Token)
	v.minLen("newPassword", in.NewPassword, 6)
	if err := v.err(); err != nil {
		return err
	}

	return respond(c, fiber.StatusOK, fiber.Map{"message": "la contraseña ha sido restablecida exitosamente"})
}

// VerifyToken godoc
// @Summary      Verificar token vigente
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Router       /api/users/verify-token [get]
func (h *UserHandler) VerifyToken(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	return respond(c, fiber.StatusOK, fiber.Map{
		"message": "token válido",
		"user": dto.VerifyTokenUser{
			ID:             p.ID,
			Name:           p.Name,
			Email:          p.Email,
			Role:           p.Role,
			CompanyID:      p.CompanyID,
			IsCompanyAdmin: p.IsCompanyAdmin,
		},
	})
}

// Register godoc
// @Summary      Registrar usuario en la empresa del caller
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterUserRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest("cuerpo inválido", nil)
	}

	var v fieldErrors
	v.required("name", in.Name)
	v.email("email", in.Email)
	v.minLen("password", in.Password, 6)
	if in.Role == "" {
		v.add("role", "role es requerido")
	} else if !entity.ValidRole(in.Role) {
		v.add("role", "role desconocido")
	}
	if err := v.err(); err != nil {
		return err
	}

	out, err := h.uc.Register(GetPrincipal(c).CompanyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return Conflict("el usuario ya existe en esta empresa", "email", in.Email)
		}
		return err
	}
	return respond(c, fiber.StatusCreated, fiber.Map{
		"message": "usuario creado exitosamente",
		"user":    out,
	})
}

// List godoc
// @Summary      Listar usuarios de la empresa del caller
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	out, err := h.uc.List(GetPrincipal(c).CompanyID, page, limit)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetPrincipal(c).CompanyID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"user": out})
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest("cuerpo inválido", nil)
	}

	var v fieldErrors
	if in.Email != nil {
		v.email("email", *in.Email)
	}
	if in.Name != nil {
		v.required("name", *in.Name)
	}
	// superadmin pasa la validación de catálogo: el caso de uso lo rechaza
	// con 403 (regla absoluta), no con 400.
	if in.Role != nil && !entity.ValidRole(*in.Role) {
		v.add("role", "role desconocido")
	}
	if err := v.err(); err != nil {
		return err
	}

	out, err := h.uc.Update(c.Params("id"), GetPrincipal(c).CompanyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) && in.Email != nil {
			return Conflict("el email ya está en uso en esta empresa", "email", *in.Email)
		}
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{
		"message": "usuario actualizado exitosamente",
		"user":    out,
	})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetPrincipal(c).CompanyID); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"message": "usuario eliminado exitosamente"})
}
