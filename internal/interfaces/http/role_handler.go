package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/application/usecase"
)

// RoleHandler maneja las consultas y asignaciones del grafo rol-permiso.
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler inyectando el caso de uso.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// ListRoles godoc
// @Summary      Listar roles con sus permisos
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /api/roles/roles [get]
func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.uc.ListRoles()
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"roles": roles})
}

// ListPermissions godoc
// @Summary      Listar el catálogo de permisos
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /api/roles/permissions [get]
func (h *RoleHandler) ListPermissions(c *fiber.Ctx) error {
	perms, err := h.uc.ListPermissions()
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"permissions": perms})
}

// AssignPermissions godoc
// @Summary      Reemplazar los permisos de un rol
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        roleId  path  string  true  "ID del rol"
// @Param        body    body  dto.AssignPermissionsRequest  true  "IDs de permisos"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/roles/roles/{roleId}/permissions [post]
func (h *RoleHandler) AssignPermissions(c *fiber.Ctx) error {
	var in dto.AssignPermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return BadRequest("cuerpo inválido", nil)
	}
	if err := h.uc.AssignPermissions(c.Params("roleId"), in.PermissionIDs); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"message": "permisos asignados al rol exitosamente"})
}
