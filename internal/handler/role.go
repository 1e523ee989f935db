package handler // role.go contains CRUD handlers for the roles entity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/repository"
	queuepublisher "github.com/aysha-dheesan-banu/hospital-managelment-system/internal/service"
)

// validateRoleRequest normalizes and checks a role payload.  When a
// hospital is referenced it must exist; a nil HospitalID marks a global
// role and is accepted as-is.
func (h *AdminHandler) validateRoleRequest(c echo.Context, req *model.RoleRequest) error {
	req.RoleName = strings.TrimSpace(req.RoleName)
	if req.RoleName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role_name is required"})
	}
	if req.HospitalID != nil {
		if _, err := h.Hospitals.GetByID(c.Request().Context(), *req.HospitalID); err != nil {
			if errors.Is(err, repository.ErrHospitalNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "hospital not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}
	return nil
}

// ListRoles handles GET /v1/roles.  Responses carry the denormalized
// hospital_name computed by the repository join.
func (h *AdminHandler) ListRoles(c echo.Context) error {
	items, err := h.Roles.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetRole handles GET /v1/roles/:id, hospital_name included.
func (h *AdminHandler) GetRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	role, err := h.Roles.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "role not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, role)
}

// CreateRole handles POST /v1/roles.
func (h *AdminHandler) CreateRole(c echo.Context) error {
	var req model.RoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if resp := h.validateRoleRequest(c, &req); resp != nil {
		return resp
	}
	role, err := h.Roles.Create(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create role"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("role", "create", role.ID))
	return c.JSON(http.StatusCreated, role)
}

// UpdateRole handles PUT /v1/roles/:id.
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req model.RoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if resp := h.validateRoleRequest(c, &req); resp != nil {
		return resp
	}
	if err := h.Roles.Update(c.Request().Context(), id, req); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "role not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Roles.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("role", "update", id))
	return c.JSON(http.StatusOK, updated)
}

// DeleteRole handles DELETE /v1/roles/:id.
func (h *AdminHandler) DeleteRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Roles.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "role not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("role", "delete", id))
	return c.NoContent(http.StatusNoContent)
}
