package handler // user.go contains CRUD handlers for the users entity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/repository"
	queuepublisher "github.com/aysha-dheesan-banu/hospital-managelment-system/internal/service"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/utils"
)

// validateUserRequest normalizes a user payload and verifies the optional
// role reference.
func (h *AdminHandler) validateUserRequest(c echo.Context, req *model.UserRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and email are required"})
	}
	if req.RoleID != nil {
		if _, err := h.Roles.GetByID(c.Request().Context(), *req.RoleID); err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "role not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}
	return nil
}

// ListUsers handles GET /v1/users.  Password hashes never appear in
// responses.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	items, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetUser handles GET /v1/users/:id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	user, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /v1/users.  The password is mandatory on create
// and stored as a bcrypt hash.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req model.UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if resp := h.validateUserRequest(c, &req); resp != nil {
		return resp
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}
	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not hash password"})
	}
	user, err := h.Users.Create(c.Request().Context(), req, hash)
	if err != nil {
		if repository.IsDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("user", "create", user.ID))
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /v1/users/:id.  An empty password leaves the
// stored hash unchanged; a non-empty one is re-hashed.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req model.UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if resp := h.validateUserRequest(c, &req); resp != nil {
		return resp
	}
	hash := ""
	if req.Password != "" {
		if hash, err = utils.HashPassword(req.Password, h.BcryptCost); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not hash password"})
		}
	}
	if err := h.Users.Update(c.Request().Context(), id, req, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		if repository.IsDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("user", "update", id))
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser handles DELETE /v1/users/:id.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("user", "delete", id))
	return c.NoContent(http.StatusNoContent)
}
