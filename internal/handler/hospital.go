package handler // hospital.go contains CRUD handlers for the hospitals entity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/repository"
	queuepublisher "github.com/aysha-dheesan-banu/hospital-managelment-system/internal/service"
)

// ListHospitals handles GET /v1/hospitals and returns every facility.
func (h *AdminHandler) ListHospitals(c echo.Context) error {
	items, err := h.Hospitals.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetHospital handles GET /v1/hospitals/:id.
func (h *AdminHandler) GetHospital(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	hospital, err := h.Hospitals.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hospital not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, hospital)
}

// CreateHospital handles POST /v1/hospitals.  Hospital names are unique;
// duplicates are rejected with 409.
func (h *AdminHandler) CreateHospital(c echo.Context) error {
	var req model.HospitalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	hospital := &model.Hospital{Name: req.Name, Address: req.Address}
	if err := h.Hospitals.Create(c.Request().Context(), hospital); err != nil {
		if repository.IsDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "hospital with this name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create hospital"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("hospital", "create", hospital.ID))
	return c.JSON(http.StatusCreated, hospital)
}

// UpdateHospital handles PUT /v1/hospitals/:id.
func (h *AdminHandler) UpdateHospital(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req model.HospitalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	if err := h.Hospitals.Update(c.Request().Context(), id, req); err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hospital not found"})
		}
		if repository.IsDuplicate(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "hospital with this name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Hospitals.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("hospital", "update", id))
	return c.JSON(http.StatusOK, updated)
}

// DeleteHospital handles DELETE /v1/hospitals/:id.
func (h *AdminHandler) DeleteHospital(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Hospitals.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hospital not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("hospital", "delete", id))
	return c.NoContent(http.StatusNoContent)
}
