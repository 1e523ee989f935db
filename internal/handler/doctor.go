package handler // doctor.go contains CRUD handlers for the doctors entity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/repository"
	queuepublisher "github.com/aysha-dheesan-banu/hospital-managelment-system/internal/service"
)

// validateDoctorRequest verifies both mandatory references.  excludeID is
// the doctor being updated (0 on create) so the one-profile-per-user check
// does not reject a no-op update.
func (h *AdminHandler) validateDoctorRequest(c echo.Context, req model.DoctorRequest, excludeID uint64) error {
	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if _, err := h.Hospitals.GetByID(ctx, req.HospitalID); err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hospital not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	taken, err := h.Doctors.ExistsForUser(ctx, req.UserID, excludeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "user already has a doctor profile"})
	}
	return nil
}

// ListDoctors handles GET /v1/doctors with denormalized username,
// full_name and hospital_name on every row.
func (h *AdminHandler) ListDoctors(c echo.Context) error {
	items, err := h.Doctors.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetDoctor handles GET /v1/doctors/:id with the same denormalized fields
// as the list.
func (h *AdminHandler) GetDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	doctor, err := h.Doctors.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "doctor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, doctor)
}

// CreateDoctor handles POST /v1/doctors.
func (h *AdminHandler) CreateDoctor(c echo.Context) error {
	var req model.DoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if resp := h.validateDoctorRequest(c, req, 0); resp != nil {
		return resp
	}
	doctor, err := h.Doctors.Create(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create doctor"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("doctor", "create", doctor.ID))
	return c.JSON(http.StatusCreated, doctor)
}

// UpdateDoctor handles PUT /v1/doctors/:id.
func (h *AdminHandler) UpdateDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req model.DoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if resp := h.validateDoctorRequest(c, req, id); resp != nil {
		return resp
	}
	if err := h.Doctors.Update(c.Request().Context(), id, req); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "doctor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Doctors.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("doctor", "update", id))
	return c.JSON(http.StatusOK, updated)
}

// DeleteDoctor handles DELETE /v1/doctors/:id.
func (h *AdminHandler) DeleteDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Doctors.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "doctor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	_ = queuepublisher.PublishAdminAudit(c.Request().Context(), newAuditEvent("doctor", "delete", id))
	return c.NoContent(http.StatusNoContent)
}
