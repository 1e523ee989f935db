package handler // handler defines the HTTP handlers of the admin API

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/queue"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/repository"
)

// AdminHandler bundles the repositories needed by the CRUD endpoints of the
// admin console.  Every successful mutation additionally publishes an audit
// event to the message broker; publish failures are logged by the publisher
// and never fail the request.
type AdminHandler struct {
	Hospitals  *repository.HospitalRepo
	Roles      *repository.RoleRepo
	Users      *repository.UserRepo
	Doctors    *repository.DoctorRepo
	BcryptCost int
}

// NewAdminHandler constructs an AdminHandler and panics if any repository
// is missing, mirroring how the rest of the wiring fails fast at startup.
func NewAdminHandler(h *repository.HospitalRepo, r *repository.RoleRepo, u *repository.UserRepo, d *repository.DoctorRepo, bcryptCost int) *AdminHandler {
	if h == nil || r == nil || u == nil || d == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Hospitals: h, Roles: r, Users: u, Doctors: d, BcryptCost: bcryptCost}
}

// pathID parses the :id route parameter into a uint64.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// newAuditEvent builds an audit event for a successful mutation.
func newAuditEvent(entity, action string, id uint64) queue.AdminAuditEvent {
	return queue.AdminAuditEvent{
		EventID:    uuid.NewString(),
		Entity:     entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Health is a liveness endpoint for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
