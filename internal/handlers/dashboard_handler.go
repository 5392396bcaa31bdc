package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/httpresp"
	"github.com/NovaSalonTech/salon-scheduler/internal/middleware"
	"github.com/NovaSalonTech/salon-scheduler/internal/roles"
	"github.com/NovaSalonTech/salon-scheduler/internal/usecase/dashboard"
)

type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get serves GET /dashboard. The payload shape follows the caller's role;
// the switch is exhaustive so a new role fails loudly instead of leaking the
// admin view.
func (h *DashboardHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := middleware.RoleFrom(c)

	var (
		payload any
		err     error
	)

	switch role {
	case roles.Client:
		payload, err = h.svc.ForClient(c.Request.Context(), userID)
	case roles.Admin:
		payload, err = h.svc.ForAdmin(c.Request.Context())
	case roles.Receptionist:
		payload, err = h.svc.ForReceptionist(c.Request.Context())
	case roles.Stylist:
		payload, err = h.svc.ForStylist(c.Request.Context(), userID)
	default:
		httperr.Forbidden(c, "forbidden", "Rol sin tablero.")
		return
	}

	if err != nil {
		log.Printf("dashboard handler: %v", err)
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, payload)
}
