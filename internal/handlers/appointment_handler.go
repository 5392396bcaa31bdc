package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/NovaSalonTech/salon-scheduler/internal/domain/appointment"
	"github.com/NovaSalonTech/salon-scheduler/internal/httperr"
	"github.com/NovaSalonTech/salon-scheduler/internal/httpresp"
	"github.com/NovaSalonTech/salon-scheduler/internal/middleware"
	usecase "github.com/NovaSalonTech/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *usecase.GetAvailability
	book         *usecase.Book
	createStaff  *usecase.CreateStaff
	walkIn       *usecase.WalkIn
	updateStatus *usecase.UpdateStatus
	cancel       *usecase.Cancel
	listByDate   *usecase.ListByDate
	listByMonth  *usecase.ListByMonth

	loc *time.Location
}

func NewAppointmentHandler(
	availability *usecase.GetAvailability,
	book *usecase.Book,
	createStaff *usecase.CreateStaff,
	walkIn *usecase.WalkIn,
	updateStatus *usecase.UpdateStatus,
	cancel *usecase.Cancel,
	listByDate *usecase.ListByDate,
	listByMonth *usecase.ListByMonth,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		book:         book,
		createStaff:  createStaff,
		walkIn:       walkIn,
		updateStatus: updateStatus,
		cancel:       cancel,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StylistID uint   `json:"stylist_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // 2006-01-02T15:04:05, salon time

	PaymentToken string `json:"payment_token"`
	PayerEmail   string `json:"payer_email"`
}

type CreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	StylistID uint   `json:"stylist_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Notes     string `json:"notes"`
}

type WalkInRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	StylistID   uint   `json:"stylist_id" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

const startTimeLayout = "2006-01-02T15:04:05"

func (h *AppointmentHandler) parseStart(raw string) (time.Time, error) {
	return time.ParseInLocation(startTimeLayout, raw, h.loc)
}

// writeBusiness maps a recoverable domain failure onto the wire contract.
// Anything that is not a BusinessError is an unexpected persistence failure:
// logged and answered with a bare 500.
func writeBusiness(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, "Recurso no encontrado.")
	case httperr.CodeSlotConflict:
		httperr.Conflict(c, code, "El horario ya está ocupado.")
	case httperr.CodeOutOfHours:
		httperr.BadRequest(c, code, "Fuera del horario de atención.")
	case httperr.CodePastDate:
		httperr.BadRequest(c, code, "El horario ya pasó o es demasiado pronto.")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "Transición de estado inválida.")
	case httperr.CodePaymentDeclined:
		httperr.BadRequest(c, code, "El pago fue rechazado.")
	default:
		log.Printf("appointment handler: %v", err)
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

// AvailabilityResponse keys the per-stylist slot lists under "stylists";
// clients depend on that exact shape.
type AvailabilityResponse struct {
	Stylists []domain.StylistAvailability `json:"stylists"`
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use YYYY-MM-DD.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id inválido.")
		return
	}

	q := domain.AvailabilityQuery{Date: date, ServiceID: uint(serviceID)}

	if raw := c.Query("stylist_id"); raw != "" {
		stylistID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_stylist_id", "stylist_id inválido.")
			return
		}
		id := uint(stylistID)
		q.StylistID = &id
	}

	out, err := h.availability.Execute(c.Request.Context(), q)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, AvailabilityResponse{Stylists: out})
}

// ======================================================
// BOOK (self-service)
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, err := h.parseStart(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date inválido.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), usecase.BookInput{
		ClientID:     clientID,
		ServiceID:    req.ServiceID,
		StylistID:    req.StylistID,
		Start:        start,
		PaymentToken: req.PaymentToken,
		PayerEmail:   req.PayerEmail,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// CREATE (front desk)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	start, err := h.parseStart(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time inválido.")
		return
	}

	ap, err := h.createStaff.Execute(c.Request.Context(), usecase.CreateStaffInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		StylistID: req.StylistID,
		Start:     start,
		CreatedBy: actorID,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// WALK-IN
// ======================================================

func (h *AppointmentHandler) WalkIn(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.walkIn.Execute(c.Request.Context(), usecase.WalkInInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		StylistID:   req.StylistID,
		CreatedBy:   actorID,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS / CANCEL
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := middleware.RoleFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), usecase.UpdateStatusInput{
		AppointmentID: uint(id),
		Status:        c.Query("status_value"),
		ActorID:       actorID,
		ActorRole:     role,
	})
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	role, _ := middleware.RoleFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), uint(id), actorID, role)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTINGS
// ======================================================

// ListByDate serves the day calendar: ?date=YYYY-MM-DD&stylist_id=N.
// A stylist gets their own column regardless of the query param.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida, use YYYY-MM-DD.")
		return
	}

	stylistID, err := h.scopeStylist(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_stylist_id", "stylist_id inválido.")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), stylistID, date)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "year inválido.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "month inválido.")
		return
	}

	stylistID, err := h.scopeStylist(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_stylist_id", "stylist_id inválido.")
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), stylistID, year, month)
	if err != nil {
		writeBusiness(c, err)
		return
	}

	httpresp.List(c, items)
}

// scopeStylist resolves which stylist's appointments a listing may show: a
// stylist is always pinned to themselves, staff pick via query param (0 = all).
func (h *AppointmentHandler) scopeStylist(c *gin.Context) (uint, error) {
	if role, ok := middleware.RoleFrom(c); ok && !role.Staff() {
		actorID := c.MustGet(middleware.ContextUserID).(uint)
		return actorID, nil
	}

	raw := c.Query("stylist_id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
