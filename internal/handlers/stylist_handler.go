package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaSalonTech/salon-scheduler/internal/middleware"
	"github.com/NovaSalonTech/salon-scheduler/internal/models"
	"github.com/NovaSalonTech/salon-scheduler/internal/roles"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

// --------- Requests ---------

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

type CreateBlockedIntervalRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
	Reason    string `json:"reason"`
}

// --------- Handlers ---------

// List is public: the booking flow needs stylist names before login.
func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.User
	if err := h.db.
		Select("id", "name").
		Where("role = ? AND active = ?", string(roles.Stylist), true).
		Order("name ASC").
		Find(&stylists).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_stylists"})
		return
	}

	c.JSON(http.StatusOK, stylists)
}

// resolveStylistID decides whose calendar is being edited: a stylist always
// their own, admin/receptionist whoever :id names.
func (h *StylistHandler) resolveStylistID(c *gin.Context) (uint, bool) {
	role, _ := middleware.RoleFrom(c)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	if role == roles.Stylist {
		return actorID, true
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_stylist_id"})
		return 0, false
	}
	return uint(id), true
}

func (h *StylistHandler) GetWorkingHours(c *gin.Context) {
	stylistID, ok := h.resolveStylistID(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// UpdateWorkingHours replaces the weekly template wholesale. Existing
// appointments are untouched; only future availability changes.
func (h *StylistHandler) UpdateWorkingHours(c *gin.Context) {
	stylistID, ok := h.resolveStylistID(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if d.Active && !validClockRange(d.StartTime, d.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_range"})
			return
		}
	}

	if err := h.db.Where("stylist_id = ?", stylistID).Delete(&models.WorkingHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingHours{
			StylistID:  stylistID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *StylistHandler) ListBlockedIntervals(c *gin.Context) {
	stylistID, ok := h.resolveStylistID(c)
	if !ok {
		return
	}

	q := h.db.Where("stylist_id = ?", stylistID)
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var blocked []models.BlockedInterval
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&blocked).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocked_intervals"})
		return
	}

	c.JSON(http.StatusOK, blocked)
}

func (h *StylistHandler) CreateBlockedInterval(c *gin.Context) {
	stylistID, ok := h.resolveStylistID(c)
	if !ok {
		return
	}

	var req CreateBlockedIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}
	if !validClockRange(req.StartTime, req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_range"})
		return
	}

	blocked := models.BlockedInterval{
		StylistID: stylistID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_blocked_interval"})
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

func (h *StylistHandler) DeleteBlockedInterval(c *gin.Context) {
	stylistID, ok := h.resolveStylistID(c)
	if !ok {
		return
	}

	blockedID, err := strconv.ParseUint(c.Param("blockedID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_blocked_interval_id"})
		return
	}

	result := h.db.
		Where("id = ? AND stylist_id = ?", blockedID, stylistID).
		Delete(&models.BlockedInterval{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blocked_interval"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "blocked_interval_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// validClockRange accepts "HH:MM" pairs with start strictly before end.
func validClockRange(start, end string) bool {
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && s.Before(e)
}
