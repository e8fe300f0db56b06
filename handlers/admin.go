package handlers

import (
	"net/http"
	"time"

	"salonadmin/services/admin"
	"salonadmin/services/booking"
	"salonadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates admin-level reporting endpoints.
type AdminHandler struct {
	AdminService admin.AdminService
	Bookings     booking.BookingService
	Logger       *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService, bs booking.BookingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		AdminService: as,
		Bookings:     bs,
		Logger:       logger,
	}
}

// StatsHandler returns counts over a freshly loaded collection.
func (ah *AdminHandler) StatsHandler(c *gin.Context) {
	if _, err := ah.Bookings.Load(c.Request.Context()); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, ah.Bookings.Stats(time.Now()))
}

// AuditTrailHandler returns recorded mutations, newest first.
func (ah *AdminHandler) AuditTrailHandler(c *gin.Context) {
	entries, err := ah.AdminService.GetAuditTrail(c.Request.Context())
	if err != nil {
		ah.Logger.Error("Failed to fetch audit trail", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch audit trail", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// HealthHandler is the liveness probe.
func (ah *AdminHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Salon admin is up"})
}

// StatusHandler reports the last storage health check and the size of the
// in-memory collection.
func (ah *AdminHandler) StatusHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	code := http.StatusOK
	if !health.CheckedAt.IsZero() && !health.Storage {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":   "running",
		"storage":  health,
		"bookings": len(ah.Bookings.Bookings()),
		"time":     time.Now().UTC(),
	})
}
