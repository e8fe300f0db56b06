package handlers

import (
	"time"

	adminRepo "salonadmin/database/repository/admin"
	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/services/admin"
	"salonadmin/services/auth"
	"salonadmin/services/booking"
	"salonadmin/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the services the handlers are built from.
type Dependencies struct {
	Store     kvRepo.Store
	Configs   adminRepo.AdminConfigRepository
	Checker   *auth.Checker
	Bookings  booking.BookingService
	Admin     admin.AdminService
	Banners   notification.BannerService
	BannerTTL time.Duration
	Logger    *zap.Logger
	// SessionTTL bounds how long a signed in user id is remembered.
	SessionTTL time.Duration
	// LoginRatePerMin limits sign in attempts per client IP.
	LoginRatePerMin int
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Store           kvRepo.Store
	Checker         *auth.Checker
	LoginRatePerMin int

	// Root composition and admin view forms
	IndexHandler      gin.HandlerFunc
	StatusFormHandler gin.HandlerFunc
	DateFormHandler   gin.HandlerFunc
	TimeFormHandler   gin.HandlerFunc
	DeleteFormHandler gin.HandlerFunc

	// Auth endpoints
	LoginHandler        gin.HandlerFunc
	LogoutHandler       gin.HandlerFunc
	APILoginHandler     gin.HandlerFunc
	APILogoutHandler    gin.HandlerFunc
	SessionStateHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler   gin.HandlerFunc
	UpdateBookingHandler  gin.HandlerFunc
	SetStatusHandler      gin.HandlerFunc
	RescheduleDateHandler gin.HandlerFunc
	RescheduleTimeHandler gin.HandlerFunc
	DeleteBookingHandler  gin.HandlerFunc

	// Admin endpoints
	StatsHandler      gin.HandlerFunc
	AuditTrailHandler gin.HandlerFunc
	HealthHandler     gin.HandlerFunc
	StatusHandler     gin.HandlerFunc
}

// NewHandlerBundle wires every handler to deps.
func NewHandlerBundle(deps Dependencies) *HandlerBundle {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	views := viewSupport{
		Configs:   deps.Configs,
		Banners:   deps.Banners,
		BannerTTL: deps.BannerTTL,
		Logger:    deps.Logger,
	}

	authHandler := &AuthHandler{viewSupport: views, Store: deps.Store, Checker: deps.Checker, SessionTTL: deps.SessionTTL}
	panelHandler := &PanelHandler{viewSupport: views, Bookings: deps.Bookings}
	bookingHandler := NewBookingHandler(deps.Bookings, deps.Logger)
	adminHandler := NewAdminHandler(deps.Admin, deps.Bookings, deps.Logger)

	return &HandlerBundle{
		Store:           deps.Store,
		Checker:         deps.Checker,
		LoginRatePerMin: deps.LoginRatePerMin,

		IndexHandler:      panelHandler.IndexHandler,
		StatusFormHandler: panelHandler.StatusFormHandler,
		DateFormHandler:   panelHandler.DateFormHandler,
		TimeFormHandler:   panelHandler.TimeFormHandler,
		DeleteFormHandler: panelHandler.DeleteFormHandler,

		LoginHandler:        authHandler.LoginHandler,
		LogoutHandler:       authHandler.LogoutHandler,
		APILoginHandler:     authHandler.APILoginHandler,
		APILogoutHandler:    authHandler.APILogoutHandler,
		SessionStateHandler: authHandler.SessionStateHandler,

		ListBookingsHandler:   bookingHandler.ListBookingsHandler,
		UpdateBookingHandler:  bookingHandler.UpdateBookingHandler,
		SetStatusHandler:      bookingHandler.SetStatusHandler,
		RescheduleDateHandler: bookingHandler.RescheduleDateHandler,
		RescheduleTimeHandler: bookingHandler.RescheduleTimeHandler,
		DeleteBookingHandler:  bookingHandler.DeleteBookingHandler,

		StatsHandler:      adminHandler.StatsHandler,
		AuditTrailHandler: adminHandler.AuditTrailHandler,
		HealthHandler:     adminHandler.HealthHandler,
		StatusHandler:     adminHandler.StatusHandler,
	}
}
