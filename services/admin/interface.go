package admin

import (
	"context"

	adminRepo "salonadmin/database/repository/admin"
	auditRepo "salonadmin/database/repository/audit"
	bookingRepo "salonadmin/database/repository/booking"
	"salonadmin/models"

	"go.uber.org/zap"
)

type AdminService interface {
	// SeedMockData stores sample bookings and the admin config, but only when
	// no booking collection exists yet. It reports whether anything was written.
	SeedMockData(ctx context.Context) (bool, error)
	GetAdminConfig(ctx context.Context) (*models.AdminConfig, error)
	GetAuditTrail(ctx context.Context) ([]models.AuditEntry, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings bookingRepo.BookingRepository
	Configs  adminRepo.AdminConfigRepository
	Audit    auditRepo.AuditRepository
	// Admins is written to admin_config when seeding.
	Admins models.AdminConfig
	Logger *zap.Logger
}
