package admin

import (
	"context"
	"fmt"

	"salonadmin/models"

	"go.uber.org/zap"
)

// MockBookings returns the sample collection used to populate an empty store.
func MockBookings() []models.Booking {
	return []models.Booking{
		{
			ID:        1,
			Service:   "💅 Manicure",
			Date:      "25.12.2024 10:00",
			Duration:  90,
			Contacts:  "📱 +7 (978) 123-45-67",
			Timestamp: "2024-12-20T10:00:00Z",
			ChatID:    123456789,
			UserID:    1373071419,
			Username:  "admin_manicure",
			FirstName: "Manicure",
			LastName:  "Admin",
			Status:    models.StatusConfirmed,
		},
		{
			ID:        2,
			Service:   "🧖 Laser hair removal",
			Date:      "26.12.2024 14:30",
			Duration:  30,
			Contacts:  "📧 client@example.com",
			Timestamp: "2024-12-20T11:30:00Z",
			ChatID:    987654321,
			UserID:    1094720117,
			Username:  "admin_other",
			FirstName: "Services",
			LastName:  "Admin",
			Status:    models.StatusPending,
		},
		{
			ID:        3,
			Service:   "👣 Pedicure",
			Date:      "27.12.2024 16:00",
			Duration:  90,
			Contacts:  "📱 +7 (978) 987-65-43",
			Timestamp: "2024-12-20T12:15:00Z",
			ChatID:    555555555,
			UserID:    130208292,
			Username:  "admin_all",
			FirstName: "Main",
			LastName:  "Admin",
			Status:    models.StatusCompleted,
		},
	}
}

func (a *DefaultAdminService) SeedMockData(ctx context.Context) (bool, error) {
	exists, err := a.Bookings.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	// Refuse to seed an allow-list that could never match anyone.
	if _, err := a.Admins.Parse(); err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}

	if err := a.Bookings.SaveAll(ctx, MockBookings()); err != nil {
		return false, fmt.Errorf("seed bookings: %w", err)
	}
	if err := a.Configs.Save(ctx, a.Admins); err != nil {
		return false, fmt.Errorf("seed admin config: %w", err)
	}

	a.logger().Info("Seeded mock bookings", zap.Int("count", len(MockBookings())))
	return true, nil
}

func (a *DefaultAdminService) GetAdminConfig(ctx context.Context) (*models.AdminConfig, error) {
	return a.Configs.Get(ctx)
}

func (a *DefaultAdminService) GetAuditTrail(ctx context.Context) ([]models.AuditEntry, error) {
	if a.Audit == nil {
		return []models.AuditEntry{}, nil
	}
	return a.Audit.List(ctx)
}

func (a *DefaultAdminService) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}
