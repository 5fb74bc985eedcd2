package store_test

import (
	"testing"
	"time"

	"go-pg-manager/internal/database"
	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) *store.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return store.New(db)
}

// createRoom is shorthand for tests that just need a room to hang things on.
func createRoom(t *testing.T, s *store.Store, number string, beds int) *models.Room {
	room := &models.Room{RoomNumber: number, BedCount: beds}
	require.NoError(t, s.CreateRoom(room))
	return room
}

func createTenant(t *testing.T, s *store.Store, name string, roomID uint, active bool) *models.Tenant {
	tenant := &models.Tenant{
		Name:        name,
		Phone:       "9876543210",
		JoiningDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		RoomID:      roomID,
		RentAmount:  5000,
		AdvancePaid: 10000,
		IsActive:    active,
	}
	require.NoError(t, s.CreateTenant(tenant))
	return tenant
}

func createPayment(t *testing.T, s *store.Store, tenantID uint, month int, amount float64, status string) *models.Payment {
	payment := &models.Payment{
		TenantID: tenantID,
		Month:    month,
		Year:     2024,
		Amount:   amount,
		DueDate:  time.Date(2024, time.Month(month), 5, 0, 0, 0, 0, time.UTC),
		Status:   status,
	}
	if status == models.PaymentPaid {
		paid := time.Date(2024, time.Month(month), 3, 0, 0, 0, 0, time.UTC)
		payment.PaidDate = &paid
	}
	require.NoError(t, s.CreatePayment(payment))
	return payment
}
