package store_test

import (
	"testing"

	"go-pg-manager/internal/models"
	"go-pg-manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffCRUD(t *testing.T) {
	s := setupTestStore(t)

	member := &models.Staff{Name: "Ravi Singh", Role: "Watchman", Phone: "9876543220", Shift: "Night"}
	require.NoError(t, s.CreateStaff(member))

	got, err := s.GetStaff(member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Watchman", got.Role)

	shift := "Morning"
	got, err = s.UpdateStaff(member.ID, store.StaffUpdate{Shift: &shift})
	require.NoError(t, err)
	assert.Equal(t, "Morning", got.Shift)
	assert.Equal(t, "Ravi Singh", got.Name) // untouched

	require.NoError(t, s.DeleteStaff(member.ID))

	var notFoundErr *store.NotFoundError
	_, err = s.GetStaff(member.ID)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestCreateStaffRequiresName(t *testing.T) {
	s := setupTestStore(t)

	var validationErr *store.ValidationError
	err := s.CreateStaff(&models.Staff{Role: "Watchman"})
	require.ErrorAs(t, err, &validationErr)
}
