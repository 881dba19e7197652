package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Manager ")
	require.NoError(t, err)
	assert.Equal(t, RoleManager, role)

	_, err = ParseRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionAttendanceManage, true},
		{RoleAdmin, PermissionReportsExport, true},
		{RoleManager, PermissionAttendanceCreate, true},
		{RoleManager, PermissionAttendanceManage, false},
		{RoleManager, PermissionReportsExport, false},
		{RoleEmployee, PermissionDashboardView, true},
		{RoleEmployee, PermissionClientCreate, false},
		{Role("guest"), PermissionDashboardView, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}
