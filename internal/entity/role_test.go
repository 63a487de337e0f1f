package entity_test

import (
	"testing"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  entity.Role
		errFn require.ErrorAssertionFunc
	}{
		{"staff", "Staff", entity.RoleStaff, require.NoError},
		{"higher authority with spaces", "  Higher Authority ", entity.RoleHigherAuthority, require.NoError},
		{"junior staff", "Junior Staff", entity.RoleJuniorStaff, require.NoError},
		{"lower case is unknown", "staff", "", require.Error},
		{"empty", "", "", require.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entity.ParseRole(tt.input)
			tt.errFn(t, err)
			require.Equal(t, tt.want, got)

			if err != nil {
				require.ErrorIs(t, err, entity.ErrRoleInvalid)
			}
		})
	}
}

func TestRole_Behaviour(t *testing.T) {
	t.Parallel()

	r := require.New(t)

	r.False(entity.RoleHigherAuthority.RequiresDepartment())
	r.True(entity.RoleStaff.RequiresDepartment())
	r.True(entity.RoleJuniorStaff.RequiresDepartment())

	r.Equal("/admin-dashboard", entity.RoleHigherAuthority.DashboardURL())
	r.Equal("/staff-dashboard", entity.RoleStaff.DashboardURL())
	r.Equal("/staff-dashboard", entity.RoleJuniorStaff.DashboardURL())

	r.True(entity.RoleStaff.CanResolveAny())
	r.True(entity.RoleHigherAuthority.CanResolveAny())
	r.False(entity.RoleJuniorStaff.CanResolveAny())
}
