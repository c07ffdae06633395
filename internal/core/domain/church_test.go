package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
)

func TestChurchRole_Meets(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.ChurchRole
		required domain.ChurchRole
		want     bool
	}{
		{
			name:     "admin meets staff",
			role:     domain.ChurchRoleAdmin,
			required: domain.ChurchRoleStaff,
			want:     true,
		},
		{
			name:     "staff meets staff",
			role:     domain.ChurchRoleStaff,
			required: domain.ChurchRoleStaff,
			want:     true,
		},
		{
			name:     "staff does not meet admin",
			role:     domain.ChurchRoleStaff,
			required: domain.ChurchRoleAdmin,
			want:     false,
		},
		{
			name:     "volunteer meets member",
			role:     domain.ChurchRoleVolunteer,
			required: domain.ChurchRoleMember,
			want:     true,
		},
		{
			name:     "member does not meet volunteer",
			role:     domain.ChurchRoleMember,
			required: domain.ChurchRoleVolunteer,
			want:     false,
		},
		{
			name:     "removed meets nothing",
			role:     domain.ChurchRoleRemoved,
			required: domain.ChurchRoleMember,
			want:     false,
		},
		{
			name:     "unknown role meets nothing",
			role:     domain.ChurchRole("OWNER"),
			required: domain.ChurchRoleMember,
			want:     false,
		},
		{
			name:     "nothing meets an unknown requirement",
			role:     domain.ChurchRoleAdmin,
			required: domain.ChurchRole("OWNER"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Meets(tt.required))
		})
	}
}
