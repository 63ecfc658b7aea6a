package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCovers(t *testing.T) {
	tests := []struct {
		held     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleMesario, true},
		{RoleAdmin, RoleEleitor, true},
		{RoleMesario, RoleAdmin, false},
		{RoleMesario, RoleMesario, true},
		{RoleMesario, RoleEleitor, true},
		{RoleEleitor, RoleAdmin, false},
		{RoleEleitor, RoleMesario, false},
		{RoleEleitor, RoleEleitor, true},
		{Role("intruder"), RoleEleitor, false},
		{RoleAdmin, Role("intruder"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.held.Covers(tt.required), "%s covers %s", tt.held, tt.required)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleMesario.Valid())
	assert.True(t, RoleEleitor.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
}
