package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw      string
		expected Role
		wantErr  bool
	}{
		{"admin", RoleAdmin, false},
		{"organizer", RoleOrganizer, false},
		{"vendor", RoleVendor, false},
		{"attendee", RoleAttendee, false},
		{"guest", RoleGuest, false},
		{"  Admin ", RoleAdmin, false},
		{"ADMIN", RoleAdmin, false},
		{"superuser", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		role, err := ParseRole(tc.raw)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.raw)
			continue
		}
		require.NoError(t, err, "input %q", tc.raw)
		assert.Equal(t, tc.expected, role)
	}
}

func TestParseRoleContext(t *testing.T) {
	t.Parallel()

	ctx, err := ParseRoleContext("attendee")
	require.NoError(t, err)
	assert.Equal(t, ContextAttendee, ctx)

	ctx, err = ParseRoleContext("vendor")
	require.NoError(t, err)
	assert.Equal(t, ContextVendor, ctx)

	_, err = ParseRoleContext("organizer")
	assert.Error(t, err)

	_, err = ParseRoleContext("")
	assert.Error(t, err)
}
