package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatusCanSubmit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status    EventStatus
		canSubmit bool
	}{
		{StatusDraft, true},
		{StatusRejected, true},
		{StatusPendingApproval, false},
		{StatusApproved, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.canSubmit, tc.status.CanSubmit(), "status %s", tc.status)
	}
}

func TestEventStatusCanDecide(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status    EventStatus
		canDecide bool
	}{
		{StatusPendingApproval, true},
		{StatusDraft, false},
		{StatusApproved, false},
		{StatusRejected, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.canDecide, tc.status.CanDecide(), "status %s", tc.status)
	}
}

func TestParticipationStatusCanDecide(t *testing.T) {
	t.Parallel()

	assert.True(t, ParticipationPending.CanDecide())
	assert.False(t, ParticipationApproved.CanDecide())
	assert.False(t, ParticipationRejected.CanDecide())
}
