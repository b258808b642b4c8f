package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusTransitions(t *testing.T) {
	assert.True(t, ApplicationPending.CanTransitionTo(ApplicationReviewed))
	assert.True(t, ApplicationPending.CanTransitionTo(ApplicationRejected))
	assert.True(t, ApplicationPending.CanTransitionTo(ApplicationHired))
	assert.True(t, ApplicationReviewed.CanTransitionTo(ApplicationHired))
	assert.True(t, ApplicationReviewed.CanTransitionTo(ApplicationRejected))

	assert.False(t, ApplicationHired.CanTransitionTo(ApplicationPending))
	assert.False(t, ApplicationRejected.CanTransitionTo(ApplicationReviewed))
	assert.False(t, ApplicationReviewed.CanTransitionTo(ApplicationPending), "no reverse transitions")
}

func TestApplicationWithdrawable(t *testing.T) {
	assert.True(t, ApplicationPending.Withdrawable())
	assert.False(t, ApplicationReviewed.Withdrawable())
	assert.False(t, ApplicationRejected.Withdrawable())
	assert.False(t, ApplicationHired.Withdrawable())
}

func TestJobStatusValid(t *testing.T) {
	assert.True(t, JobOpen.Valid())
	assert.True(t, JobClosed.Valid())
	assert.False(t, JobStatus("paused").Valid())
}
