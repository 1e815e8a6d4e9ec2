package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		from        Status
		canCancel   bool
		canConfirm  bool
		canComplete bool
	}{
		{StatusScheduled, true, true, true},
		{StatusConfirmed, true, false, true},
		{StatusPending, true, true, false},
		{StatusCancelled, false, false, false},
		{StatusCompleted, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.canCancel, CanCancel(tt.from) == nil)
			assert.Equal(t, tt.canConfirm, CanConfirm(tt.from) == nil)
			assert.Equal(t, tt.canComplete, CanComplete(tt.from) == nil)
		})
	}
}

func TestTransitionError(t *testing.T) {
	err := CanComplete(StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Complete(ap, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)

	// concluir duas vezes não é permitido
	assert.Error(t, Complete(ap, now))
}

func TestCancel(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	assert.Error(t, Confirm(ap))
}
