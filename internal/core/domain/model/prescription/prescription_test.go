package prescription_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/prescription"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *prescription.Prescription {
	t.Helper()
	p, err := prescription.NewPrescription(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "uploads/rx-001.jpg")
	require.NoError(t, err)
	return p
}

func TestNewPrescription(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		p := newPending(t)

		assert.Equal(t, prescription.Pending, p.Status())
		assert.Nil(t, p.PharmacistID())
		assert.Nil(t, p.ValidatedAt())
		assert.False(t, p.UploadedAt().IsZero())
	})

	t.Run("image_ref_is_required", func(t *testing.T) {
		_, err := prescription.NewPrescription(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")
		require.Error(t, err)
	})

	t.Run("order_id_is_required", func(t *testing.T) {
		_, err := prescription.NewPrescription(
			kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "uploads/rx.jpg")
		require.Error(t, err)
	})
}

func TestPrescription_Approve(t *testing.T) {
	t.Run("approves_pending", func(t *testing.T) {
		p := newPending(t)
		pharmacistID := kernel.NewUUID()

		require.NoError(t, p.Approve(pharmacistID, "ok"))

		assert.Equal(t, prescription.Approved, p.Status())
		require.NotNil(t, p.PharmacistID())
		assert.True(t, p.PharmacistID().IsEqual(pharmacistID))
		assert.NotNil(t, p.ValidatedAt())
	})

	t.Run("cannot_decide_twice", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Approve(kernel.NewUUID(), "ok"))

		err := p.Approve(kernel.NewUUID(), "again")
		require.ErrorIs(t, err, prescription.ErrAlreadyDecided)
	})
}

func TestPrescription_Reject(t *testing.T) {
	t.Run("rejects_with_notes", func(t *testing.T) {
		p := newPending(t)

		require.NoError(t, p.Reject(kernel.NewUUID(), "expired"))

		assert.Equal(t, prescription.Rejected, p.Status())
		assert.Equal(t, "expired", p.Notes())
	})

	t.Run("notes_are_mandatory", func(t *testing.T) {
		p := newPending(t)

		err := p.Reject(kernel.NewUUID(), "")
		require.ErrorIs(t, err, prescription.ErrRejectionNotesRequired)
		assert.Equal(t, prescription.Pending, p.Status())
	})

	t.Run("cannot_reject_after_approval", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Approve(kernel.NewUUID(), "ok"))

		err := p.Reject(kernel.NewUUID(), "changed my mind")
		require.ErrorIs(t, err, prescription.ErrAlreadyDecided)
	})
}

func TestRestorePrescription(t *testing.T) {
	pharmacistID := kernel.NewUUID()
	validatedAt := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	p, err := prescription.RestorePrescription(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"uploads/rx-002.jpg", prescription.Rejected,
		&pharmacistID, "illegible", time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), &validatedAt,
	)

	require.NoError(t, err)
	assert.Equal(t, prescription.Rejected, p.Status())
	assert.Equal(t, "illegible", p.Notes())
	require.NotNil(t, p.ValidatedAt())
	assert.Equal(t, validatedAt, *p.ValidatedAt())
}

func TestStatusFromString(t *testing.T) {
	for _, s := range []prescription.Status{prescription.Pending, prescription.Approved, prescription.Rejected} {
		parsed, err := prescription.StatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := prescription.StatusFromString("maybe")
	require.Error(t, err)
}
