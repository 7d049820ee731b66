package sequence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/sequence"
)

func TestCounterAllocator_FirstAllocationsStartAboveFloor(t *testing.T) {
	t.Parallel()

	a := sequence.NewCounterAllocator(sequence.NewMemoryStore())
	ctx := context.Background()

	n, err := a.Next(ctx, entity.DocClassQuote)
	require.NoError(t, err)
	require.Equal(t, int64(7001), n)

	n, err = a.Next(ctx, entity.DocClassQuote)
	require.NoError(t, err)
	require.Equal(t, int64(7002), n)

	n, err = a.Next(ctx, entity.DocClassInvoice)
	require.NoError(t, err)
	require.Equal(t, int64(9001), n)
}

func TestCounterAllocator_BelowFloorStateClampsToFloor(t *testing.T) {
	t.Parallel()

	store := sequence.NewMemoryStore()
	ctx := context.Background()

	err := store.SetLastValue(ctx, entity.DocClassQuote, "500")
	require.NoError(t, err)

	n, err := sequence.NewCounterAllocator(store).Next(ctx, entity.DocClassQuote)
	require.NoError(t, err)
	require.Equal(t, int64(7001), n)
}

func TestCounterAllocator_CorruptedStateFallsBackToFloor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	for _, corrupt := range []string{"not-a-number", "", "7001.5", "NaN"} {
		store := sequence.NewMemoryStore()
		err := store.SetLastValue(ctx, entity.DocClassInvoice, corrupt)
		require.NoError(t, err)

		n, err := sequence.NewCounterAllocator(store).Next(ctx, entity.DocClassInvoice)
		require.NoError(t, err, corrupt)
		require.Equal(t, int64(9001), n, corrupt)
	}
}

func TestCounterAllocator_UnknownClass(t *testing.T) {
	t.Parallel()

	a := sequence.NewCounterAllocator(sequence.NewMemoryStore())

	_, err := a.Next(context.Background(), entity.DocClass("receipt"))
	require.Error(t, err)
}
