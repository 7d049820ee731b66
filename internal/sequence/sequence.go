// Package sequence produces document numbers. Quotations and invoices draw
// from independent counters with class-specific floors, and a number is
// never reused once handed out.
package sequence

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jaessolutions/docdesk/internal/entity"
)

const (
	QuoteFloor   int64 = 7000
	InvoiceFloor int64 = 9000
)

// Floor is the class-specific value below which numbers are never
// allocated. The first number handed out for a class is Floor+1.
func Floor(class entity.DocClass) (int64, error) {
	switch class {
	case entity.DocClassQuote:
		return QuoteFloor, nil
	case entity.DocClassInvoice:
		return InvoiceFloor, nil
	default:
		return 0, fmt.Errorf("unknown document class %q", class)
	}
}

// Allocator hands out the next document number for a class. The
// production implementation lives in the repository, where the increment
// is a single atomic statement shared by all clients.
type Allocator interface {
	Next(ctx context.Context, class entity.DocClass) (int64, error)
}

// CounterStore holds the last allocated number per class as a
// string-encoded integer, mirroring the wire format of the counter keys.
type CounterStore interface {
	LastValue(ctx context.Context, class entity.DocClass) (string, error)
	SetLastValue(ctx context.Context, class entity.DocClass, value string) error
}

// CounterAllocator is the client-held high-water-mark scheme: read the
// last value, clamp to the floor, persist floor+1 and return it. Numbers
// are strictly increasing per store but carry no cross-store uniqueness
// guarantee; use the repository allocator where that matters.
type CounterAllocator struct {
	store CounterStore
}

func NewCounterAllocator(store CounterStore) *CounterAllocator {
	return &CounterAllocator{store: store}
}

func (a *CounterAllocator) Next(ctx context.Context, class entity.DocClass) (int64, error) {
	floor, err := Floor(class)
	if err != nil {
		return 0, err
	}

	raw, err := a.store.LastValue(ctx, class)
	if err != nil {
		return 0, fmt.Errorf("read counter: %w", err)
	}

	// Corrupted or below-floor state is treated as absent, never an error.
	last, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || last < floor {
		last = floor
	}

	next := last + 1

	err = a.store.SetLastValue(ctx, class, strconv.FormatInt(next, 10))
	if err != nil {
		return 0, fmt.Errorf("persist counter: %w", err)
	}

	return next, nil
}
