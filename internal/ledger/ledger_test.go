package ledger_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boringbooking/boring-booking/internal/ledger"
	"github.com/boringbooking/boring-booking/internal/model"
)

func booking(id string) model.Booking {
	return model.Booking{
		ID:          id,
		ShowtimeID:  1,
		SeatIDs:     []model.SeatID{{Row: "A", Col: 1}},
		CustomerRef: "alice",
		CommittedAt: time.Now().UTC(),
	}
}

func TestAppendAndGet(t *testing.T) {
	l := ledger.New()
	b := booking(uuid.NewString())

	id, err := l.Append(b)
	require.NoError(t, err)
	assert.Equal(t, b.ID, id)

	got, err := l.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.Equal(t, 1, l.Len())
}

func TestAppendDuplicateID(t *testing.T) {
	l := ledger.New()
	b := booking("fixed-id")
	_, err := l.Append(b)
	require.NoError(t, err)

	_, err = l.Append(b)
	assert.ErrorIs(t, err, model.ErrDuplicateBooking)
}

func TestGetUnknown(t *testing.T) {
	l := ledger.New()
	_, err := l.Get("nope")
	assert.ErrorIs(t, err, model.ErrBookingNotFound)
}

func TestCancelReturnsRecordAndRemoves(t *testing.T) {
	l := ledger.New()
	b := booking(uuid.NewString())
	_, err := l.Append(b)
	require.NoError(t, err)

	got, err := l.Cancel(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.SeatIDs, got.SeatIDs)
	assert.Equal(t, 0, l.Len())

	_, err = l.Cancel(b.ID)
	assert.ErrorIs(t, err, model.ErrBookingNotFound)
}

func TestConcurrentCancelExactlyOneWinner(t *testing.T) {
	l := ledger.New()
	b := booking(uuid.NewString())
	_, err := l.Append(b)
	require.NoError(t, err)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Cancel(b.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	wins := 0
	for err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, model.ErrBookingNotFound)
		}
	}
	assert.Equal(t, 1, wins)
}
