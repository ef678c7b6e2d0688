package inventory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boringbooking/boring-booking/internal/inventory"
	"github.com/boringbooking/boring-booking/internal/model"
)

func seat(label string) model.SeatID {
	id, err := model.ParseSeatID(label)
	if err != nil {
		panic(err)
	}
	return id
}

func seats(labels ...string) []model.SeatID {
	ids := make([]model.SeatID, 0, len(labels))
	for _, l := range labels {
		ids = append(ids, seat(l))
	}
	return ids
}

func TestNewSeatMapGrid(t *testing.T) {
	m := inventory.NewSeatMap([]string{"A", "B"}, 3)
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, seats("A1", "A2", "A3", "B1", "B2", "B3"), m.AvailableSeats())
}

func TestNewSeatMapFromSeatsRejectsDuplicates(t *testing.T) {
	_, err := inventory.NewSeatMapFromSeats([]model.Seat{
		{ID: seat("A1")},
		{ID: seat("A1")},
	})
	assert.Error(t, err)
}

func TestTrySetStateAllOrNothing(t *testing.T) {
	m := inventory.NewSeatMap([]string{"A"}, 3)
	require.NoError(t, m.TrySetState(seats("A1"), model.SeatFree, model.SeatHeld))

	// A1 is held, so holding {A1, A2} must fail and leave A2 free.
	err := m.TrySetState(seats("A1", "A2"), model.SeatFree, model.SeatHeld)
	assert.ErrorIs(t, err, model.ErrSeatConflict)
	assert.Equal(t, seats("A2", "A3"), m.AvailableSeats())
}

func TestTrySetStateUnknownSeat(t *testing.T) {
	m := inventory.NewSeatMap([]string{"A"}, 2)
	err := m.TrySetState(seats("A1", "Z9"), model.SeatFree, model.SeatHeld)
	assert.ErrorIs(t, err, model.ErrSeatNotFound)
	// nothing changed
	assert.Equal(t, seats("A1", "A2"), m.AvailableSeats())
}

func TestSeatsByIDs(t *testing.T) {
	m := inventory.NewSeatMap([]string{"A"}, 2)
	require.NoError(t, m.TrySetState(seats("A2"), model.SeatFree, model.SeatBooked))

	got, err := m.SeatsByIDs(seats("A2", "A1"))
	require.NoError(t, err)
	assert.Equal(t, []model.Seat{
		{ID: seat("A2"), State: model.SeatBooked},
		{ID: seat("A1"), State: model.SeatFree},
	}, got)

	_, err = m.SeatsByIDs(seats("B1"))
	assert.ErrorIs(t, err, model.ErrSeatNotFound)
}

func TestTrySetStateConcurrentOverlapExactlyOneWinner(t *testing.T) {
	m := inventory.NewSeatMap([]string{"A"}, 5)
	target := seats("A2", "A3")

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- m.TrySetState(target, model.SeatFree, model.SeatHeld)
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, model.ErrSeatConflict)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, seats("A1", "A4", "A5"), m.AvailableSeats())
}
