package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boringbooking/boring-booking/internal/inventory"
	"github.com/boringbooking/boring-booking/internal/model"
)

func seededCatalog(t *testing.T) *inventory.Catalog {
	t.Helper()
	c, err := inventory.NewCatalog(inventory.SeededEntries(time.Now().UTC()))
	require.NoError(t, err)
	return c
}

func TestSeededCatalogContents(t *testing.T) {
	c := seededCatalog(t)

	assert.Equal(t, []string{
		"Back to Black",
		"Furiosa: A Mad Max Saga",
		"Garfield Movie, The",
		"Kingdom of the Planet of the Apes",
	}, c.Movies())
	assert.Equal(t, []string{"Cinema Paradiso", "Galaxy Cinemas", "Landmark Cinemas"}, c.Theaters())
	assert.Len(t, c.Showtimes("", ""), 9)
}

func TestSeededCatalogPreBookedSeats(t *testing.T) {
	c := seededCatalog(t)

	// Showtime 1 (Apes at Landmark) is seeded fully booked.
	inv, err := c.Get(1)
	require.NoError(t, err)
	assert.Empty(t, inv.AvailableSeats())

	// Showtime 2 (Apes at Galaxy) is entirely free: 20 seats.
	inv, err = c.Get(2)
	require.NoError(t, err)
	assert.Len(t, inv.AvailableSeats(), 20)
}

func TestCatalogGetUnknown(t *testing.T) {
	c := seededCatalog(t)
	_, err := c.Get(999)
	assert.ErrorIs(t, err, model.ErrShowtimeNotFound)
}

func TestCatalogFilters(t *testing.T) {
	c := seededCatalog(t)

	apes := c.Showtimes("Kingdom of the Planet of the Apes", "")
	assert.Len(t, apes, 3)
	for _, s := range apes {
		assert.Equal(t, "Kingdom of the Planet of the Apes", s.Movie)
	}

	galaxy := c.Showtimes("", "Galaxy Cinemas")
	assert.Len(t, galaxy, 3)

	both := c.Showtimes("Back to Black", "Cinema Paradiso")
	require.Len(t, both, 1)
	assert.Equal(t, "Back to Black", both[0].Movie)
	assert.Equal(t, "Cinema Paradiso", both[0].Theater)

	assert.True(t, c.HasMovie("Back to Black"))
	assert.False(t, c.HasMovie("Unknown Movie"))
	assert.True(t, c.HasTheater("Galaxy Cinemas"))
	assert.False(t, c.HasTheater("Unknown Theater"))
}

func TestNewCatalogRejectsEmptySeatList(t *testing.T) {
	_, err := inventory.NewCatalog([]inventory.Entry{{Movie: "M", Theater: "T"}})
	assert.Error(t, err)
}
