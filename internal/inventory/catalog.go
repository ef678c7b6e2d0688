package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/boringbooking/boring-booking/internal/model"
)

// Entry describes one showtime to be loaded into a catalog: which movie
// plays in which theater, when, and the initial seat list (seats may start
// BOOKED when the source records existing reservations).
type Entry struct {
	Movie    string
	Theater  string
	StartsAt time.Time
	Seats    []model.Seat
}

// Catalog is the fixed set of showtimes known to the service.  It is
// built once at startup and immutable afterwards; only the seat states
// inside each showtime's map change.  Lookups therefore need no locking.
type Catalog struct {
	byID  map[uint64]*ShowtimeInventory
	order []uint64
}

// NewCatalog builds a catalog from the given entries, assigning sequential
// showtime ids starting at 1 in entry order.  It fails when an entry has
// no seats or carries duplicate seat ids.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{byID: make(map[uint64]*ShowtimeInventory, len(entries))}
	for i, e := range entries {
		if len(e.Seats) == 0 {
			return nil, fmt.Errorf("showtime %q @ %q has no seats", e.Movie, e.Theater)
		}
		seats, err := NewSeatMapFromSeats(e.Seats)
		if err != nil {
			return nil, fmt.Errorf("showtime %q @ %q: %w", e.Movie, e.Theater, err)
		}
		id := uint64(i + 1)
		meta := model.Showtime{ID: id, Movie: e.Movie, Theater: e.Theater, StartsAt: e.StartsAt}
		c.byID[id] = NewShowtimeInventory(meta, seats)
		c.order = append(c.order, id)
	}
	return c, nil
}

// Get returns the inventory for a showtime id or ErrShowtimeNotFound.
func (c *Catalog) Get(id uint64) (*ShowtimeInventory, error) {
	inv, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", model.ErrShowtimeNotFound, id)
	}
	return inv, nil
}

// Movies returns the sorted set of movie titles showing in any theater.
func (c *Catalog) Movies() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, id := range c.order {
		m := c.byID[id].Showtime().Movie
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			names = append(names, m)
		}
	}
	sort.Strings(names)
	return names
}

// Theaters returns the sorted set of theater names known to the catalog.
func (c *Catalog) Theaters() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, id := range c.order {
		t := c.byID[id].Showtime().Theater
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			names = append(names, t)
		}
	}
	sort.Strings(names)
	return names
}

// HasMovie reports whether any showtime plays the named movie.
func (c *Catalog) HasMovie(movie string) bool {
	for _, id := range c.order {
		if c.byID[id].Showtime().Movie == movie {
			return true
		}
	}
	return false
}

// HasTheater reports whether any showtime plays in the named theater.
func (c *Catalog) HasTheater(theater string) bool {
	for _, id := range c.order {
		if c.byID[id].Showtime().Theater == theater {
			return true
		}
	}
	return false
}

// Showtimes returns showtime metadata in catalog order, optionally
// filtered by movie title and/or theater name.  Empty filter values match
// everything.
func (c *Catalog) Showtimes(movie, theater string) []model.Showtime {
	out := make([]model.Showtime, 0, len(c.order))
	for _, id := range c.order {
		meta := c.byID[id].Showtime()
		if movie != "" && meta.Movie != movie {
			continue
		}
		if theater != "" && meta.Theater != theater {
			continue
		}
		out = append(out, meta)
	}
	return out
}
