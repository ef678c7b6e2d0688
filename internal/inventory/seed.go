package inventory

import (
	"time"

	"github.com/boringbooking/boring-booking/internal/model"
)

// Each seeded showtime has 20 seats laid out as 4 rows of 5.
var seedRows = [...]string{"A", "B", "C", "D"}

const seedCols = 5

// seedShow pairs a movie/theater with a bitmask of seats that are already
// booked: bit n set means the n-th seat (row-major, A1 first) starts
// BOOKED.
type seedShow struct {
	movie   string
	theater string
	booked  uint32
}

const allSeats = 1<<(len(seedRows)*seedCols) - 1

var seedShows = []seedShow{
	{"Kingdom of the Planet of the Apes", "Landmark Cinemas", allSeats},
	{"Kingdom of the Planet of the Apes", "Galaxy Cinemas", 0},
	{"Kingdom of the Planet of the Apes", "Cinema Paradiso", 0},
	{"Furiosa: A Mad Max Saga", "Landmark Cinemas", 0xdead},
	{"Furiosa: A Mad Max Saga", "Galaxy Cinemas", 0xbeef},
	{"Garfield Movie, The", "Landmark Cinemas", 0xc0ca},
	{"Garfield Movie, The", "Cinema Paradiso", 0xc01a},
	{"Back to Black", "Galaxy Cinemas", 0},
	{"Back to Black", "Cinema Paradiso", 0},
}

// maskSeats expands a booked-seat bitmask into the full seat list.
func maskSeats(booked uint32) []model.Seat {
	seats := make([]model.Seat, 0, len(seedRows)*seedCols)
	bit := 0
	for _, row := range seedRows {
		for col := 1; col <= seedCols; col++ {
			state := model.SeatFree
			if booked&(1<<bit) != 0 {
				state = model.SeatBooked
			}
			seats = append(seats, model.Seat{ID: model.SeatID{Row: row, Col: col}, State: state})
			bit++
		}
	}
	return seats
}

// SeededEntries returns the built-in catalog used when no external catalog
// source is configured.  Screenings are scheduled as evening slots on the
// day of startup.
func SeededEntries(now time.Time) []Entry {
	evening := time.Date(now.Year(), now.Month(), now.Day(), 19, 0, 0, 0, time.UTC)
	entries := make([]Entry, 0, len(seedShows))
	for i, s := range seedShows {
		entries = append(entries, Entry{
			Movie:    s.movie,
			Theater:  s.theater,
			StartsAt: evening.Add(time.Duration(i%3) * 30 * time.Minute),
			Seats:    maskSeats(s.booked),
		})
	}
	return entries
}
