package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/boringbooking/boring-booking/internal/inventory"
	"github.com/boringbooking/boring-booking/internal/model"
)

// LoadCatalogEntries reads the showtime catalog and seat layouts from
// MySQL.  Expected schema:
//
//	showtimes(id, movie, theater, starts_at)
//	showtime_seats(showtime_id, row_label, seat_number, status)
//
// status is FREE or BOOKED; anything else is rejected so a typo in seed
// data cannot silently corrupt the inventory.  Entries come back in
// showtime id order, matching the sequential ids the catalog assigns.
func LoadCatalogEntries(ctx context.Context, db *sql.DB) ([]inventory.Entry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, movie, theater, starts_at FROM showtimes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query showtimes: %w", err)
	}
	defer rows.Close()

	type row struct {
		id    uint64
		entry inventory.Entry
	}
	var shows []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.entry.Movie, &r.entry.Theater, &r.entry.StartsAt); err != nil {
			return nil, fmt.Errorf("scan showtime: %w", err)
		}
		shows = append(shows, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]inventory.Entry, 0, len(shows))
	for _, s := range shows {
		seats, err := loadSeats(ctx, db, s.id)
		if err != nil {
			return nil, fmt.Errorf("showtime %d: %w", s.id, err)
		}
		s.entry.Seats = seats
		entries = append(entries, s.entry)
	}
	return entries, nil
}

func loadSeats(ctx context.Context, db *sql.DB, showtimeID uint64) ([]model.Seat, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT row_label, seat_number, status
		 FROM showtime_seats
		 WHERE showtime_id = ?
		 ORDER BY row_label, seat_number`, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("query seats: %w", err)
	}
	defer rows.Close()

	var seats []model.Seat
	for rows.Next() {
		var (
			rowLabel string
			seatNum  int
			status   string
		)
		if err := rows.Scan(&rowLabel, &seatNum, &status); err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		state := model.SeatFree
		switch status {
		case "FREE":
		case "BOOKED":
			state = model.SeatBooked
		default:
			return nil, fmt.Errorf("seat %s%d has unknown status %q", rowLabel, seatNum, status)
		}
		seats = append(seats, model.Seat{
			ID:    model.SeatID{Row: rowLabel, Col: seatNum},
			State: state,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, sql.ErrNoRows
	}
	return seats, nil
}
