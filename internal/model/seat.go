package model

import (
	"fmt"
	"strconv"
	"unicode"
)

// SeatState describes the availability of a single seat.  Every seat is in
// exactly one state at any instant: FREE seats may be held, HELD seats may
// be booked or released, BOOKED seats may only be freed by cancelling the
// booking that owns them.
type SeatState uint8

const (
	SeatFree SeatState = iota // seat is available for holding
	SeatHeld                  // seat is claimed by an active hold
	SeatBooked                // seat belongs to a committed booking
)

// String returns the canonical uppercase name of the state as it appears in
// API responses and broker events.
func (s SeatState) String() string {
	switch s {
	case SeatFree:
		return "FREE"
	case SeatHeld:
		return "HELD"
	case SeatBooked:
		return "BOOKED"
	}
	return "UNKNOWN"
}

// SeatID identifies a seat within one seat map by its row label and column
// number, e.g. row "B" column 7 is rendered as "B7".  The zero value is not
// a valid identifier.
//
// Fields:
//  Row – one or more uppercase letters designating the row.
//  Col – 1-based column number within the row.
type SeatID struct {
	Row string // row label, "A".."Z"
	Col int    // column number, starting at 1
}

// String renders the identifier in its wire form, row label followed by the
// column number.
func (id SeatID) String() string { return id.Row + strconv.Itoa(id.Col) }

// MarshalText implements encoding.TextMarshaler so SeatID values serialize
// as plain labels ("A1") in JSON payloads.
func (id SeatID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// label form produced by MarshalText.
func (id *SeatID) UnmarshalText(b []byte) error {
	parsed, err := ParseSeatID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseSeatID parses a seat label such as "A1" or "C12" into a SeatID.  The
// label must consist of one or more uppercase letters followed by a positive
// decimal column number with no leading zero.  Anything else returns an
// error wrapping ErrInvalidSeatSet so handlers can map it to a 400 response.
func ParseSeatID(s string) (SeatID, error) {
	i := 0
	for i < len(s) && unicode.IsUpper(rune(s[i])) {
		i++
	}
	if i == 0 || i == len(s) || s[i] == '0' {
		return SeatID{}, fmt.Errorf("%w: malformed seat id %q", ErrInvalidSeatSet, s)
	}
	col, err := strconv.Atoi(s[i:])
	if err != nil || col < 1 {
		return SeatID{}, fmt.Errorf("%w: malformed seat id %q", ErrInvalidSeatSet, s)
	}
	return SeatID{Row: s[:i], Col: col}, nil
}

// Seat pairs a seat identifier with its current state.  Seats are owned
// exclusively by the seat map of one showtime; the state field only changes
// through the map's atomic transition operation.
type Seat struct {
	ID    SeatID
	State SeatState
}
