package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boringbooking/boring-booking/internal/model"
)

func TestParseSeatID(t *testing.T) {
	cases := []struct {
		in   string
		want model.SeatID
	}{
		{"A1", model.SeatID{Row: "A", Col: 1}},
		{"C12", model.SeatID{Row: "C", Col: 12}},
		{"AA3", model.SeatID{Row: "AA", Col: 3}},
	}
	for _, tc := range cases {
		got, err := model.ParseSeatID(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.in, got.String())
	}
}

func TestParseSeatIDRejectsMalformedLabels(t *testing.T) {
	for _, in := range []string{"", "A", "1", "a1", "A0", "A01", "A-1", "A1B", "A 1"} {
		_, err := model.ParseSeatID(in)
		assert.ErrorIs(t, err, model.ErrInvalidSeatSet, "input %q", in)
	}
}

func TestSeatIDJSONRoundTrip(t *testing.T) {
	ids := []model.SeatID{{Row: "A", Col: 1}, {Row: "B", Col: 7}}
	data, err := json.Marshal(ids)
	require.NoError(t, err)
	assert.JSONEq(t, `["A1","B7"]`, string(data))

	var back []model.SeatID
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ids, back)
}

func TestSeatStateString(t *testing.T) {
	assert.Equal(t, "FREE", model.SeatFree.String())
	assert.Equal(t, "HELD", model.SeatHeld.String())
	assert.Equal(t, "BOOKED", model.SeatBooked.String())
	assert.Equal(t, "UNKNOWN", model.SeatState(42).String())
}
