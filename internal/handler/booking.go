package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/boringbooking/boring-booking/internal/config"
	"github.com/boringbooking/boring-booking/internal/inventory"
	"github.com/boringbooking/boring-booking/internal/ledger"
	"github.com/boringbooking/boring-booking/internal/model"
	"github.com/boringbooking/boring-booking/internal/queue"
	"github.com/boringbooking/boring-booking/internal/reservation"
	queue_publisher "github.com/boringbooking/boring-booking/internal/service"
)

// BookingHandler translates the booking HTTP surface into coordinator
// calls.  It validates request shape (well-formed ids, ttl bounds) and
// serializes coordinator results and sentinel errors onto fixed status
// codes; it holds no state of its own.
type BookingHandler struct {
	Catalog     *inventory.Catalog
	Coordinator *reservation.Coordinator
	Ledger      *ledger.Ledger
	Cfg         config.Config
	Events      bool // publish broker events after commits
}

// NewBookingHandler constructs a BookingHandler.  All dependencies must
// be non-nil.
func NewBookingHandler(catalog *inventory.Catalog, coord *reservation.Coordinator, led *ledger.Ledger, cfg config.Config) *BookingHandler {
	if catalog == nil || coord == nil || led == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Catalog: catalog, Coordinator: coord, Ledger: led, Cfg: cfg, Events: true}
}

// seatLabels renders seat ids in their wire form.
func seatLabels(ids []model.SeatID) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, id.String())
	}
	return labels
}

// parseShowtimeID extracts a positive numeric showtime id from the path.
func parseShowtimeID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id != 0
}

// ListSeats handles GET /v1/showtimes/:id/seats.  It returns a snapshot
// of the seat ids that are FREE at this instant.
func (h *BookingHandler) ListSeats(c echo.Context) error {
	showtimeID, ok := parseShowtimeID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	inv, err := h.Catalog.Get(showtimeID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"showtime_id": showtimeID,
		"available":   seatLabels(inv.AvailableSeats()),
	})
}

// HoldSeats handles POST /v1/showtimes/:id/holds.  The body must contain
// a "seat_ids" array of seat labels and may carry "ttl_seconds" to
// override the default hold lifetime within the configured bounds.  On
// success it returns 201 with the hold id and expiry; when any requested
// seat is unavailable the whole request fails with 409 and no seat is
// held.
func (h *BookingHandler) HoldSeats(c echo.Context) error {
	showtimeID, ok := parseShowtimeID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	var body struct {
		SeatIDs    []string `json:"seat_ids"`
		TTLSeconds int      `json:"ttl_seconds"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
	}
	seatIDs := make([]model.SeatID, 0, len(body.SeatIDs))
	for _, label := range body.SeatIDs {
		id, err := model.ParseSeatID(label)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat id", "seat": label})
		}
		seatIDs = append(seatIDs, id)
	}
	ttl := h.Cfg.HoldTTL
	if body.TTLSeconds != 0 {
		ttl = time.Duration(body.TTLSeconds) * time.Second
		if ttl < h.Cfg.HoldTTLMin || ttl > h.Cfg.HoldTTLMax {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ttl_seconds out of bounds"})
		}
	}
	hold, err := h.Coordinator.RequestHold(showtimeID, seatIDs, ttl)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrShowtimeNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		case errors.Is(err, model.ErrSeatConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "some seats are unavailable"})
		case errors.Is(err, model.ErrSeatNotFound),
			errors.Is(err, model.ErrInvalidSeatSet),
			errors.Is(err, model.ErrInvalidTTL):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to hold seats"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"hold_id":    hold.ID,
		"seat_ids":   seatLabels(hold.SeatIDs),
		"expires_at": hold.ExpiresAt.Format(time.RFC3339),
	})
}

// ConfirmHold handles POST /v1/holds/:id/confirm.  The body must contain
// a "customer_ref".  A hold past its deadline always answers 410 and
// never creates a booking.
func (h *BookingHandler) ConfirmHold(c echo.Context) error {
	holdID := c.Param("id")
	if holdID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hold id"})
	}
	var body struct {
		CustomerRef string `json:"customer_ref"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.CustomerRef == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_ref is required"})
	}
	booking, err := h.Coordinator.Confirm(holdID, body.CustomerRef)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrHoldExpired):
			return c.JSON(http.StatusGone, echo.Map{"error": "hold expired"})
		case errors.Is(err, model.ErrHoldNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hold not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm hold"})
	}
	h.publishConfirmed(booking)
	return c.JSON(http.StatusOK, echo.Map{
		"booking_id":   booking.ID,
		"showtime_id":  booking.ShowtimeID,
		"seat_ids":     seatLabels(booking.SeatIDs),
		"committed_at": booking.CommittedAt.Format(time.RFC3339),
	})
}

// ReleaseHold handles DELETE /v1/holds/:id, freeing the hold's seats
// regardless of remaining ttl.
func (h *BookingHandler) ReleaseHold(c echo.Context) error {
	holdID := c.Param("id")
	if err := h.Coordinator.Release(holdID); err != nil {
		if errors.Is(err, model.ErrHoldNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hold not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release hold"})
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelBooking handles DELETE /v1/bookings/:id.  Cancellation removes
// the booking from the ledger and returns its seats to FREE.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID := c.Param("id")
	booking, err := h.Coordinator.CancelBooking(bookingID)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}
	h.publishCancelled(booking)
	return c.NoContent(http.StatusNoContent)
}

// GetBooking handles GET /v1/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"booking_id":   booking.ID,
		"showtime_id":  booking.ShowtimeID,
		"seat_ids":     seatLabels(booking.SeatIDs),
		"customer_ref": booking.CustomerRef,
		"committed_at": booking.CommittedAt.Format(time.RFC3339),
	})
}

// publishConfirmed emits a booking.confirmed event in the background.
// Broker failures never affect the response the customer already earned.
func (h *BookingHandler) publishConfirmed(b model.Booking) {
	if !h.Events {
		return
	}
	inv, err := h.Catalog.Get(b.ShowtimeID)
	if err != nil {
		return
	}
	meta := inv.Showtime()
	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		ShowtimeID:  b.ShowtimeID,
		Movie:       meta.Movie,
		Theater:     meta.Theater,
		StartsAt:    meta.StartsAt.Format(time.RFC3339),
		SeatLabels:  seatLabels(b.SeatIDs),
		CustomerRef: b.CustomerRef,
		ConfirmedAt: b.CommittedAt.Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingConfirmed(ctx, ev)
	}()
}

// publishCancelled emits a booking.cancelled event in the background.
func (h *BookingHandler) publishCancelled(b model.Booking) {
	if !h.Events {
		return
	}
	inv, err := h.Catalog.Get(b.ShowtimeID)
	if err != nil {
		return
	}
	meta := inv.Showtime()
	ev := queue.BookingCancelledEvent{
		BookingID:   b.ID,
		ShowtimeID:  b.ShowtimeID,
		Movie:       meta.Movie,
		Theater:     meta.Theater,
		SeatLabels:  seatLabels(b.SeatIDs),
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingCancelled(ctx, ev)
	}()
}
