package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boringbooking/boring-booking/internal/inventory"
)

// CatalogHandler serves the browse endpoints over the immutable showtime
// catalog: movies, theaters and the showtimes connecting them.  The list
// responses never change after startup, which is what makes them safe to
// put behind the response cache; the showtime detail carries a live seat
// count and must not be cached.
type CatalogHandler struct {
	Catalog *inventory.Catalog
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog *inventory.Catalog) *CatalogHandler {
	if catalog == nil {
		panic("nil catalog passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: catalog}
}

// GetMovies handles GET /v1/movies, listing every movie that is showing
// in at least one theater.
func (h *CatalogHandler) GetMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Movies()})
}

// GetTheaters handles GET /v1/theaters, listing every known theater.
func (h *CatalogHandler) GetTheaters(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Theaters()})
}

// GetShowtimes handles GET /v1/showtimes with optional ?movie= and
// ?theater= filters.  Filtering on a movie or theater the catalog has
// never heard of answers 404 rather than an empty list, so clients can
// tell a typo from an empty schedule.
func (h *CatalogHandler) GetShowtimes(c echo.Context) error {
	movie := c.QueryParam("movie")
	theater := c.QueryParam("theater")
	if movie != "" && !h.Catalog.HasMovie(movie) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	if theater != "" && !h.Catalog.HasTheater(theater) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.Showtimes(movie, theater)})
}

// GetShowtime handles GET /v1/showtimes/:id, returning the showtime
// metadata together with a live count of free seats.
func (h *CatalogHandler) GetShowtime(c echo.Context) error {
	showtimeID, ok := parseShowtimeID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	inv, err := h.Catalog.Get(showtimeID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item":            inv.Showtime(),
		"available_seats": len(inv.AvailableSeats()),
	})
}
