package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boringbooking/boring-booking/internal/handler"
	"github.com/boringbooking/boring-booking/internal/inventory"
)

func newCatalogHandler(t *testing.T) *handler.CatalogHandler {
	t.Helper()
	catalog, err := inventory.NewCatalog(inventory.SeededEntries(time.Now().UTC()))
	require.NoError(t, err)
	return handler.NewCatalogHandler(catalog)
}

func get(e *echo.Echo, target string, paramNames, paramValues []string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramNames...)
	c.SetParamValues(paramValues...)
	_ = h(c)
	return rec
}

func TestGetMovies(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	rec := get(e, "/v1/movies", nil, nil, h.GetMovies)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Items, "Furiosa: A Mad Max Saga")
	assert.Len(t, resp.Items, 4)
}

func TestGetTheaters(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	rec := get(e, "/v1/theaters", nil, nil, h.GetTheaters)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Cinema Paradiso", "Galaxy Cinemas", "Landmark Cinemas"}, resp.Items)
}

func TestGetShowtimesFiltered(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	rec := get(e, "/v1/showtimes?theater=Galaxy+Cinemas", nil, nil, h.GetShowtimes)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			Movie   string `json:"movie"`
			Theater string `json:"theater"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 3)
	for _, item := range resp.Items {
		assert.Equal(t, "Galaxy Cinemas", item.Theater)
	}
}

func TestGetShowtimesUnknownFilter(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	rec := get(e, "/v1/showtimes?movie=Nope", nil, nil, h.GetShowtimes)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(e, "/v1/showtimes?theater=Nope", nil, nil, h.GetShowtimes)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetShowtime(t *testing.T) {
	h := newCatalogHandler(t)
	e := echo.New()

	rec := get(e, "/v1/showtimes/2", []string{"id"}, []string{"2"}, h.GetShowtime)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Item struct {
			Movie string `json:"movie"`
		} `json:"item"`
		AvailableSeats int `json:"available_seats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Kingdom of the Planet of the Apes", resp.Item.Movie)
	assert.Equal(t, 20, resp.AvailableSeats)

	rec = get(e, "/v1/showtimes/99", []string{"id"}, []string{"99"}, h.GetShowtime)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
