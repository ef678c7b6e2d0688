// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/boringbooking/boring-booking/internal/config"
	"github.com/boringbooking/boring-booking/internal/handler"
	"github.com/boringbooking/boring-booking/internal/middleware"
)

// RegisterRoutes registers the health check on the provided Echo
// instance.  This endpoint carries no middleware so probes always get a
// cheap answer.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the browse endpoints under /v1.  The catalog
// listings are immutable after startup, so they sit behind the Redis
// response cache (a pass-through when Redis is absent).  The showtime
// detail embeds a live free-seat count and therefore stays out of the
// cached group.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1", middleware.NewResponseCache(cacheCfg, rdb))
	g.GET("/movies", h.GetMovies)
	g.GET("/theaters", h.GetTheaters)
	g.GET("/showtimes", h.GetShowtimes)

	e.GET("/v1/showtimes/:id", h.GetShowtime)
}

// RegisterBooking registers the booking endpoints under /v1 behind the
// token-bucket rate limiter.  Seat availability is deliberately not
// cached; it must reflect the live inventory.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1", middleware.NewTokenBucket(rlCfg, rdb))
	g.GET("/showtimes/:id/seats", h.ListSeats)
	g.POST("/showtimes/:id/holds", h.HoldSeats)
	g.POST("/holds/:id/confirm", h.ConfirmHold)
	g.DELETE("/holds/:id", h.ReleaseHold)
	g.GET("/bookings/:id", h.GetBooking)
	g.DELETE("/bookings/:id", h.CancelBooking)
}
