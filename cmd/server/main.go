package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/boringbooking/boring-booking/internal/config"
	"github.com/boringbooking/boring-booking/internal/database"
	"github.com/boringbooking/boring-booking/internal/handler"
	"github.com/boringbooking/boring-booking/internal/inventory"
	"github.com/boringbooking/boring-booking/internal/ledger"
	"github.com/boringbooking/boring-booking/internal/queue"
	"github.com/boringbooking/boring-booking/internal/reservation"
	"github.com/boringbooking/boring-booking/internal/router"
)

// loadCatalog builds the showtime catalog: from MySQL when a database is
// configured, otherwise from the built-in seed.  Seat state is in-memory
// either way; the database only supplies the catalog and initial layout.
func loadCatalog(cfg config.Config) *inventory.Catalog {
	if cfg.DBHost != "" {
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("mysql: connect failed: %v", err)
		}
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		entries, err := database.LoadCatalogEntries(ctx, db)
		if err != nil {
			log.Fatalf("mysql: catalog load failed: %v", err)
		}
		catalog, err := inventory.NewCatalog(entries)
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
		log.Printf("catalog loaded from mysql: %d showtime(s)", len(entries))
		return catalog
	}
	catalog, err := inventory.NewCatalog(inventory.SeededEntries(time.Now().UTC()))
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	return catalog
}

func main() {
	// Optional .env for local development; the real environment wins.
	_ = godotenv.Load()

	cfg := config.Load()
	catalog := loadCatalog(cfg)
	led := ledger.New()
	coord := reservation.New(catalog, led, cfg.ExpiredRetention)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go coord.RunSweeper(ctx, cfg.SweepInterval)

	// Background consumer mirrors booking events into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(catalog), config.LoadCacheConfig(), rdb)
	router.RegisterBooking(e, handler.NewBookingHandler(catalog, coord, led, cfg), config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
