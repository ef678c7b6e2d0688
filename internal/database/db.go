// Package database provides the optional MySQL catalog source.  The live
// seat state always lives in process memory; MySQL only supplies the
// showtime catalog and initial seat layouts at startup.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/boringbooking/boring-booking/internal/config"
)

const pingTimeout = 5 * time.Second

// dsn renders the driver connection string from the configured DB_*
// values.  parseTime maps DATETIME columns onto time.Time and loc pins
// them to UTC so catalog timestamps match the in-memory clock.
func dsn(cfg config.Config) string {
	auth := cfg.DBUser
	if cfg.DBPass != "" {
		auth = cfg.DBUser + ":" + cfg.DBPass
	}
	addr := net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	return fmt.Sprintf("%s@tcp(%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC", auth, addr, cfg.DBName)
}

// Open connects to MySQL with the configured pool settings and verifies
// the connection with a bounded ping.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
