// Package database opens the relational store for the shop.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Austinkuria/E-commerce-Site/config"
)

var DB *gorm.DB

// dialectors maps DB_DRIVER values to their gorm constructors.
var dialectors = map[string]func(string) gorm.Dialector{
	"sqlite":    sqlite.Open,
	"postgres":  postgres.Open,
	"mysql":     mysql.Open,
	"sqlserver": sqlserver.Open,
}

// Connect opens the database, configures the connection pool, and verifies
// the connection with a ping. DB is only assigned on success.
func Connect() error {
	driver := config.DatabaseDriver()

	open, ok := dialectors[driver]
	if !ok {
		return fmt.Errorf("database: unsupported DB_DRIVER %q (supported: %s)",
			driver, strings.Join(supportedDrivers(), ", "))
	}

	db, err := gorm.Open(open(config.DatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // pkg/logger handles logging
	})
	if err != nil {
		return fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database: get sql.DB: %w", err)
	}
	tunePool(sqlDB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	DB = db
	return nil
}

// tunePool applies pool settings, overridable through the environment.
func tunePool(db *sql.DB) {
	db.SetMaxOpenConns(intSetting("DB_MAX_OPEN_CONNS", 25))
	db.SetMaxIdleConns(intSetting("DB_MAX_IDLE_CONNS", 10))
	db.SetConnMaxLifetime(time.Duration(intSetting("DB_CONN_MAX_LIFETIME_MIN", 5)) * time.Minute)
	db.SetConnMaxIdleTime(time.Duration(intSetting("DB_CONN_MAX_IDLE_MIN", 2)) * time.Minute)
}

func intSetting(key string, fallback int) int {
	n, err := strconv.Atoi(config.Get(key, strconv.Itoa(fallback)))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func supportedDrivers() []string {
	names := make([]string, 0, len(dialectors))
	for name := range dialectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
