// Package db opens the GORM MySQL connection used by all repositories.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"axie_backend/internal/config"
	authadapters "axie_backend/internal/feature/auth/adapters"
	authentity "axie_backend/internal/feature/auth/domain/entity"
	axieadapters "axie_backend/internal/feature/axies/adapters"
)

// Opener opens a gorm.DB from a DSN. It exists so connection retry logic
// can be tested without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN renders the MySQL DSN for the given settings.
func BuildDSN(cfg config.DBConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// ConnectWithRetry keeps trying the opener until it succeeds or the timeout
// elapses. The retry interval is 3 seconds.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to MySQL with the given settings, retrying for up to a
// minute so the server can start before the database is ready.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&axieadapters.AxieModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
