package infra

import (
	"context"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"annapurna/internal/models/db_models"
)

// InitPostgresql opens the persistent backend. Unlike a hard-required
// database this returns nil on any failure: the application keeps
// running on the in-memory fallback store and the prober keeps
// re-checking, so a late-starting database is picked up per request.
func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Println("POSTGRES_URL not set, using in-memory storage as fallback")
		return nil
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Println("Using in-memory storage as fallback")
		return nil
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Food{},
		&db_models.HealthLog{},
	); err != nil {
		log.Printf("Error running migrations: %v", err)
	} else {
		log.Println("PostgreSQL connected successfully")
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// Prober reports live connectivity to the persistent backend. It is
// consulted at the top of every store operation, never cached between
// requests.
type Prober interface {
	Connected(ctx context.Context) bool
}

const probeTimeout = time.Second

type DBProber struct {
	db *gorm.DB
}

func NewDBProber(db *gorm.DB) *DBProber {
	return &DBProber{db: db}
}

func (p *DBProber) Connected(ctx context.Context) bool {
	if p.db == nil {
		return false
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}
