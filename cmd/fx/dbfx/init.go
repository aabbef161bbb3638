package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"annapurna/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideProber)

// provideDB may return nil; the prober then routes every store call to
// the in-memory fallback.
func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideProber(db *gorm.DB) infra.Prober {
	return infra.NewDBProber(db)
}
