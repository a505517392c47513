package infra

import (
	"fmt"

	"fornopos/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite ledger and migrates the schema.
// The terminal is the only writer, so a single connection with a busy timeout
// is enough; WAL keeps readers from blocking the checkout path.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate creates or updates all ledger tables. Also used by tests against
// in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.ToppingGroup{},
		&model.ToppingOption{},
		&model.ProductToppingGroup{},
		&model.Register{},
		&model.Order{},
		&model.OrderItem{},
		&model.Client{},
		&model.Employee{},
		&model.EmployeeExpense{},
		&model.EmployeeDayOff{},
		&model.Setting{},
	)
}
