package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedBatchSize = 500

var (
	ErrUnsupportedDriver   = errors.New("unsupported database driver")
	ErrAutoMigrateDisabled = errors.New("auto-migration disabled")
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens the configured sqlite or postgres database. The memory driver
// has no database and is rejected.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Transaction{},
		&models.BlacklistedToken{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_date_id ON transactions(date DESC, id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_type_date ON transactions(transaction_type, date)",
		"CREATE INDEX IF NOT EXISTS idx_blacklisted_tokens_expires_at ON blacklisted_tokens(expires_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

func (db *DB) CleanupExpiredTokens() (int64, error) {
	result := db.DB.Where("expires_at < ?", time.Now()).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired blacklisted tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SeedTransactions loads records into an empty transactions table, keeping
// dataset order in the id column. A populated table is left untouched.
func (db *DB) SeedTransactions(records []models.Transaction) (int, error) {
	var count int64
	if err := db.DB.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 || len(records) == 0 {
		return 0, nil
	}

	rows := make([]models.Transaction, len(records))
	copy(rows, records)
	for i := range rows {
		rows[i].ID = 0
	}

	if err := db.DB.CreateInBatches(rows, seedBatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to seed transactions: %w", err)
	}

	return len(rows), nil
}

// Initialize opens the database, brings the schema up to date and seeds the
// transaction table from records when configured to.
func Initialize(ctx context.Context, cfg *config.Config, records []models.Transaction) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	if cfg.Database.SeedOnStart {
		seeded, err := db.SeedTransactions(records)
		if err != nil {
			db.Close()
			return nil, err
		}
		if seeded > 0 {
			log.Printf("Seeded %d transactions", seeded)
		}
	}

	log.Println("Database initialized successfully")

	return db, nil
}

func (db *DB) migrate(ctx context.Context) error {
	if db.config.Driver != config.DriverPostgres {
		return db.AutoMigrate()
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB); err != nil {
		if !errors.Is(err, ErrAutoMigrateDisabled) {
			log.Printf("Warning: migration runner failed: %v", err)
		}
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return nil
}
