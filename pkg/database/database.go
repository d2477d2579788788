package database

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"findit-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the database selected by cfg.DBDriver.
func New(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return NewSQLiteConnection(cfg.DatabaseURL)
	default:
		return NewPostgresConnection(cfg.DatabaseURL)
	}
}

func NewPostgresConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(defaultWriter()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// NewSQLiteConnection opens a sqlite database. The pool is pinned to one
// connection so ":memory:" databases are shared by every query.
func NewSQLiteConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(defaultWriter()))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func defaultWriter() logger.Writer {
	return stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags)
}

// gormConfig logs slow queries and errors. Repositories treat a missing row
// as nil, nil, so ErrRecordNotFound is not logged.
func gormConfig(w logger.Writer) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(w, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}
