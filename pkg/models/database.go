package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alex-b96/budgeting-app/pkg/config"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database configured in cfg, migrates the schema and
// registers the error translation callbacks.
//
// The returned connection is owned by the caller and must be released with Close.
func Connect(cfg config.Database) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		// Store all timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		dialector = sqlite.Open(sqliteDSN(cfg.DSN))
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.Driver == config.DriverPostgres {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
			sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
		}
	} else {
		// One connection prevents SQLITE_BUSY errors and keeps
		// in-memory databases alive for the whole process.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = Migrate(db)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("budgeting:after_query", errorCallback)
	if err != nil {
		return nil, err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("budgeting:after_create", errorCallback)
	if err != nil {
		return nil, err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("budgeting:after_update", errorCallback)
	if err != nil {
		return nil, err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("budgeting:after_delete", errorCallback)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	return sqlDB.Close()
}

// sqliteDSN enables foreign key enforcement, which SQLite has off by default.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_pragma=foreign_keys(1)"
	}

	return dsn + "?_pragma=foreign_keys(1)"
}

// Migrate creates the tables for all models if they do not exist yet.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Budget{}, Envelope{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// errorCallback replaces database errors with the errors defined in this package.
//
// Errors the user can act on get a descriptive message. Everything else is
// logged and replaced with ErrGeneral so that no internals leak to clients.
func errorCallback(db *gorm.DB) {
	db.Error = translateError(db.Error, db.Statement.Table)
}

// translateError maps err to one of the errors of this package.
//
// It is used by the callbacks and for errors that do not pass through a
// callback, e.g. when a transaction cannot be started.
func translateError(err error, table string) error {
	if err == nil {
		return nil
	}

	// Already translated
	if errors.Is(err, ErrGeneral) || errors.Is(err, ErrDatabaseClosed) || errors.Is(err, ErrBudgetReference) || errors.Is(err, ErrBalanceOverflow) {
		return err
	}

	if isClosed(err) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrDatabaseClosed
	}

	if isForeignKeyViolation(err) {
		return ErrBudgetReference
	}

	log.Error().Str("table", table).Msgf("%T: %v", err, err.Error())
	return ErrGeneral
}

// isClosed reports if err is caused by using a closed connection pool.
//
// "sql: database is closed" is hard-coded in database/sql and not exported.
func isClosed(err error) bool {
	return err.Error() == "sql: database is closed"
}

// Ping checks that the database answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return translateError(err, "")
	}

	return translateError(sqlDB.PingContext(ctx), "")
}

// SQLITE_CONSTRAINT_FOREIGNKEY extended result code
const sqliteConstraintForeignKey = 787

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintForeignKey {
		return true
	}

	// SQLite and PostgreSQL messages for drivers that do not translate errors
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint")
}
