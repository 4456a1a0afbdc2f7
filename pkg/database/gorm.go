package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver   string
	DSN      string
	LogLevel logger.LogLevel // zero means logger.Info
}

// LevelFor logs every statement in development and only warnings in production.
func LevelFor(production bool) logger.LogLevel {
	if production {
		return logger.Warn
	}
	return logger.Info
}

func getLogger(level logger.LogLevel) logger.Interface {
	if level == 0 {
		level = logger.Info
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if driver == DriverSQLite {
		// A single writer avoids "database is locked"; an in-memory database
		// also lives only as long as its connection.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return nil
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite, "":
		if dsn == "" {
			return nil, fmt.Errorf("sqlite: empty database path")
		}
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("postgres: DB_CONNECTION_STRING is not set")
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func NewGormDB(opts Options) (*gorm.DB, error) {
	d, err := dialector(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: getLogger(opts.LogLevel),
	})
	if err != nil {
		return nil, err
	}

	driver := opts.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	if err := configureConnectionPool(db, driver); err != nil {
		return nil, err
	}

	return db, nil
}

// NewInMemorySQLite opens a private in-memory database, mostly for tests and the CLI dry runs.
func NewInMemorySQLite(name string) (*gorm.DB, error) {
	return NewGormDB(Options{
		Driver:   DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: logger.Silent,
	})
}
