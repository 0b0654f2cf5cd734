package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/raffles-api/internal/config"
	"github.com/vietanh2810/raffles-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		conf.Host, conf.User, conf.Password, conf.DB, conf.Port, conf.SSLMode,
	)

	return OpenPostgresWithURL(dsn)
}

// OpenPostgresWithURL accepts either a postgres:// URL or a key=value DSN.
func OpenPostgresWithURL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return db, nil
}

// OpenSQLite opens the SQLite database at dsn with foreign keys enforced. Used for
// local development and tests.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("db.Exec -> %w", err)
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return db, nil
}

// Open picks the driver named in conf.
func Open(conf *config.AppConfig) (*gorm.DB, error) {
	switch conf.Database.Driver {
	case "sqlite":
		return OpenSQLite(conf.SQLite.Path)
	case "postgres", "":
		if conf.Postgres.URL != "" {
			return OpenPostgresWithURL(conf.Postgres.URL)
		}
		return OpenPostgres(conf.Postgres)
	default:
		return nil, fmt.Errorf("unknown database driver %q", conf.Database.Driver)
	}
}
