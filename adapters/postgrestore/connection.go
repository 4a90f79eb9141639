package postgrestore

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/ddd-patterns/backend/pkg/config"
	"github.com/jmoiron/sqlx"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Options struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Debug           bool
}

func ParseFromConfig(c *config.Config) Options {
	return Options{
		DSN: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode),
		MaxOpenConns:    c.DB.MaxOpenConns,
		MaxIdleConns:    c.DB.MaxIdleConns,
		ConnMaxLifetime: time.Duration(c.DB.ConnMaxLifetime) * time.Second,
		Debug:           c.Debug,
	}
}

// NewConnection opens the gorm handle used by the customer and order stores.
func NewConnection(opts Options) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if opts.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(opts.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open gorm connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("cannot get sql.DB: %w", err)
	}
	configurePool(sqlDB, opts)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("cannot ping database: %w", err)
	}

	return db, nil
}

// NewSQLXConnection opens the lib/pq backed handle used by the product store
// and by migrations.
func NewSQLXConnection(opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlx connection: %w", err)
	}
	configurePool(db.DB, opts)

	return db, nil
}

func configurePool(db *sql.DB, opts Options) {
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
}

// Migrate applies every pending migration and returns how many ran.
func Migrate(db *sql.DB) (int, error) {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}

	n, err := migrate.Exec(db, "postgres", source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("cannot apply migrations: %w", err)
	}

	return n, nil
}
