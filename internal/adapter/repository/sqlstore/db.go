package sqlstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Supported database/sql driver names
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

//go:embed migrations
var migrations embed.FS

// DB wraps the database connection
type DB struct {
	*sql.DB
	driver string
}

// NewDB creates a new database connection
// For postgres, connectionString is e.g. "host=localhost port=5432 user=postgres password=postgres dbname=wealthcast sslmode=disable"
// For sqlite3, it is a file DSN such as "file:wealthcast.db?_foreign_keys=on"
func NewDB(driver, connectionString string) (*DB, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1) // sqlite
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

// Driver returns the database/sql driver name
func (db *DB) Driver() string {
	return db.driver
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Migrate applies every pending up migration for driver
// It runs on its own connection because closing the migrator closes the instance
func Migrate(driver, connectionString string) error {
	conn, err := sql.Open(driver, connectionString)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}

	var instance database.Driver
	switch driver {
	case DriverPostgres:
		instance, err = migratepostgres.WithInstance(conn, &migratepostgres.Config{})
	case DriverSQLite:
		instance, err = migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to prepare migration driver: %w", err)
	}

	source, err := iofs.New(migrations, "migrations/"+driver)
	if err != nil {
		instance.Close()
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		source.Close()
		instance.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
