package postgres

import (
	"fmt"
	"log/slog"
	"time"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values of Settings.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Settings describe how to reach the database.
type Settings struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN renders the connection string for the configured driver.
func (s Settings) DSN() (string, error) {
	switch s.Driver {
	case DriverPostgres, "":
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			s.Host, s.Port, s.User, s.Password, s.Name, s.SSLMode,
		), nil
	case DriverSQLite:
		if s.SQLitePath == "" {
			return "", fmt.Errorf("sqlite path is required")
		}
		return s.SQLitePath, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s.Driver)
	}
}

// Open connects to the database. Driver errors such as unique violations are
// translated into gorm errors so repositories can recognise them.
func Open(s Settings, log *slog.Logger) (*gorm.DB, error) {
	dsn, err := s.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if s.Driver == DriverSQLite {
		dialector = sqlite.Open(dsn)
	} else {
		dialector = postgresdriver.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(slog.NewLogLogger(log.With("component", "gorm").Handler(), slog.LevelWarn), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", s.Driver, err)
	}

	if s.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer; transactions would otherwise wait on each other.
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
