package database

import (
	"context"
	"embed"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/pkm-kampus/portal/core"
)

// Engines
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineMemory   = "memory"
)

//go:embed migrations
var migrationsFS embed.FS

var errUnknownEngine = errors.New("unknown database engine")

// DSN builds the driver connection string for conf.
func DSN(conf core.DatabaseConfig) (string, error) {
	switch conf.Engine {
	case EngineMySQL:
		mc := mysql.NewConfig()
		mc.User = conf.User
		mc.Passwd = conf.Password
		mc.Net = "tcp"
		mc.Addr = conf.Address()
		mc.DBName = conf.Name
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		if !conf.DisableTLS {
			mc.TLSConfig = "true"
		}
		return mc.FormatDSN(), nil
	case EnginePostgres:
		sslMode := "require"
		if conf.DisableTLS {
			sslMode = "disable"
		}
		q := make(url.Values)
		q.Set("sslmode", sslMode)
		q.Set("timezone", "utc")

		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(conf.User, conf.Password),
			Host:     conf.Host + ":" + strconv.Itoa(conf.Port),
			Path:     conf.Name,
			RawQuery: q.Encode(),
		}
		return u.String(), nil
	default:
		return "", errors.Wrap(errUnknownEngine, conf.Engine)
	}
}

// Open connects to the configured database and waits for it to answer.
func Open(ctx context.Context, conf core.DatabaseConfig) (*sqlx.DB, error) {
	dsn, err := DSN(conf)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open(conf.Engine, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if conf.MaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.MaxOpenConns)
		db.SetMaxIdleConns(conf.MaxOpenConns)
	}
	if err = ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping cancelled")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// MigrationsDir is the embedded goose directory for a driver.
func MigrationsDir(engine string) string {
	return "migrations/" + engine
}

// SetupGoose points goose at the embedded migrations for engine.
func SetupGoose(engine string) error {
	goose.SetBaseFS(migrationsFS)
	return goose.SetDialect(engine)
}

// Migrate applies every pending migration.
func Migrate(db *sqlx.DB) error {
	if err := SetupGoose(db.DriverName()); err != nil {
		return errors.Wrap(err, "setting goose dialect")
	}
	if err := goose.Up(db.DB, MigrationsDir(db.DriverName())); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}
