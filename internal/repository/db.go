package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/apx-soporte/warranty-tracker/gen/ent"
	"github.com/apx-soporte/warranty-tracker/internal/common"
)

// Open connects the store. SQLite (the default deployment, a single file
// next to the daemon) goes through modernc's pure-Go driver; Postgres goes
// through a pgx pool wrapped for Ent.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *sql.DB, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return openSQLite(cfg, logger)
	case "postgres":
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openSQLite(cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *sql.DB, error) {
	logger.Info("opening sqlite database", "dsn", cfg.DSN)
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, nil, err
	}
	// modernc's driver is not safe for concurrent writers on one file.
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	return ent.NewClient(ent.Driver(drv)), db, nil
}

func openPostgres(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *sql.DB, error) {
	logger.Info("connecting to postgres", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse postgres dsn", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "warranty-tracker"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		return nil, nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	return ent.NewClient(ent.Driver(drv)), db, nil
}

// Migrate creates or patches the schema in place, the same
// create-if-missing behavior the store had from its first release.
func Migrate(ctx context.Context, client *ent.Client, logger *slog.Logger) error {
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		return common.NewAppError("DB_MIGRATE", "schema migration failed", err)
	}
	logger.Info("schema up to date")
	return nil
}

// Close closes the database connections gracefully
func Close(entc *ent.Client, db *sql.DB, logger *slog.Logger) {
	logger.Info("closing database connections")
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	} else if db != nil {
		_ = db.Close()
	}
	logger.Info("database connections closed")
}

// HealthCheck pings through database/sql to catch DSN issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		return common.NewAppError("DB_PING", "database unreachable", err)
	}
	logger.Debug("database ping successful")
	return nil
}
