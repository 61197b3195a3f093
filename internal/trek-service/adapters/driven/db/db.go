package db

import (
	"context"
	"fmt"
	"sync"

	"trek-tango/internal/config"
	"trek-tango/internal/mylogger"

	"github.com/jackc/pgx/v5"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id                 TEXT PRIMARY KEY,
	user_id                    TEXT NOT NULL,
	username                   TEXT NOT NULL,
	list_of_places             JSONB NOT NULL,
	detected                   BOOLEAN NOT NULL,
	confirmed_starter_location JSONB NOT NULL,
	points                     INT NOT NULL DEFAULT 0,
	session_complete           BOOLEAN NOT NULL DEFAULT FALSE,
	created_at                 TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_sessions_username_incomplete
	ON sessions (username, created_at DESC) WHERE NOT session_complete;
`

type DB struct {
	ctx   context.Context
	cfg   *config.DBconfig
	mylog mylogger.Logger
	conn  *pgx.Conn
	mu    *sync.Mutex
}

// New opens a single connection and makes sure the sessions table exists.
func New(ctx context.Context, dbCfg *config.DBconfig, mylog mylogger.Logger) (*DB, error) {
	d := &DB{
		ctx:   ctx,
		cfg:   dbCfg,
		mylog: mylog,
		mu:    &sync.Mutex{},
	}

	if err := d.connect(); err != nil {
		return nil, err
	}
	if _, err := d.conn.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %v", err)
	}

	return d, nil
}

func (d *DB) Close() error {
	if err := d.conn.Close(d.ctx); err != nil {
		return fmt.Errorf("close database connection: %v", err)
	}
	return nil
}

// IsAlive pings the DB, reconnecting once if the ping fails.
func (d *DB) IsAlive() error {
	if d.conn == nil {
		return fmt.Errorf("DB is not initialized")
	}
	if err := d.conn.Ping(d.ctx); err != nil {
		if connectionErr := d.connect(); connectionErr != nil {
			return fmt.Errorf("ping failed: %w", err)
		}
	}
	return nil
}

func (d *DB) connect() error {
	conn, err := pgx.Connect(d.ctx, fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.cfg.User,
		d.cfg.Password,
		d.cfg.Host,
		d.cfg.Port,
		d.cfg.Database,
	))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}
	d.conn = conn
	return nil
}
