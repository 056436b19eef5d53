//go:build testutil

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/mind-engage/mindengage-marks/internal/db"
)

type DBHandle struct {
	DB     *sql.DB
	cancel func()
	stop   func(context.Context) error
}

func (h *DBHandle) Close() {
	if h.DB != nil {
		_ = h.DB.Close()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

// Start runs a throwaway postgres container with the results schema applied.
func Start(ctx context.Context) (*DBHandle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	pg, err := postgres.RunContainer(ctx,
		tc.WithImage("postgres:17-alpine"),
		postgres.WithDatabase("marks"),
		postgres.WithUsername("marks"),
		postgres.WithPassword("marks"),
	)
	if err != nil {
		cancel()
		return nil, err
	}

	fail := func(err error) (*DBHandle, error) {
		_ = pg.Terminate(ctx)
		cancel()
		return nil, err
	}

	uri, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(err)
	}
	h, err := sql.Open("postgres", uri)
	if err != nil {
		return fail(err)
	}
	if err := waitReady(ctx, h); err != nil {
		_ = h.Close()
		return fail(err)
	}
	if err := db.EnsureSchema(ctx, h, db.DriverPostgres); err != nil {
		_ = h.Close()
		return fail(err)
	}

	return &DBHandle{
		DB:     h,
		cancel: cancel,
		stop:   pg.Terminate,
	}, nil
}

func waitReady(ctx context.Context, h *sql.DB) error {
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		if err := h.PingContext(ctx); err == nil {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return errors.New("db not ready")
}
