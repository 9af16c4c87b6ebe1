package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"
)

type nopDriver struct{}

func (d nopDriver) Open(name string) (driver.Conn, error) {
	return nopConn{}, nil
}

type nopConn struct{}

func (nopConn) Prepare(query string) (driver.Stmt, error) { return nopStmt{}, nil }
func (nopConn) Close() error                              { return nil }
func (nopConn) Begin() (driver.Tx, error)                 { return nopTx{}, nil }

type nopStmt struct{}

func (nopStmt) Close() error                                    { return nil }
func (nopStmt) NumInput() int                                   { return 0 }
func (nopStmt) Exec(args []driver.Value) (driver.Result, error) { return nil, nil }
func (nopStmt) Query(args []driver.Value) (driver.Rows, error)  { return nil, nil }

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

func TestConnectEmptyURL(t *testing.T) {
	if _, err := Connect(context.Background(), "  ", DefaultServerOptions()); err == nil {
		t.Fatalf("expected error for empty DATABASE_URL")
	}
}

func TestConnectAppliesOptions(t *testing.T) {
	sql.Register("nop-connect", nopDriver{})
	orig := openDB
	openDB = func(driverName, dsn string) (*sql.DB, error) {
		return sql.Open("nop-connect", dsn)
	}
	defer func() { openDB = orig }()

	opts := Options{
		MaxOpenConns:    3,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		PingTimeout:     time.Second,
	}
	conn, err := Connect(context.Background(), "postgres://example/db", opts)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 3 {
		t.Fatalf("expected MaxOpenConnections 3, got %d", got)
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")

	opts := OptionsFromEnv(DefaultServerOptions())
	if opts.MaxOpenConns != 7 {
		t.Fatalf("expected MaxOpenConns 7, got %d", opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime != 90*time.Second {
		t.Fatalf("expected ConnMaxLifetime 90s, got %v", opts.ConnMaxLifetime)
	}
	if opts.MaxIdleConns != DefaultServerOptions().MaxIdleConns {
		t.Fatalf("expected untouched MaxIdleConns default")
	}
}
