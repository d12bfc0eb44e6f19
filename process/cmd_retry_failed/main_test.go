package main

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"testing"
)

// brokenDriver yields one good row and then fails the cursor, mimicking a
// connection dropped mid-iteration.
type brokenDriver struct{}

func (brokenDriver) Open(name string) (driver.Conn, error) { return &brokenConn{}, nil }

type brokenConn struct{}

func (c *brokenConn) Prepare(query string) (driver.Stmt, error) { return &brokenStmt{}, nil }
func (c *brokenConn) Close() error                              { return nil }
func (c *brokenConn) Begin() (driver.Tx, error)                 { return nil, errors.New("not supported") }

type brokenStmt struct{}

func (s *brokenStmt) Close() error  { return nil }
func (s *brokenStmt) NumInput() int { return -1 }
func (s *brokenStmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, errors.New("not supported")
}
func (s *brokenStmt) Query(args []driver.Value) (driver.Rows, error) { return &brokenRows{}, nil }

type brokenRows struct{ n int }

func (r *brokenRows) Columns() []string {
	return []string{"id", "file_name", "store_path", "user_id"}
}
func (r *brokenRows) Close() error { return nil }
func (r *brokenRows) Next(dest []driver.Value) error {
	r.n++
	switch r.n {
	case 1:
		dest[0] = int64(1)
		dest[1] = "note.png"
		dest[2] = "abc.png"
		dest[3] = int64(7)
		return nil
	case 2:
		return errors.New("connection reset")
	}
	return io.EOF
}

var driverSeq int

func openBrokenDB(t *testing.T) *sql.DB {
	t.Helper()
	driverSeq++
	name := fmt.Sprintf("broken-rows-%d", driverSeq)
	sql.Register(name, brokenDriver{})
	db, err := sql.Open(name, "")
	if err != nil {
		t.Fatalf("open fake db: %v", err)
	}
	return db
}

func TestCollectFailedUploadsSurfacesCursorError(t *testing.T) {
	db := openBrokenDB(t)
	defer db.Close()
	rows, err := db.Query("SELECT id, file_name, store_path, user_id FROM uploads")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()
	todo, err := collectFailedUploads(rows)
	if err == nil {
		t.Fatalf("expected cursor error to surface, got %d rows", len(todo))
	}
}
