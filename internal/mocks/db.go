package mocks

import (
	"database/sql"
	"database/sql/driver"
	"errors"
)

// stubDriver backs NewStubDB. Its connections support only transaction
// control, which is all RunInTransaction needs when the stores themselves
// are mocked.
type stubDriver struct{}

func (stubDriver) Open(name string) (driver.Conn, error) {
	return &stubConn{}, nil
}

type stubConn struct{}

func (*stubConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("stub db does not support statements")
}

func (*stubConn) Close() error {
	return nil
}

func (*stubConn) Begin() (driver.Tx, error) {
	return stubTx{}, nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func init() {
	sql.Register("stub", stubDriver{})
}

// NewStubDB returns a real *sql.DB whose transactions begin, commit and roll
// back without a database. Services that wrap store calls in
// store.RunInTransaction can be tested against it together with the mock
// stores above.
func NewStubDB() *sql.DB {
	db, err := sql.Open("stub", "")
	if err != nil {
		// sql.Open with a registered driver cannot fail.
		panic(err)
	}
	return db
}
