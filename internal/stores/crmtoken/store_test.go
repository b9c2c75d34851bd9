package crmtoken

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// stubConnector backs a database/sql handle that never reaches a real
// database, so statement generation can be checked in dry-run mode.
type stubConnector struct{}

func (stubConnector) Connect(context.Context) (driver.Conn, error) { return stubConn{}, nil }
func (stubConnector) Driver() driver.Driver                        { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

// dryRunStore builds a Store whose queries are generated but never
// executed
func dryRunStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sql.OpenDB(stubConnector{}),
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return &Store{db: db}
}

func TestScopedByUser(t *testing.T) {
	store := dryRunStore(t)

	t.Run("global scope binds the empty user id", func(t *testing.T) {
		tx := store.scopedByUser("").Limit(1).First(&CredentialModel{})

		sql := tx.Statement.SQL.String()
		assert.Contains(t, sql, "`zoho_tokens`")
		assert.Contains(t, sql, "user_id = ?")
		assert.Contains(t, tx.Statement.Vars, "")
	})

	t.Run("user scope binds the user id", func(t *testing.T) {
		tx := store.scopedByUser("user-42").Limit(1).First(&CredentialModel{})

		assert.Contains(t, tx.Statement.SQL.String(), "user_id = ?")
		assert.Contains(t, tx.Statement.Vars, "user-42")
	})
}
