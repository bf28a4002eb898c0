package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createClaimTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE claims (
		id TEXT PRIMARY KEY,
		claim_id INTEGER NOT NULL,
		claim_code TEXT UNIQUE NOT NULL,
		payer_address TEXT NOT NULL,
		token TEXT NOT NULL,
		amount TEXT NOT NULL,
		expiry DATETIME NOT NULL,
		recipient TEXT,
		secret_hash TEXT,
		status TEXT NOT NULL,
		tx_hash_create TEXT NOT NULL,
		tx_hash_claim TEXT,
		tx_hash_reclaim TEXT,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		wallet_address TEXT UNIQUE NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
