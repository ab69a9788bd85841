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

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		phone TEXT UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_verified BOOLEAN NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE verification_codes (
		id TEXT PRIMARY KEY,
		email TEXT,
		phone TEXT,
		code TEXT NOT NULL,
		is_used BOOLEAN NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCatalogTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		phone TEXT,
		email TEXT,
		logo TEXT,
		address TEXT,
		owner_id TEXT,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE branches (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		phone TEXT,
		url TEXT,
		latitude REAL,
		longitude REAL,
		rating REAL,
		company_id TEXT NOT NULL,
		owner_id TEXT,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE menus (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		logo TEXT,
		branch_id TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (name, branch_id)
	);`)
	mustExec(t, db, `CREATE TABLE menu_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		logo TEXT,
		description TEXT,
		price INTEGER NOT NULL CHECK (price >= 0),
		is_available BOOLEAN NOT NULL,
		menu_id TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBasketTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE baskets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		menu_item_id TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0 AND quantity <= 99),
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, menu_item_id)
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		user_id TEXT NOT NULL,
		branch_id TEXT NOT NULL,
		status TEXT NOT NULL,
		total_amount INTEGER NOT NULL,
		special_instructions TEXT,
		delivery_address TEXT,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		menu_item_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price INTEGER NOT NULL,
		total_price INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL UNIQUE,
		intent_id TEXT NOT NULL UNIQUE,
		client_secret TEXT,
		amount INTEGER NOT NULL,
		currency TEXT NOT NULL,
		status TEXT NOT NULL,
		failure_reason TEXT,
		receipt_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
