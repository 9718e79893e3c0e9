package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the MySQL test database. Tests that need it are
// skipped when no MySQL is listening on localhost:3306 with a
// 'rajubill_test' schema.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/rajubill_test?parseTime=true&clientFoundRows=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM Bills"); err != nil {
		t.Logf("failed to clean table Bills: %v", err)
	}

	db.Close()
}

// SetupTestTables creates the tables the tests need.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createBillsTable := `
	CREATE TABLE IF NOT EXISTS Bills (
		id VARCHAR(32) NOT NULL PRIMARY KEY,
		date VARCHAR(10) NOT NULL,
		orderNumber VARCHAR(100) NOT NULL,
		customer VARCHAR(255) NOT NULL,
		broker VARCHAR(255) NOT NULL DEFAULT '',
		mill VARCHAR(255) NOT NULL DEFAULT '',
		product VARCHAR(255) NOT NULL,
		rate VARCHAR(100) NOT NULL,
		weight VARCHAR(100) NOT NULL DEFAULT '',
		bags VARCHAR(100) NOT NULL DEFAULT '',
		termsAndConditions TEXT,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_created (createdAt)
	)`

	if _, err := db.Exec(createBillsTable); err != nil {
		t.Logf("failed to create table Bills: %v", err)
	}
}
