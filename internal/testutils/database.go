package testutils

import (
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"equipdash/db"
	"equipdash/internal/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func SetupTestDatabase(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	testDB, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_timeout=10000")
	require.NoError(t, err)
	t.Cleanup(func() { testDB.Close() })

	err = db.InitializeSchema(testDB)
	require.NoError(t, err)

	return testDB
}

// SetupTestConnector returns a connector over a fresh dados table.
func SetupTestConnector(t *testing.T) (*db.Connector, *sql.DB) {
	testDB := SetupTestDatabase(t)
	return db.NewConnectorWithDB(testDB, db.SQLiteDialect, 0, QuietLogger()), testDB
}

// SetupUnreachableConnector returns a connector whose every query fails to
// connect, the way an offline database server does.
func SetupUnreachableConnector(t *testing.T) *db.Connector {
	cfg := GetTestConfig()
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "missing", "dir", "test.db")

	connector, err := db.NewConnector(cfg.Database, QuietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { connector.Close() })
	return connector
}

func QuietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func GetTestConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:     config.SQLite,
			Name:       "dashboard_test",
			SQLitePath: ":memory:",
		},
		Port:      "0",
		LogLevel:  "error",
		LogFormat: "text",
	}
}
