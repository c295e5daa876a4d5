package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ConnectToSQLite initializes and returns a SQLite connection
func ConnectToSQLite(dbPath string) (*sql.DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for SQLite: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return db, nil
}

// InitializeSchema creates the dados table for local development and tests.
// Production databases are provisioned externally.
func InitializeSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS dados (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		modeloEquip TEXT,
		numSerieEquip TEXT,
		ipEquip TEXT,
		portaEquip INTEGER,
		statusEquip TEXT NOT NULL,
		dataUltimaConexao DATE,
		horaUltimaconexao TEXT,
		dataUltimoRegistro DATE,
		criacaoInsert DATE NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create dados table: %w", err)
	}

	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_dados_criacao ON dados (criacaoInsert)`,
		`CREATE INDEX IF NOT EXISTS idx_dados_ultima_conexao ON dados (dataUltimaConexao)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create dados index: %w", err)
		}
	}

	return nil
}
