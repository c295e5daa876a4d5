package db

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"equipdash/internal/config"

	"github.com/go-sql-driver/mysql"
)

// Dialect isolates the SQL differences between the supported databases: the
// placeholder syntax and the date functions used by the monthly queries.
type Dialect interface {
	Name() config.DatabaseDriver
	// DriverName is the database/sql driver registered for the dialect.
	DriverName() string
	// DSN builds the data source name from static configuration.
	DSN(cfg config.DatabaseConfig) string
	// Rebind rewrites '?' placeholders into the dialect's syntax.
	Rebind(query string) string
	DayOf(column string) string
	YearOf(column string) string
	MonthOf(column string) string
}

var (
	MySQLDialect    Dialect = mysqlDialect{}
	PostgresDialect Dialect = postgresDialect{}
	SQLiteDialect   Dialect = sqliteDialect{}
)

// DialectFor returns the dialect serving driver.
func DialectFor(driver config.DatabaseDriver) (Dialect, error) {
	switch driver {
	case config.MySQL:
		return MySQLDialect, nil
	case config.Postgres:
		return PostgresDialect, nil
	case config.SQLite:
		return SQLiteDialect, nil
	}
	return nil, fmt.Errorf("unsupported database driver: %s", driver)
}

type mysqlDialect struct{}

func (mysqlDialect) Name() config.DatabaseDriver { return config.MySQL }
func (mysqlDialect) DriverName() string          { return "mysql" }

func (mysqlDialect) DSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.ParseTime = true
	return mc.FormatDSN()
}

func (mysqlDialect) Rebind(query string) string   { return query }
func (mysqlDialect) DayOf(column string) string   { return "DATE(" + column + ")" }
func (mysqlDialect) YearOf(column string) string  { return "YEAR(" + column + ")" }
func (mysqlDialect) MonthOf(column string) string { return "MONTH(" + column + ")" }

type postgresDialect struct{}

func (postgresDialect) Name() config.DatabaseDriver { return config.Postgres }
func (postgresDialect) DriverName() string          { return "pgx" }

func (postgresDialect) DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Rebind numbers placeholders as $1, $2, ... leaving quoted literals untouched.
func (postgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	quoted := false
	for _, r := range query {
		switch {
		case r == '\'':
			quoted = !quoted
			b.WriteRune(r)
		case r == '?' && !quoted:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (postgresDialect) DayOf(column string) string   { return "CAST(" + column + " AS DATE)" }
func (postgresDialect) YearOf(column string) string  { return "EXTRACT(YEAR FROM " + column + ")" }
func (postgresDialect) MonthOf(column string) string { return "EXTRACT(MONTH FROM " + column + ")" }

type sqliteDialect struct{}

func (sqliteDialect) Name() config.DatabaseDriver { return config.SQLite }
func (sqliteDialect) DriverName() string          { return "sqlite3" }

func (sqliteDialect) DSN(cfg config.DatabaseConfig) string {
	return cfg.SQLitePath + "?_timeout=10000"
}

func (sqliteDialect) Rebind(query string) string  { return query }
func (sqliteDialect) DayOf(column string) string  { return "DATE(" + column + ")" }
func (sqliteDialect) YearOf(column string) string { return "CAST(strftime('%Y', " + column + ") AS INTEGER)" }
func (sqliteDialect) MonthOf(column string) string {
	return "CAST(strftime('%m', " + column + ") AS INTEGER)"
}
