package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"equipdash/internal/config"
	"equipdash/internal/metrics"
	"equipdash/internal/util"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// Connector runs read-only queries against the dados table. Every query
// acquires its own connection and releases it before returning, whatever the
// outcome; failures never reach the caller as errors, only as tagged Results.
type Connector struct {
	db      *sql.DB
	dialect Dialect
	timeout time.Duration
	log     logrus.FieldLogger
}

// NewConnector prepares a connection pool from static configuration. No
// connection is made here: an unreachable database surfaces per query.
func NewConnector(cfg config.DatabaseConfig, log logrus.FieldLogger) (*Connector, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(dialect.DriverName(), dialect.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect.Name(), err)
	}

	return NewConnectorWithDB(sqlDB, dialect, cfg.QueryTimeout, log), nil
}

// NewConnectorWithDB wraps an already opened database.
func NewConnectorWithDB(sqlDB *sql.DB, dialect Dialect, timeout time.Duration, log logrus.FieldLogger) *Connector {
	return &Connector{
		db:      sqlDB,
		dialect: dialect,
		timeout: timeout,
		log:     log.WithField("component", "db"),
	}
}

func (c *Connector) Dialect() Dialect {
	return c.dialect
}

// Close closes the underlying pool
func (c *Connector) Close() error {
	return c.db.Close()
}

// Query executes query with positional '?' arguments and returns its rows.
func (c *Connector) Query(ctx context.Context, query string, args ...interface{}) Result {
	start := time.Now()
	defer func() {
		metrics.QueryHistogram.Observe(time.Since(start).Seconds())
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	conn, err := util.RetryOnLockWithResult(ctx, c.log, func() (*sql.Conn, error) {
		return c.db.Conn(ctx)
	})
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(metrics.OutcomeConnectionError).Inc()
		return c.fail(fmt.Errorf("%w: %w", ErrConnection, err), query)
	}
	defer conn.Close()

	table, err := util.RetryOnLockWithResult(ctx, c.log, func() (Table, error) {
		return readTable(ctx, conn, c.dialect.Rebind(query), args)
	})
	if err != nil {
		metrics.QueriesTotal.WithLabelValues(metrics.OutcomeQueryError).Inc()
		return c.fail(fmt.Errorf("%w: %w", ErrQuery, err), query)
	}

	metrics.QueriesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	return Result{Table: table}
}

func (c *Connector) fail(err error, query string) Result {
	c.log.WithError(err).WithField("query", compact(query)).Error("dados query failed, rendering empty result")
	return Result{Err: err}
}

func readTable(ctx context.Context, conn *sql.Conn, query string, args []interface{}) (Table, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return Table{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Table{}, err
	}

	table := Table{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Table{}, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return Table{}, err
	}

	return table, nil
}

func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
