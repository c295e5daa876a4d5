package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"equipdash/db"
	"equipdash/internal/testutils"
	"equipdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnector_Query(t *testing.T) {
	connector, sqlDB := testutils.SetupTestConnector(t)
	day := testutils.Date(2024, 3, 10)
	testutils.InsertRecords(t, sqlDB,
		testutils.CreateTestRecord(models.StatusConnected, day),
		testutils.CreateTestRecord(models.StatusDisconnected, day),
	)
	ctx := context.Background()

	t.Run("Rows", func(t *testing.T) {
		result := connector.Query(ctx, "SELECT statusEquip, criacaoInsert, portaEquip FROM dados WHERE criacaoInsert = ? ORDER BY statusEquip", "2024-03-10")
		require.True(t, result.OK())

		assert.Equal(t, []string{"statusEquip", "criacaoInsert", "portaEquip"}, result.Table.Columns)
		require.Equal(t, 2, result.Table.Len())
		assert.Equal(t, "Conectado", result.Table.Value(0, "statusEquip"))
		assert.Equal(t, day, db.AsDate(result.Table.Value(0, "criacaoInsert")))
		assert.Equal(t, "8080", db.AsString(result.Table.Value(1, "portaEquip")))
	})

	t.Run("EmptyIsNotFailure", func(t *testing.T) {
		result := connector.Query(ctx, "SELECT * FROM dados WHERE criacaoInsert = ?", "1999-01-01")
		assert.True(t, result.OK())
		assert.True(t, result.Empty())
	})

	t.Run("QueryFailure", func(t *testing.T) {
		result := connector.Query(ctx, "SELECT * FROM missing_table")
		assert.False(t, result.OK())
		assert.True(t, result.Empty())
		assert.True(t, errors.Is(result.Err, db.ErrQuery))
	})
}

func TestConnector_ConnectionFailure(t *testing.T) {
	connector := testutils.SetupUnreachableConnector(t)

	result := connector.Query(context.Background(), "SELECT COUNT(*) AS total FROM dados")

	assert.True(t, errors.Is(result.Err, db.ErrConnection))
	assert.True(t, result.Empty())
	assert.Equal(t, int64(0), result.ScalarInt("total"))
}

func TestConnector_Timeout(t *testing.T) {
	_, sqlDB := testutils.SetupTestConnector(t)
	connector := db.NewConnectorWithDB(sqlDB, db.SQLiteDialect, time.Nanosecond, testutils.QuietLogger())

	result := connector.Query(context.Background(), "SELECT COUNT(*) AS total FROM dados")

	assert.False(t, result.OK())
}
