package testutils

import (
	"database/sql"
	"testing"
	"time"

	"equipdash/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Date builds a UTC calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestRecord returns a record created, last connected and last
// trafficking on day.
func CreateTestRecord(status models.EquipmentStatus, day time.Time) models.EquipmentRecord {
	return models.EquipmentRecord{
		Model:              "ONT-HG8245",
		SerialNumber:       "SN-" + uuid.New().String()[:8],
		IPAddress:          "10.0.0.10",
		Port:               "8080",
		Status:             status,
		LastConnectionDate: day,
		LastConnectionTime: "08:15:00",
		LastTrafficDate:    day,
		CreatedOn:          day,
	}
}

func InsertRecords(t *testing.T, sqlDB *sql.DB, records ...models.EquipmentRecord) {
	for _, r := range records {
		_, err := sqlDB.Exec(`
		INSERT INTO dados (modeloEquip, numSerieEquip, ipEquip, portaEquip, statusEquip,
			dataUltimaConexao, horaUltimaconexao, dataUltimoRegistro, criacaoInsert)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.Model, r.SerialNumber, r.IPAddress, r.Port, string(r.Status),
			nullDate(r.LastConnectionDate), r.LastConnectionTime, nullDate(r.LastTrafficDate),
			models.FormatDate(r.CreatedOn),
		)
		require.NoError(t, err)
	}
}

func nullDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return models.FormatDate(t)
}
