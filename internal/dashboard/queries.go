package dashboard

import (
	"fmt"

	"equipdash/db"
	"equipdash/models"
)

const recordColumns = `modeloEquip, numSerieEquip, ipEquip, portaEquip, statusEquip,
	dataUltimaConexao, horaUltimaconexao, dataUltimoRegistro, criacaoInsert`

const (
	recordsByCreationQuery = `
	SELECT ` + recordColumns + `
	FROM dados
	WHERE criacaoInsert = ?
	ORDER BY dataUltimaConexao DESC, horaUltimaconexao DESC, dataUltimoRegistro DESC`

	recordsByLastConnectionQuery = `
	SELECT ` + recordColumns + `
	FROM dados
	WHERE dataUltimaConexao = ?
	ORDER BY dataUltimaConexao DESC, horaUltimaconexao DESC`

	trafficTotalQuery = `
	SELECT COUNT(*) AS equips
	FROM dados
	WHERE dataUltimaConexao = ? AND dataUltimoRegistro <= ?`

	trafficRecentQuery = `
	SELECT COUNT(*) AS equips
	FROM dados
	WHERE dataUltimaConexao = ? AND (dataUltimoRegistro = ? OR dataUltimoRegistro = ?)`
)

// Date columns a daily count can be filtered on.
const (
	byCreation       = "criacaoInsert"
	byLastConnection = "dataUltimaConexao"
)

// countQuery counts rows whose dateColumn equals a date parameter, optionally
// restricted to one status (passed as the first parameter).
func countQuery(dateColumn string, status models.EquipmentStatus) string {
	where := dateColumn + " = ?"
	if status != "" {
		where = "statusEquip = ? AND " + where
	}
	return fmt.Sprintf(`
	SELECT COUNT(*) AS equips
	FROM dados
	WHERE %s`, where)
}

// perDayQuery counts rows per creation day inside one (year, month).
func perDayQuery(d db.Dialect, status models.EquipmentStatus) string {
	day := d.DayOf("criacaoInsert")
	where := d.YearOf("criacaoInsert") + " = ? AND " + d.MonthOf("criacaoInsert") + " = ?"
	if status != "" {
		where = "statusEquip = ? AND " + where
	}
	return fmt.Sprintf(`
	SELECT %s AS day, COUNT(*) AS equips
	FROM dados
	WHERE %s
	GROUP BY %s
	ORDER BY day`, day, where, day)
}

// averageQuery averages the per-creation-value counts of one (year, month).
// The inner query groups by the full creation value, so every distinct
// creation value contributes one sample.
func averageQuery(d db.Dialect, status models.EquipmentStatus) string {
	inner := ""
	if status != "" {
		inner = "WHERE statusEquip = ?"
	}
	return fmt.Sprintf(`
	SELECT AVG(equips) AS average
	FROM (
		SELECT criacaoInsert, COUNT(*) AS equips
		FROM dados
		%s
		GROUP BY criacaoInsert
	) AS per_creation
	WHERE %s = ? AND %s = ?`, inner, d.YearOf("criacaoInsert"), d.MonthOf("criacaoInsert"))
}

// statusArgs prefixes args with status when the query filters on it.
func statusArgs(status models.EquipmentStatus, args ...interface{}) []interface{} {
	if status == "" {
		return args
	}
	return append([]interface{}{string(status)}, args...)
}

func recordsFrom(table db.Table) []models.EquipmentRecord {
	records := make([]models.EquipmentRecord, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		records = append(records, models.EquipmentRecord{
			Model:              db.AsString(table.Value(i, "modeloEquip")),
			SerialNumber:       db.AsString(table.Value(i, "numSerieEquip")),
			IPAddress:          db.AsString(table.Value(i, "ipEquip")),
			Port:               db.AsString(table.Value(i, "portaEquip")),
			Status:             models.EquipmentStatus(db.AsString(table.Value(i, "statusEquip"))),
			LastConnectionDate: db.AsDate(table.Value(i, "dataUltimaConexao")),
			LastConnectionTime: table.Value(i, "horaUltimaconexao"),
			LastTrafficDate:    db.AsDate(table.Value(i, "dataUltimoRegistro")),
			CreatedOn:          db.AsDate(table.Value(i, "criacaoInsert")),
		})
	}
	return records
}
