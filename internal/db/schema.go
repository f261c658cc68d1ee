// Package db persists the merged table into a relational sink: Postgres
// via the COPY protocol, or a local SQLite file for runs without a server.
package db

import (
	"fmt"
	"strings"

	"stressload/internal/model"
)

// SinkColumns returns the sink table's column names: run provenance
// followed by the canonical merged columns.
func SinkColumns() []string {
	return append([]string{"run_id", "source_row"}, model.Columns()...)
}

// createTableSQL renders the DDL for the sink table. idType is the SQL
// type used for run_id ("uuid" for Postgres, "text" for SQLite).
func createTableSQL(table, idType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	fmt.Fprintf(&b, "\trun_id %s NOT NULL,\n", idType)
	b.WriteString("\tsource_row BIGINT NOT NULL,\n")
	for i, name := range model.Columns() {
		sqlType := "BIGINT"
		if name == model.StressTypeColumn {
			sqlType = "TEXT"
		}
		fmt.Fprintf(&b, "\t%s %s NOT NULL", name, sqlType)
		if i < len(model.Columns())-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}
