package normalize

import (
	"fmt"

	"github.com/canvasmith/canvasmith/core/schema"
)

// ContentTable normalizes a decoded payload into a schema.ContentTable. Every
// row ends up with exactly one cell per column: short rows are padded with
// empty strings, long rows are trimmed.
func ContentTable(decoded any) schema.ContentTable {
	obj := asObject(decoded)
	n := noticeFrom(obj)

	columns := make([]string, 0)
	for _, col := range arr(obj, "columns") {
		columns = append(columns, stringifyCell(col))
	}
	if len(columns) == 0 {
		columns = []string{"Column 1"}
	}

	rawRows := arr(obj, "rows")
	rows := make([][]string, 0, len(rawRows))
	for _, entry := range rawRows {
		raw, ok := entry.([]any)
		if !ok {
			continue
		}
		row := make([]string, len(columns))
		for i := range columns {
			if i < len(raw) {
				row[i] = stringifyCell(raw[i])
			}
		}
		rows = append(rows, row)
	}

	return schema.ContentTable{
		Type:             "contentTable",
		Version:          "v1",
		Title:            trimmedStr(obj, "title", "Table"),
		Columns:          columns,
		Rows:             rows,
		TruncationNotice: n.text,
	}
}

// stringifyCell renders scalar cells as text. Composite values render empty
// rather than leaking JSON syntax into the table.
func stringifyCell(v any) string {
	switch cell := v.(type) {
	case string:
		return cell
	case float64:
		return fmt.Sprintf("%v", cell)
	case bool:
		return fmt.Sprintf("%v", cell)
	default:
		return ""
	}
}
