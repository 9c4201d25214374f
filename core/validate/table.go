package validate

// validateContentTable checks a contentTable/v1 payload: at least one column
// and rows of string cells. Ragged rows are tolerated here (normalization pads
// them) but reported as info so callers can see the payload was imperfect.
func validateContentTable(res *Result, obj map[string]any) {
	warnUnknownKeys(res, obj, "type", "version", "title", "columns", "rows")

	columns, ok := arrayField(obj, "columns")
	if !ok {
		res.errorf("columns is missing or invalid")
	} else {
		if len(columns) == 0 {
			res.errorf("columns must contain at least one column")
		}
		for i, col := range columns {
			if _, ok := col.(string); !ok {
				res.errorf("columns[%d] must be a string", i)
			}
		}
	}

	rows, present := obj["rows"]
	if !present {
		return
	}
	arr, ok := rows.([]any)
	if !ok {
		res.errorf("rows must be an array")
		return
	}
	for i, raw := range arr {
		row, ok := raw.([]any)
		if !ok {
			res.errorf("rows[%d] must be an array of strings", i)
			continue
		}
		for j, cell := range row {
			if _, ok := cell.(string); !ok {
				res.errorf("rows[%d][%d] must be a string", i, j)
			}
		}
		if columns != nil && len(row) != len(columns) {
			res.infof("rows[%d] has %d cells for %d columns; it will be padded or trimmed", i, len(row), len(columns))
		}
	}
}
