package table

import (
	"fmt"
)

// MakeRecords converts a worksheet grid into records. The first row is the header row and
// every subsequent row that has at least one non-empty cell becomes a record keyed by the
// header. Cells missing from short rows default to "" and cells beyond the header are
// discarded.
func MakeRecords(rows [][]any) []Record {
	records := []Record{}

	if len(rows) == 0 {
		return records
	}

	// ... header
	header := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		header[i] = cell(v)
	}

	// ... records
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}

		record := Record{}
		for i, h := range header {
			v := ""
			if i < len(row) {
				v = cell(row[i])
			}

			record.Set(h, v)
		}

		records = append(records, record)
	}

	return records
}

// Header returns the union of the record keys, in first-seen order.
func Header(records []Record) []string {
	header := []string{}
	seen := map[string]bool{}

	for _, r := range records {
		for _, k := range r.keys {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	return header
}

func blank(row []any) bool {
	for _, v := range row {
		if cell(v) != "" {
			return false
		}
	}

	return true
}

func cell(v any) string {
	switch s := v.(type) {
	case nil:
		return ""

	case string:
		return s

	default:
		return fmt.Sprintf("%v", v)
	}
}
