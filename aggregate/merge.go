package aggregate

import (
	"github.com/planilhas/sheets-api/config"
	"github.com/planilhas/sheets-api/table"
)

// Merge concatenates copies of the records from each rule source (in source order), with
// the rule field set either from another field of the record or to the source value.
func Merge(rs *ResultSet, rule config.MergeRule) ([]table.Record, error) {
	merged := []table.Record{}

	for _, source := range rule.Sources {
		records, err := rs.Get(source.Tab)
		if err != nil {
			return nil, err
		}

		for _, r := range records {
			record := r.Clone()

			if source.From != "" {
				v, _ := r.Get(source.From)
				record.Set(rule.Field, v)
			} else {
				record.Set(rule.Field, source.Value)
			}

			merged = append(merged, record)
		}
	}

	return merged, nil
}
