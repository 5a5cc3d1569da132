package aggregate

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/planilhas/sheets-api/table"
)

// ResultSet maps tab names to the records read from each tab. Tab names are compared in
// Unicode NFC form so that e.g. "Inspeções" matches regardless of how the accents were
// encoded in the configuration.
type ResultSet struct {
	tabs    []string
	records map[string][]table.Record
}

func NewResultSet() *ResultSet {
	return &ResultSet{
		tabs:    []string{},
		records: map[string][]table.Record{},
	}
}

func (rs *ResultSet) Put(tab string, records []table.Record) {
	key := norm.NFC.String(tab)
	if _, ok := rs.records[key]; !ok {
		rs.tabs = append(rs.tabs, tab)
	}

	if records == nil {
		records = []table.Record{}
	}

	rs.records[key] = records
}

// Get returns the records for a tab. A tab that was never fetched is an error.
func (rs *ResultSet) Get(tab string) ([]table.Record, error) {
	if records, ok := rs.records[norm.NFC.String(tab)]; ok {
		return records, nil
	}

	return nil, fmt.Errorf("unknown tab '%s'", tab)
}

func (rs *ResultSet) Len() int {
	return len(rs.tabs)
}
