// Package export writes the aggregated spreadsheet data to local files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/planilhas/sheets-api/aggregate"
	"github.com/planilhas/sheets-api/table"
)

func JSON(w io.Writer, response *aggregate.Response) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(response)
}

// TSV writes a list of records as a tab separated file with a header row. Records without a
// value for a column are written with an empty cell.
func TSV(w io.Writer, records []table.Record) error {
	header := table.Header(records)
	if len(header) == 0 {
		return fmt.Errorf("no data")
	}

	tsv := csv.NewWriter(w)
	tsv.Comma = '\t'

	if err := tsv.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		record := make([]string, len(header))
		for i, h := range header {
			v, _ := r.Get(h)
			record[i] = clean(v)
		}

		if err := tsv.Write(record); err != nil {
			return err
		}
	}

	tsv.Flush()

	return tsv.Error()
}

// XLSX writes the response as an Excel workbook with one worksheet per response field.
func XLSX(w io.Writer, response *aggregate.Response) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, field := range response.Fields() {
		sheet := field.Name
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		header := table.Header(field.Records)
		if len(header) == 0 {
			continue
		}

		row := make([]any, len(header))
		for j, h := range header {
			row[j] = h
		}

		if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
			return err
		}

		for k, r := range field.Records {
			row := make([]any, len(header))
			for j, h := range header {
				row[j], _ = r.Get(h)
			}

			cell, err := excelize.CoordinatesToCellName(1, k+2)
			if err != nil {
				return err
			}

			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

func clean(v string) string {
	return strings.TrimSpace(strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(v))
}
