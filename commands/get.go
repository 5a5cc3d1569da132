package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/planilhas/sheets-api/aggregate"
	"github.com/planilhas/sheets-api/export"
	"github.com/planilhas/sheets-api/log"
)

var GetCmd = Get{
	file:  time.Now().Format("2006-01-02T150405.json"),
	field: "",
}

// Get retrieves the aggregated spreadsheet data once and stores it to a local file.
type Get struct {
	file  string
	field string
}

func (cmd *Get) Command(options *Options) *cobra.Command {
	c := &cobra.Command{
		Use:   "get",
		Short: "Retrieves the aggregated spreadsheet data to a local file",
		Long: `Retrieves the aggregated spreadsheet data and stores it to a local file. The file format
follows the file extension: .json (the GET /all-data document), .xlsx (one worksheet per
field) or .tsv (a single field, selected with --field).`,
		Example: `  sheets-api get --file all-data.json
  sheets-api get --file all-data.xlsx
  sheets-api get --file pedidos.tsv --field pedidosDeCompraPDs`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), options)
		},
	}

	c.Flags().StringVar(&cmd.file, "file", cmd.file, "Output file. Defaults to '<yyyy-mm-dd HHmmss>.json'")
	c.Flags().StringVar(&cmd.field, "field", cmd.field, "Response field to write to a TSV file e.g. 'logins'")

	return c
}

func (cmd *Get) Execute(ctx context.Context, options *Options) error {
	if err := required("file", strings.TrimSpace(cmd.file)); err != nil {
		return err
	}

	write, err := cmd.writer()
	if err != nil {
		return err
	}

	conf, err := load(options)
	if err != nil {
		return err
	}

	fetcher, err := authenticator(conf).Authorize(ctx)
	if err != nil {
		return err
	}

	response, err := aggregate.NewAggregator(conf).Aggregate(ctx, fetcher)
	if err != nil {
		return fmt.Errorf("unable to retrieve data from spreadsheet (%v)", err)
	}

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+APP+"-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := write(tmp, response); err != nil {
		return fmt.Errorf("error creating file (%v)", err)
	}

	tmp.Close()

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	log.Infof("Retrieved spreadsheet data to file %s", cmd.file)

	return nil
}

func (cmd *Get) writer() (func(io.Writer, *aggregate.Response) error, error) {
	switch strings.ToLower(filepath.Ext(cmd.file)) {
	case ".xlsx":
		return export.XLSX, nil

	case ".tsv":
		if err := required("field", cmd.field); err != nil {
			return nil, err
		}

		return func(w io.Writer, response *aggregate.Response) error {
			field, ok := response.Field(cmd.field)
			if !ok {
				return fmt.Errorf("unknown field '%s'", cmd.field)
			}

			return export.TSV(w, field.Records)
		}, nil

	default:
		return export.JSON, nil
	}
}
