package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planilhas/sheets-api/google"
	"github.com/planilhas/sheets-api/log"
)

var CheckCmd = Check{}

// Check verifies that every configured tab exists in the spreadsheet.
type Check struct {
}

func (cmd *Check) Command(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Checks the configured tabs against the spreadsheet",
		Long:  "Retrieves the list of worksheets in the spreadsheet and reports any configured tab that does not exist",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), options)
		},
	}
}

func (cmd *Check) Execute(ctx context.Context, options *Options) error {
	conf, err := load(options)
	if err != nil {
		return err
	}

	client, err := google.Authorize(ctx, conf.Credentials, conf.Scope)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	sheets, err := google.NewSheets(ctx, client, conf.Endpoint)
	if err != nil {
		return err
	}

	tabs, err := sheets.Tabs(ctx, conf.SpreadsheetID())
	if err != nil {
		return err
	}

	configured := conf.Tabs.List()
	missing := unmatched(configured, tabs)

	for _, tab := range missing {
		log.Warnf("tab '%s' not found in spreadsheet %s", tab, conf.SpreadsheetID())
	}

	if len(missing) > 0 {
		return fmt.Errorf("%v of %v configured tabs not found", len(missing), len(configured))
	}

	log.Infof("all %v configured tabs found in spreadsheet %s", len(configured), conf.SpreadsheetID())

	return nil
}

// unmatched returns the configured tabs with no matching worksheet. An exact match is
// required: tabs that match only after normalisation are reported with the worksheet name.
func unmatched(configured []string, worksheets []string) []string {
	missing := []string{}

	for _, tab := range configured {
		found := false
		for _, w := range worksheets {
			if tab == w {
				found = true
				break
			}

			if normalise(tab) == normalise(w) {
				log.Warnf("tab '%s' does not exactly match worksheet '%s'", tab, w)
			}
		}

		if !found {
			missing = append(missing, tab)
		}
	}

	return missing
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
