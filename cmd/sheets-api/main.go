package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/planilhas/sheets-api/commands"
	"github.com/planilhas/sheets-api/log"
)

var options = commands.Options{
	Config: "",
	Debug:  false,
}

func main() {
	root := &cobra.Command{
		Use:   commands.APP,
		Short: "Serves the planning spreadsheet tabs as a single JSON document",
		Long: `sheets-api reads a fixed set of worksheets from a Google Sheets spreadsheet and serves
them, with the derived task recipe and purchase order lists, from GET /all-data.

Without a command, sheets-api runs the HTTP server.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.ServeCmd.Execute(cmd.Context(), &options)
		},
	}

	root.PersistentFlags().StringVar(&options.Config, "config", options.Config, "Configuration file path")
	root.PersistentFlags().BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")

	root.AddCommand(
		commands.ServeCmd.Command(&options),
		commands.GetCmd.Command(&options),
		commands.CheckCmd.Command(&options),
		commands.ConfigCmd.Command(&options),
		commands.VersionCmd.Command(&options),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
