package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planilhas/sheets-api/aggregate"
	"github.com/planilhas/sheets-api/httpd"
)

var ServeCmd = Serve{
	bind: "",
}

// Serve runs the HTTP server that serves GET /all-data.
type Serve struct {
	bind string
}

func (cmd *Serve) Command(options *Options) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Runs the HTTP server",
		Long:  "Runs the HTTP server that returns the aggregated spreadsheet data from GET /all-data",
		Example: `  sheets-api serve --bind :3001
  sheets-api --config /usr/local/etc/sheets-api/sheets-api.yaml --debug serve`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), options)
		},
	}

	c.Flags().StringVar(&cmd.bind, "bind", cmd.bind, "HTTP bind address e.g. ':3001'. Overrides the configured bind address")

	return c
}

func (cmd *Serve) Execute(ctx context.Context, options *Options) error {
	conf, err := load(options)
	if err != nil {
		return err
	}

	bind := conf.HTTP.Bind
	if cmd.bind != "" {
		bind = cmd.bind
	}

	server := httpd.Server{
		Bind:           bind,
		AllowedOrigins: conf.HTTP.AllowedOrigins,
		MaxConnections: conf.HTTP.MaxConnections,
		Authenticator:  authenticator(conf),
		Aggregator:     aggregate.NewAggregator(conf),
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.Run(ctx)
}
