package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ConfigCmd = ShowConfig{
	out: os.Stdout,
}

// ShowConfig prints the effective configuration.
type ShowConfig struct {
	out io.Writer
}

func (cmd *ShowConfig) Command(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Displays the effective configuration",
		Long:  "Displays the configuration resulting from the defaults, the configuration file and the environment, in YAML format",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Execute(c.Context(), options)
		},
	}
}

func (cmd *ShowConfig) Execute(ctx context.Context, options *Options) error {
	conf, err := load(options)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.out)
	encoder.SetIndent(2)

	if err := encoder.Encode(conf); err != nil {
		return fmt.Errorf("error formatting configuration (%v)", err)
	}

	return encoder.Close()
}
