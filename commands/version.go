package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// VERSION is set with -ldflags "-X github.com/planilhas/sheets-api/commands.VERSION=v1.0.0"
var VERSION = ""

// VersionCmd is an initialized Version command for the main() command list
var VersionCmd = Version{}

// Version is a CLI command implementation that displays the CLI version information.
type Version struct {
}

func (c *Version) Command(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Long:  "Displays the sheets-api version in the format v<major>.<minor>.<build> e.g. v1.00.10",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.Version())
		},
	}
}

// Version returns the linker supplied version, falling back on the module version.
func (c *Version) Version() string {
	if VERSION != "" {
		return VERSION
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}
