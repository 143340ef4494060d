package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/Fjolfrin/tbtui/internal/version"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for tbtui.

Displays the current version, commit hash, build date,
and Go/platform information.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().Bool("json", false, "Print as JSON")
	return c
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(info.FullString())
	return nil
}
