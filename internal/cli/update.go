package cli

import (
	"github.com/spf13/cobra"

	"github.com/stellarview/apod/internal/display"
	"github.com/stellarview/apod/internal/updater"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		out("apod %s\n", version)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	RunE:  runUpdateCheck,
}

var updateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check for a newer release",
	RunE:  runUpdateCheck,
}

func runUpdateCheck(cmd *cobra.Command, args []string) error {
	result, err := updater.NewClient().Check(cmd.Context(), version)
	if err != nil {
		return err
	}

	if jsonOutput {
		return display.OutputJSON(outWriter, struct {
			Current   string `json:"current_version"`
			Latest    string `json:"latest_version"`
			Available bool   `json:"update_available"`
			URL       string `json:"release_url,omitempty"`
		}{result.CurrentVersion, result.LatestVersion, result.UpdateAvailable, result.ReleaseURL})
	}

	if result.UpdateAvailable {
		out("Update available: %s → %s\n", result.CurrentVersion, result.LatestVersion)
		if result.ReleaseURL != "" {
			out("  %s\n", result.ReleaseURL)
		}
	} else {
		out("apod %s is up to date\n", result.CurrentVersion)
	}
	return nil
}

func init() {
	updateCmd.AddCommand(updateCheckCmd)
}
