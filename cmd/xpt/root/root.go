package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "xpt",
	Short:         "XP & consumption tracker — local daily ledger",
	Long:          "xpt keeps a local ledger of daily XP tasks and consumption quantities, with rollups, cost estimates and reward checks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLogCmd(),
		newTrackCmd(),
		newStatsCmd(),
		newRewardsCmd(),
		newMissionsCmd(),
		newCatalogCmd(),
		newStatusCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
