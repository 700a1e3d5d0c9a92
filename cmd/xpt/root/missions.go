package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "Inspect or reset the one-time mission set",
	}
	cmd.AddCommand(newMissionsListCmd(), newMissionsResetCmd())
	return cmd
}

func newMissionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List retired one-time tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Nebenmissionen"))
			done := svc.Missions()
			for _, t := range svc.Catalog().Missions() {
				if done.Has(t.Name) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconDone, ui.Muted.Render(t.Name))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "   %s (+%d XP)\n", t.Name, t.XP)
				}
			}
			// Retired tasks that no longer exist in the catalog.
			for _, name := range done.Names() {
				if _, ok := findMission(svc.Catalog().Missions(), name); !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconDone, ui.Muted.Render(name))
				}
			}
			return nil
		},
	}
}

func newMissionsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Make every one-time task eligible again",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetMissions(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconLoop+" Nebenmissionen zurückgesetzt."))
			return nil
		},
	}
}

func findMission(missions []engine.TaskDef, name string) (engine.TaskDef, bool) {
	for _, m := range missions {
		if m.Name == name {
			return m, true
		}
	}
	return engine.TaskDef{}, false
}
