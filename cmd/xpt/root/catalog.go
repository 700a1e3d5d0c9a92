package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/config"
	"github.com/glied2m/xp-tracker/internal/storage"
	"github.com/glied2m/xp-tracker/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the task catalog",
	}
	cmd.AddCommand(newCatalogAddCmd())
	return cmd
}

func newCatalogAddCmd() *cobra.Command {
	var section string
	var weekday string
	var name string
	var xp int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a task to a catalog section",
		Long:  "Appends {section, name, xp} to the tasks file. The task becomes visible on the next load; whether it recurs follows from its section.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("task name is required")
			}
			if xp < 0 {
				return errors.New("xp must not be negative")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := storage.AppendTask(cfg.CatalogPath(), section, weekday, name, xp); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Added %q to %s (+%d XP).", ui.IconDone, name, section, xp)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&section, "section", "s", storage.SectionMissions, "Section (Morgenroutine|Wochenplan|Abendroutine|Nebenmissionen)")
	cmd.Flags().StringVarP(&weekday, "weekday", "w", "", "Weekday sub-list for Wochenplan (Montag..Sonntag)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Task name")
	cmd.Flags().IntVarP(&xp, "xp", "x", 0, "XP value")

	return cmd
}
