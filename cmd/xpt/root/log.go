package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/storage"
	"github.com/glied2m/xp-tracker/internal/ui"
)

// parseDateFlag resolves an optional --date value, defaulting to today.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return engine.ParseDay(engine.DayKey(time.Now()))
	}
	return engine.ParseDay(value)
}

func newLogCmd() *cobra.Command {
	var dateFlag string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Check tasks for a day and save the XP total",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sess := engine.NewSession()
			for _, name := range tasks {
				name = strings.TrimSpace(name)
				task, ok := svc.Catalog().Lookup(date, name)
				if !ok {
					return fmt.Errorf("task %q is not in the catalog for %s", name, engine.DayKey(date))
				}
				if !svc.Missions().Eligible(task) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%q is already retired, skipping.", name)))
					continue
				}
				sess.Toggle(date, name, true)
			}

			res, err := svc.SaveDay(ctx, date, sess)
			if err != nil {
				return err
			}

			// Sidecar for external tools; failure never blocks the save.
			if res.Date == engine.DayKey(time.Now()) {
				if err := storage.WriteTodayStatus(cfg.TodayStatusPath(), res.Date, res.XP); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+err.Error()))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Saved %s: %d XP", ui.IconSave, res.Date, res.XP)))
			if len(res.NewMissions) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Retired missions", strings.Join(res.NewMissions, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to save (YYYY-MM-DD, default today)")
	cmd.Flags().StringArrayVarP(&tasks, "task", "t", nil, "Task name to check (repeatable)")

	return cmd
}
