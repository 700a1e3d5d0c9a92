package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's record and reward summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			today, err := parseDateFlag("")
			if err != nil {
				return err
			}

			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rec := svc.Ledger().Get(today)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Heute — "+today.Format("02.01.2006")))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", rec.XP))
			if len(rec.Done) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Erledigt", strings.Join(rec.Done, ", ")))
			}
			if !rec.IsZero() && len(rec.Quantities) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Denicit", rec.Quantities[engine.MetricDenicit]))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Zigaretten", rec.Quantities[engine.MetricCigs]))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Weed (g)", rec.Quantities[engine.MetricWeedGrams]))
			}

			affordable := 0
			for _, a := range svc.RewardEligibility(today, rewardTable(cfg)) {
				if a.Affordable {
					affordable++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Rewards", fmt.Sprintf("%d of %d affordable", affordable, len(rewardTable(cfg)))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Missionen offen", openMissionCount(svc)))
			return nil
		},
	}
	return cmd
}

func openMissionCount(svc *engine.Service) int {
	open := 0
	for _, t := range svc.Catalog().Missions() {
		if svc.Missions().Eligible(t) {
			open++
		}
	}
	return open
}
