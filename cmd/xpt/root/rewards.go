package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/ui"
)

func newRewardsCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Show which rewards the day's XP affords",
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

			total := svc.DailyTotal(date)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, fmt.Sprintf("Rewards — %s (%d XP)", engine.DayKey(date), total)))

			for _, a := range svc.RewardEligibility(date, rewardTable(cfg)) {
				mark := ui.Bad.Render("✗")
				if a.Affordable {
					mark = ui.Good.Render("✓")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", mark, a.Reward.Label, ui.Muted.Render(fmt.Sprintf("(%d XP)", a.Reward.Cost)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to evaluate (YYYY-MM-DD, default today)")

	return cmd
}
