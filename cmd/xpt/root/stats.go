package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var dateFlag string
	var month bool
	var all bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show gap-filled rollups (week, month, all time)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ref, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			window := engine.Last7Days
			if month {
				window = engine.MonthToDate
			}
			if all {
				window = engine.AllTime
			}

			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records := svc.Rollup(ref, window)
			xp := engine.XPSeries(records)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "XP — "+window.String()))
			max := 0.0
			for _, v := range xp {
				if v > max {
					max = v
				}
			}
			for i, rec := range records {
				day, _ := engine.ParseDay(rec.Date)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %4.0f\n", day.Format("02.01."), ui.Bar(xp[i], max, 24), xp[i])
			}

			total := engine.Sum(xp)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total", int(total)))
			if mean, err := engine.Mean(xp); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Mean/day", fmt.Sprintf("%.1f", mean)))
			}

			// Consumption view, only when the window holds any quantities.
			grams := engine.QuantitySeries(records, engine.MetricWeedGrams)
			denicit := engine.QuantitySeries(records, engine.MetricDenicit)
			cigs := engine.QuantitySeries(records, engine.MetricCigs)
			if engine.Sum(grams)+engine.Sum(denicit)+engine.Sum(cigs) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Konsum"))
				var rows []string
				for i, rec := range records {
					if rec.IsZero() {
						continue
					}
					day, _ := engine.ParseDay(rec.Date)
					rows = append(rows, fmt.Sprintf("%s  Denicit %2.0f  Zigaretten %2.0f  Weed %.1fg  %s",
						day.Format("02.01."), denicit[i], cigs[i], grams[i], strings.Join(rec.Forms, ", ")))
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rows, "\n"))
				cost := engine.Cost(records, cfg.Consumption.PricePerGram)
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Kosten", fmt.Sprintf("%.2f €", cost)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference day (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&month, "month", false, "Month-to-date window")
	cmd.Flags().BoolVar(&all, "all", false, "All-time window")

	return cmd
}
