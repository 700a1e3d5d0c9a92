package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/engine"
	"github.com/glied2m/xp-tracker/internal/ui"
)

func newTrackCmd() *cobra.Command {
	var dateFlag string
	var denicit int
	var cigs int
	var weed float64
	var forms []string

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Record consumption quantities for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}
			if denicit < 0 || cigs < 0 || weed < 0 {
				return fmt.Errorf("quantities must not be negative")
			}

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quantities := map[string]float64{
				engine.MetricDenicit:   float64(denicit),
				engine.MetricCigs:      float64(cigs),
				engine.MetricWeedGrams: weed,
			}
			if err := svc.SaveConsumption(ctx, date, quantities, forms); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Saved %s.", ui.IconSave, engine.DayKey(date))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to save (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&denicit, "denicit", 0, "Denicit tablets")
	cmd.Flags().IntVar(&cigs, "cigs", 0, "Cigarettes")
	cmd.Flags().Float64Var(&weed, "weed", 0, "Weed in grams")
	cmd.Flags().StringArrayVar(&forms, "form", nil, "Consumption form (Joint|Bong|Vape|Edibles, repeatable)")

	return cmd
}
