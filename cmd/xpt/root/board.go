package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/glied2m/xp-tracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Interactive checklist for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, date, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to edit (YYYY-MM-DD, default today)")

	return cmd
}
