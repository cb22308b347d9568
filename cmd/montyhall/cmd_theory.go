package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nvandessel/montyhall/internal/constants"
	"github.com/nvandessel/montyhall/internal/experiment"
	"github.com/nvandessel/montyhall/internal/game"
	"github.com/spf13/cobra"
)

func newTheoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theory",
		Short: "Print closed-form win probabilities without simulating",
		Long: `Print the theoretical chance of winning for each door count.

With n doors you win 1 in n games if you never switch and (n-1) in n
games if you always switch.

Examples:
  montyhall theory                 # 3 to 30 doors
  montyhall theory --max-doors 10  # 3 to 10 doors`,
		RunE: func(cmd *cobra.Command, args []string) error {
			maxDoors, _ := cmd.Flags().GetInt("max-doors")
			jsonOut, _ := cmd.Flags().GetBool("json")

			if maxDoors < constants.MinDoors {
				return fmt.Errorf("--max-doors must be at least %d, got %d", constants.MinDoors, maxDoors)
			}

			type theoryRow struct {
				Doors  int     `json:"doors"`
				Switch float64 `json:"switch"`
				Stay   float64 `json:"stay"`
			}
			rows := make([]theoryRow, 0, maxDoors-constants.MinDoors+1)
			for n := constants.MinDoors; n <= maxDoors; n++ {
				rows = append(rows, theoryRow{
					Doors:  n,
					Switch: experiment.Theoretical(game.Switch, n),
					Stay:   experiment.Theoretical(game.Stay, n),
				})
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"rows":  rows,
					"count": len(rows),
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Doors\tSwitch\tStay\t")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t\n", r.Doors, r.Switch, r.Stay)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Int("max-doors", constants.DefaultMaxDoors, "Largest door count to list")

	return cmd
}
