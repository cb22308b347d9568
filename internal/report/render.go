package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nvandessel/montyhall/internal/constants"
	"github.com/nvandessel/montyhall/internal/experiment"
)

// Render prints rows as an aligned table with the same columns as the CSV
// output plus the gap between experiment and theory.
func Render(w io.Writer, rows []experiment.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tDiff\t\n", strings.Join(constants.Header, "\t"))
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%+.4f\t\n",
			row.Doors,
			row.Strategy.Label(),
			row.Theoretical,
			row.Experimental,
			row.Experimental-row.Theoretical)
	}
	return tw.Flush()
}
