package cli

import (
	"os"
	"strconv"

	"github.com/evfreq/evfreq/internal/core/domain/freqdist"
	"github.com/evfreq/evfreq/internal/core/ports"
	"github.com/olekukonko/tablewriter"
)

// renderPairsTable renders (event, frequency) pairs as a table. When a codec
// is available, a Token column shows the decoded token for identifiers the
// codec assigned.
func renderPairsTable(pairs []freqdist.Pair, codec ports.TokenCodec) {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Event", "Frequency"}
	if codec != nil && codec.Size() > 0 {
		headers = []string{"Event", "Token", "Frequency"}
	}
	table.SetHeader(headers)
	table.SetBorder(true)
	alignment := make([]int, len(headers))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
	}
	table.SetColumnAlignment(alignment)

	for _, pair := range pairs {
		row := []string{
			strconv.FormatInt(int64(pair.Event), 10),
			strconv.FormatInt(int64(pair.Frequency), 10),
		}
		if codec != nil && codec.Size() > 0 {
			token, ok := codec.Decode(pair.Event)
			if !ok {
				token = "-"
			}
			row = []string{row[0], token, row[1]}
		}
		table.Append(row)
	}
	table.Render()
}
