package render

import (
	"group-maker/domain"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer prints one row per group, members in shuffle order.
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

func (TableRenderer) Render(w io.Writer, groups domain.GroupSet) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group", "Size", "Members"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, group := range groups {
		table.Append([]string{
			groupTitle(i),
			strconv.Itoa(len(group)),
			strings.Join(group, ", "),
		})
	}

	table.Render()
	return nil
}
