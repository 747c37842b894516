package cfurl

import (
	"strings"

	"github.com/common-fate/cfurl/pkg/dash"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var ListCommand = cli.Command{
	Name:  "list",
	Usage: "List dashboard destinations and the URLs they open",
	Action: func(c *cli.Context) error {
		var data [][]string
		for _, s := range dash.Commands {
			data = append(data, []string{
				s.Name,
				strings.Join(s.Aliases, ", "),
				s.ArgsUsage(),
				dash.Resolve(dash.Placeholder(s)),
			})
		}

		table := tablewriter.NewWriter(c.App.Writer)
		table.SetHeader([]string{"COMMAND", "ALIASES", "ARGUMENTS", "URL"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")
		table.SetNoWhiteSpace(true)
		table.AppendBulk(data)
		table.Render()
		return nil
	},
}
