package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// planCommand creates the plan command, a dry run that reports the layout
// a build would use without decoding or writing any pixels.
func (c *CLI) planCommand() *cobra.Command {
	var flags collageFlags

	cmd := &cobra.Command{
		Use:   "plan <folder> [output]",
		Short: "Show the layout a build would use without rendering",
		Long: `Plan runs image discovery, dimension probing, aspect analysis and grid
planning, then prints the resulting geometry. Only image headers are read;
nothing is written.`,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &flags); err != nil {
				return err
			}

			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}

			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			opts := flags.options(args[0], output)

			res, err := runner.PlanOnly(cmd.Context(), &opts)
			if err != nil {
				return err
			}

			printInfo("Plan for %s", StyleHighlight.Render(args[0]))
			printKeyValue("aspect", fmt.Sprintf("%s (%.2f, from %d images)",
				res.Aspect.Label, res.Aspect.Ratio, res.Aspect.Sampled))
			printKeyValue("canvas", fmt.Sprintf("%dx%d px", res.Canvas.Width, res.Canvas.Height))
			printKeyValue("grid", fmt.Sprintf("%d rows x %d cols", res.Grid.Rows, res.Grid.Cols))
			printKeyValue("cell", fmt.Sprintf("%dx%d px", res.Grid.CellWidth, res.Grid.CellHeight))
			if res.Canvas.TitleMargin > 0 {
				printKeyValue("title band", fmt.Sprintf("%d px", res.Canvas.TitleMargin))
			}
			if res.Sampled {
				printKeyValue("images", fmt.Sprintf("%d of %d (sampled)", res.Rendered, res.Total))
			} else {
				printKeyValue("images", fmt.Sprintf("%d", res.Total))
			}
			printKeyValue("output", fmt.Sprintf("%s (%s)", res.OutputPath, res.Format))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
