package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTailCmd(v *viper.Viper) *cobra.Command {
	var (
		lines int
		color bool
	)

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print the last lines of the log file",
		Long: `Print the last lines of the log file in their original order.

Examples:
  # Show the last 10 lines
  filelog tail

  # Show the whole file
  filelog tail -n 0

  # Color the level tags
  filelog tail -n 50 --color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if lines < 0 {
				return fmt.Errorf("invalid line count %d", lines)
			}

			l, err := openLogger(cmd, v)
			if err != nil {
				return err
			}
			defer l.Close()

			var out []string
			if lines == 0 {
				text, err := l.ReadAll()
				if err != nil {
					return err
				}
				if text != "" {
					out = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
				}
			} else if out, err = l.Tail(lines); err != nil {
				return err
			}

			if color {
				out = colorize(newLevelStyles(cmd.OutOrStdout()), out)
			}
			printLines(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of lines to show (0 for all)")
	cmd.Flags().BoolVar(&color, "color", false, "Color the level tags")
	return cmd
}
