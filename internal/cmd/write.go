package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philipp01105/filelog/logger"
)

func newWriteCmd(v *viper.Viper) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "write [message...]",
		Short: "Append one record to the log file",
		Long: `Append one record to the log file. The arguments are joined with
spaces to form the message. The record is written only when its level
passes the configured minimum.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logger.ParseLevel(level)
			if err != nil {
				return err
			}

			l, err := openLogger(cmd, v)
			if err != nil {
				return err
			}
			defer l.Close()

			return l.Log(lvl, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "info", "Record level (critical/error/info/warning/debug)")
	return cmd
}
