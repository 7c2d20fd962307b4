package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSetupCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Reset the log file and write the setup banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := openLogger(cmd, v)
			if err != nil {
				return err
			}
			defer l.Close()

			cfg := l.Config()
			if err := l.Setup(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "log file reset: %s\n", cfg.Path())
			return nil
		},
	}
}
