package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/philipp01105/filelog/handler/debughandler"
	"github.com/philipp01105/filelog/logger"
)

// DefaultConfigFile is read from the working directory when --config is not given
const DefaultConfigFile = "filelog.toml"

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the filelog command tree. Every tree owns its viper
// instance, so flags, FILELOG_* variables and the config file resolve
// independently per invocation.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "filelog",
		Short: "Inspect and append to a filelog log file",
		Long: `filelog reads and writes the plain-text log files produced by the
filelog library. Settings come from flags, FILELOG_* environment
variables and a TOML config file, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			initConfig(v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is ./"+DefaultConfigFile+")")
	flags.StringP("file", "f", "", "log file name (default log.txt)")
	flags.StringP("dir", "d", "", "log directory (default is the working directory)")
	flags.String("min-level", "", "least severe level persisted (critical/error/info/warning/debug)")
	flags.String("output", "", "echo output mode (none/console)")

	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("file_name", flags.Lookup("file"))
	_ = v.BindPFlag("file_path", flags.Lookup("dir"))
	_ = v.BindPFlag("level", flags.Lookup("min-level"))
	_ = v.BindPFlag("output", flags.Lookup("output"))

	root.AddCommand(newTailCmd(v), newWriteCmd(v), newSetupCmd(v))
	return root
}

func initConfig(v *viper.Viper) {
	v.SetDefault("config", DefaultConfigFile)
	v.SetEnvPrefix("FILELOG")
	v.AutomaticEnv()
}

// resolveConfig loads the TOML config file and applies flag and
// environment overrides on top of it.
func resolveConfig(v *viper.Viper) (logger.Config, error) {
	cfg, err := logger.LoadConfig(v.GetString("config"))
	if err != nil {
		return logger.Config{}, err
	}

	if v.IsSet("file_name") {
		if name := strings.TrimSpace(v.GetString("file_name")); name != "" {
			cfg.FileName = name
		}
	}
	if v.IsSet("file_path") {
		if dir := strings.TrimSpace(v.GetString("file_path")); dir != "" {
			if cfg.FilePath, err = filepath.Abs(dir); err != nil {
				return logger.Config{}, fmt.Errorf("resolve log directory: %w", err)
			}
		}
	}
	if v.IsSet("level") {
		if cfg.Level, err = logger.ParseLevel(v.GetString("level")); err != nil {
			return logger.Config{}, err
		}
	}
	if v.IsSet("output") {
		if cfg.Output, err = logger.ParseOutputMode(v.GetString("output")); err != nil {
			return logger.Config{}, err
		}
	}
	return cfg, nil
}

// openLogger builds a Logger for the resolved configuration. Echoed lines
// go to the command's error stream, console output to its output stream.
func openLogger(cmd *cobra.Command, v *viper.Viper) (*logger.Logger, error) {
	cfg, err := resolveConfig(v)
	if err != nil {
		return nil, err
	}
	return logger.NewBuilder().
		WithConfig(cfg).
		WithZap(debughandler.NewLineLogger(cmd.ErrOrStderr())).
		WithConsoleWriter(cmd.OutOrStdout()).
		Build()
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
