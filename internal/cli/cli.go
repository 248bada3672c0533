package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/orchestraigo/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads, e.g.
// ORCHESTRAIGO_LOG_LEVEL.
const EnvPrefix = "ORCHESTRAIGO"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// PerformFunc builds the application from cfg and performs the score.
type PerformFunc func(ctx context.Context, outW io.Writer, cfg *app.Config) error

// Execute runs the command line in args. Help output and the results of
// informational subcommands go to outW.
func Execute(ctx context.Context, args []string, outW io.Writer, perform PerformFunc) error {
	root := NewRootCommand(outW, perform)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) && isUsageError(err) {
		return usageError(err)
	}
	return err
}

// cobra reports unknown flags and bad arguments as plain errors.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, p := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "invalid argument"} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// NewRootCommand assembles the command tree. Every invocation gets its own
// viper instance so that flags, environment and config file never leak
// between runs.
func NewRootCommand(outW io.Writer, perform PerformFunc) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "orchestraigo [flags] SCORE_PATH...",
		Short: "Conduct a score of AI sections",
		Long: `Orchestraigo performs a score: a set of declared sections (statistics,
decision models, language, generation, fusion, timing and evaluation) that
are cued in order against one shared payload.

SCORE_PATH is a .hcl, .yaml or .yml file or a directory of them.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				slog.Debug("No score path provided, printing usage and exiting.")
				return cmd.Help()
			}
			cfg, err := configFrom(v, args)
			if err != nil {
				return err
			}
			slog.Debug("CLI parser finished successfully.", "config", cfg)
			return perform(cmd.Context(), outW, cfg)
		},
	}
	root.SetOut(outW)
	root.SetErr(outW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file with flag defaults (YAML)")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("root", "", "Directory for the standard layout and logs/orchestrai.log. Empty disables the log file.")
	root.Flags().Int("healthcheck-port", 0, "Port for the HTTP health and metrics server. 0 is disabled.")
	root.Flags().Int("concurrency", 0, "Sections performed at once. 0 uses the score's conductor block.")
	root.Flags().Bool("fail-fast", false, "Skip the remaining sections after the first failure.")
	root.Flags().Duration("timeout", 0, "Deadline for the whole performance. 0 uses the score's conductor block.")
	_ = v.BindPFlags(flags)
	_ = v.BindPFlags(root.Flags())

	root.AddCommand(newSectionsCommand(outW, v), newPathsCommand(outW, v), newStatsCommand(outW))
	return root
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return usageError(fmt.Errorf("failed to read config file: %w", err))
		}
	}
	return nil
}

func configFrom(v *viper.Viper, args []string) (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		ScorePaths:      args,
		Root:            v.GetString("root"),
		LogFormat:       strings.ToLower(v.GetString("log-format")),
		LogLevel:        strings.ToLower(v.GetString("log-level")),
		HealthcheckPort: v.GetInt("healthcheck-port"),
		Concurrency:     v.GetInt("concurrency"),
		FailFast:        v.GetBool("fail-fast"),
		Timeout:         v.GetDuration("timeout"),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}
