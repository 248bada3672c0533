package cli

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/orchestraigo/internal/paths"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPathsCommand(outW io.Writer, v *viper.Viper) *cobra.Command {
	var ensure bool
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the standard directories below --root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := v.GetString("root")
			if root == "" {
				root = "."
			}
			p, err := paths.New(afero.NewOsFs(), root)
			if err != nil {
				return err
			}
			if ensure {
				if err := p.Ensure(); err != nil {
					return err
				}
			}
			p.Print(outW)
			return nil
		},
	}
	cmd.Flags().BoolVar(&ensure, "ensure", false, "create missing directories")
	return cmd
}

// newCommandLogger builds a console logger from the global log flags for
// subcommands that do not start the full application.
func newCommandLogger(outW io.Writer, v *viper.Viper) *slog.Logger {
	level := slog.LevelInfo
	_ = level.UnmarshalText([]byte(v.GetString("log-level")))
	opts := &slog.HandlerOptions{Level: level}
	if v.GetString("log-format") == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
