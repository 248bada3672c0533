package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/specialistvlad/orchestraigo/internal/app"
	"github.com/specialistvlad/orchestraigo/internal/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSectionsCommand(outW io.Writer, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sections [SCORE_PATH...]",
		Short: "List section kinds, or the sections a score declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := app.Catalog()
			tw := tabwriter.NewWriter(outW, 0, 4, 2, ' ', 0)
			defer tw.Flush()

			if len(args) == 0 {
				fmt.Fprintln(tw, "KIND\tDESCRIPTION")
				for _, kind := range catalog.Kinds() {
					rs, _ := catalog.Lookup(kind)
					fmt.Fprintf(tw, "%s\t%s\n", kind, rs.Description)
				}
				return nil
			}

			ctx := ctxlog.WithLogger(cmd.Context(), newCommandLogger(outW, v))
			model, err := app.NewScoreLoader().Load(ctx, args...)
			if err != nil {
				return err
			}
			if err := catalog.Validate(ctx, model); err != nil {
				return err
			}
			fmt.Fprintln(tw, "NAME\tKIND\tSOURCE")
			for _, s := range model.Sections {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Kind, s.Source)
			}
			return nil
		},
	}
}
