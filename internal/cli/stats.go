package cli

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/orchestraigo/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCommand(outW io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Run the statistics routines on literal values",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("unknown stats routine %q", args[0]))
			}
			return cmd.Help()
		},
	}
	cmd.AddCommand(newDescribeCommand(outW), newTTestCommand(outW), newDriftCommand(outW), newCalibrateCommand(outW))
	return cmd
}

// describe takes nothing but numbers, so flag parsing is off and negative
// values need no "--".
func newDescribeCommand(outW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                "describe VALUE...",
		Short:              "Count, mean, sample standard deviation, min and max",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if slices.Contains(args, "-h") || slices.Contains(args, "--help") {
				return cmd.Help()
			}
			values, err := parseFloats(slices.DeleteFunc(args, func(a string) bool { return a == "--" }))
			if err != nil {
				return err
			}
			s := stats.Describe(values)
			fmt.Fprintf(outW, "count: %d\nmean: %g\nstd: %g\nmin: %g\nmax: %g\n", s.Count, s.Mean, s.Std, s.Min, s.Max)
			return nil
		},
	}
}

func newTTestCommand(outW io.Writer) *cobra.Command {
	var a, b []float64
	cmd := &cobra.Command{
		Use:   "ttest --a X,Y,... --b X,Y,...",
		Short: "Welch's unequal-variance t-test",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			res := stats.WelchTTest(a, b)
			fmt.Fprintf(outW, "t: %g\ndf: %g\np_value: %g\n", res.T, res.DF, res.PValue)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&a, "a", nil, "first sample")
	cmd.Flags().Float64SliceVar(&b, "b", nil, "second sample")
	return cmd
}

func newDriftCommand(outW io.Writer) *cobra.Command {
	var reference, current []float64
	var bins int
	cmd := &cobra.Command{
		Use:   "drift --reference X,Y,... --current X,Y,...",
		Short: "Population stability index between two samples",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintf(outW, "psi: %g\nmean_shift: %g\n",
				stats.DriftScore(reference, current, bins),
				stats.MeanShift(reference, current))
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&reference, "reference", nil, "reference sample")
	cmd.Flags().Float64SliceVar(&current, "current", nil, "current sample")
	cmd.Flags().IntVar(&bins, "bins", stats.DefaultBins, "number of histogram bins")
	return cmd
}

func newCalibrateCommand(outW io.Writer) *cobra.Command {
	var fitScores, fitLabels []float64
	cmd := &cobra.Command{
		Use:   "calibrate [--fit-scores X,Y,... --fit-labels X,Y,...] [--] PROB...",
		Short: "Calibrate probabilities into [0,1]",
		Long: `Without fit data the probabilities are clamped into [0,1]. With
--fit-scores and --fit-labels an isotonic calibrator is fitted first and
applied to every PROB. Put "--" before negative values.`,
		RunE: func(_ *cobra.Command, args []string) error {
			probs, err := parseFloats(args)
			if err != nil {
				return err
			}
			var calibrator stats.Calibrator = stats.Identity{}
			if len(fitScores) > 0 || len(fitLabels) > 0 {
				iso, err := stats.FitIsotonic(fitScores, fitLabels)
				if err != nil {
					return usageError(fmt.Errorf("failed to fit isotonic calibrator: %w", err))
				}
				calibrator = iso
			}
			out := make([]string, 0, len(probs))
			for _, p := range calibrator.Apply(probs) {
				out = append(out, strconv.FormatFloat(p, 'g', -1, 64))
			}
			fmt.Fprintln(outW, strings.Join(out, " "))
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&fitScores, "fit-scores", nil, "raw scores to fit an isotonic calibrator on")
	cmd.Flags().Float64SliceVar(&fitLabels, "fit-labels", nil, "observed outcomes paired with --fit-scores")
	return cmd
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			if field = strings.TrimSpace(field); field == "" {
				continue
			}
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, usageError(fmt.Errorf("invalid number %q", field))
			}
			out = append(out, f)
		}
	}
	return out, nil
}
