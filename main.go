package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tag-contact.klederson.com/internal/analysis"
	"tag-contact.klederson.com/internal/app"
	"tag-contact.klederson.com/internal/config"
	"tag-contact.klederson.com/internal/plot"
	"tag-contact.klederson.com/internal/tag"
)

var (
	flagConfig string

	flagDemoOut        string
	flagDemoSamples    int
	flagDemoSeed       int64
	flagDemoMismatches int
	flagDemoDuplicates bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "tag-contact",
		Short: "Tag contact analysis - proximity logs of two wearable tags",
		Long: `tag-contact reads the proximity logs of tag A and tag B (TagA.csv, TagB.csv)
and the position log (position.csv), checks that both tags agree, repairs
duplicate tag labels in the position log, counts the contact windows within
the distance threshold and totals the contact time.

The tracks and contact points are shown in an interactive terminal plot.
Use --no-ui for plain console output and --svg to save the figure.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, v)
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "YAML config file")
	f.String("dir", config.DefaultDir, "Directory holding the tag logs")
	f.String("tag-a", "", "Tag A log, relative to --dir (default TagA.csv)")
	f.String("tag-b", "", "Tag B log, relative to --dir (default TagB.csv)")
	f.String("position", config.DefaultPosition, "Position log, relative to --dir")
	f.Int("tags", config.DefaultTagCount, "Number of tags in the room")
	f.Float64("threshold", config.DefaultThreshold, "Contact distance in meters")
	f.Float64("interval", config.DefaultInterval, "Sampling interval in seconds")
	f.String("detect", config.DefaultDetect, "Duplicate tag id detection: scan or ratio")
	f.Float64("plot-min", config.DefaultPlotMin, "Lower edge of the plot window in meters")
	f.Float64("plot-max", config.DefaultPlotMax, "Upper edge of the plot window in meters")
	f.String("svg", "", "Write the figure to this SVG file")
	f.String("format", config.DefaultFormat, "Report format: text or yaml")
	f.Bool("no-ui", false, "Skip the interactive plot")
	f.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newDemoCmd())
	return rootCmd
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a synthetic two-tag session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := tag.Generate(tag.GenerateOptions{
				Samples:      flagDemoSamples,
				Interval:     config.DefaultInterval,
				Seed:         flagDemoSeed,
				Mismatches:   flagDemoMismatches,
				DuplicateIDs: flagDemoDuplicates,
			})
			if err := tag.Save(s, flagDemoOut, config.DefaultPosition); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d samples to %s\n", len(s.A), flagDemoOut)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDemoOut, "out", "demo", "Output directory")
	cmd.Flags().IntVar(&flagDemoSamples, "samples", 600, "Timestamps to generate")
	cmd.Flags().Int64Var(&flagDemoSeed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&flagDemoMismatches, "mismatches", 0, "Rows where tag B disagrees with tag A")
	cmd.Flags().BoolVar(&flagDemoDuplicates, "duplicate-ids", false, "Label every position row as tag A")
	return cmd
}

func runAnalyze(cmd *cobra.Command, v *viper.Viper) error {
	// Only flags set on the command line override file and environment.
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if fl.Name != "config" {
			_ = v.BindPFlag(fl.Name, fl)
		}
	})

	cfg, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}

	detect, err := analysis.ParseDetectMode(cfg.Detect)
	if err != nil {
		return err
	}

	session, err := tag.Load(tag.LoadOptions{
		Dir:      cfg.Dir,
		Count:    cfg.Tags,
		Position: cfg.PositionPath(),
		Override: cfg.TagOverride,
	})
	if err != nil {
		return err
	}

	report := analysis.Run(session, analysis.Options{
		Threshold: cfg.Threshold,
		Interval:  cfg.Interval,
		Detect:    detect,
	})

	out := cmd.OutOrStdout()
	if cfg.Format == "yaml" {
		err = report.WriteYAML(out)
	} else {
		err = report.WriteText(out)
	}
	if err != nil {
		return errors.Wrap(err, "write report")
	}

	bounds := plot.Window(cfg.PlotMin, cfg.PlotMax)
	if cfg.SVG != "" {
		labels := plot.Labels{
			Title:  plot.Title(cfg.Threshold, cfg.Interval),
			XLabel: "x [m]",
			YLabel: "y [m]",
		}
		if err := plot.SaveSVG(cfg.SVG, plot.FromReport(report, bounds), labels); err != nil {
			return err
		}
		log.WithField("path", cfg.SVG).Info("figure written")
	}

	if cfg.NoUI || !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}
	return app.Run(report, bounds, sessionName(cfg))
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(lvl)
	return nil
}

func sessionName(cfg *config.Config) string {
	abs, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return cfg.Dir
	}
	return filepath.Base(abs)
}
