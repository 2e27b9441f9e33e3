package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/glucosim/internal/config"
	"github.com/san-kum/glucosim/internal/export"
	"github.com/san-kum/glucosim/internal/glucose"
	"github.com/san-kum/glucosim/internal/metrics"
	"github.com/san-kum/glucosim/internal/sim"
	"github.com/san-kum/glucosim/internal/tui"
	"github.com/san-kum/glucosim/internal/viz"
)

var (
	dawnStrength float64
	dawnWidth    float64
	variability  float64
	drugDose     float64
	baseline     float64
	seed         int64
	configFile   string
	preset       string
	outPath      string
	chartWidth   int
	chartHeight  int
	imageWidth   int
	imageHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glucosim",
		Short: "one-day blood glucose simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive TUI when no command is given.
			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addScenarioFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one day and print the summary",
		RunE:  runDay,
	}
	addScenarioFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "simulate one day and chart it in the terminal",
		RunE:  plotDay,
	}
	addScenarioFlags(plotCmd)
	plotCmd.Flags().IntVar(&chartWidth, "width", 100, "chart width in columns")
	plotCmd.Flags().IntVar(&chartHeight, "height", 15, "chart height in rows")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available day presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "simulate one day and write it as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportDay(cmd, func(w io.Writer, series glucose.Series) error {
				return export.WriteCSV(w, series)
			})
		},
	}
	addScenarioFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "simulate one day and write points plus summary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportDay(cmd, func(w io.Writer, series glucose.Series) error {
				return export.WriteJSON(w, series)
			})
		},
	}
	addScenarioFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "simulate one day and write an SVG chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportDay(cmd, func(w io.Writer, series glucose.Series) error {
				_, err := io.WriteString(w, export.SeriesToSVG(series, imageWidth, imageHeight))
				return err
			})
		},
	}
	addScenarioFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&imageWidth, "image-width", 960, "image width in pixels")
	exportSVGCmd.Flags().IntVar(&imageHeight, "image-height", 400, "image height in pixels")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png",
		Short: "simulate one day and write a PNG chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			series, _, err := simulate(cfg)
			if err != nil {
				return err
			}
			if err := export.WritePNG(outPath, series, imageWidth, imageHeight); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", outPath)
			return nil
		},
	}
	addScenarioFlags(exportPNGCmd)
	exportPNGCmd.Flags().StringVar(&outPath, "out", "glucose.png", "output file")
	exportPNGCmd.Flags().IntVar(&imageWidth, "image-width", 960, "image width in pixels")
	exportPNGCmd.Flags().IntVar(&imageHeight, "image-height", 400, "image height in pixels")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive dose editor and live chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addScenarioFlags(tuiCmd)

	rootCmd.AddCommand(runCmd, plotCmd, presetsCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, exportPNGCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dawnStrength, "dawn-strength", config.DefaultDawnStrength, "dawn phenomenon strength, mg/dL (10-50)")
	cmd.Flags().Float64Var(&dawnWidth, "dawn-width", config.DefaultDawnWidth, "dawn phenomenon width, minutes")
	cmd.Flags().Float64Var(&variability, "variability", config.DefaultVariability, "day-to-day dawn variability [0,1)")
	cmd.Flags().Float64Var(&drugDose, "drug-dose", config.DefaultDrugDose, "weekly drug dose (0-2)")
	cmd.Flags().Float64Var(&baseline, "baseline", sim.DefaultBaseline, "baseline glucose, mg/dL")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for the dawn jitter")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named day preset")
}

// loadScenario resolves the day scenario: preset, then config file, then
// explicitly set flags, each layer overriding the previous.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dawn-strength") {
		cfg.Dawn.Strength = dawnStrength
	}
	if cmd.Flags().Changed("dawn-width") {
		cfg.Dawn.Width = dawnWidth
	}
	if cmd.Flags().Changed("variability") {
		cfg.Dawn.Variability = variability
	}
	if cmd.Flags().Changed("drug-dose") {
		cfg.Drug.Dose = drugDose
	}
	if cmd.Flags().Changed("baseline") {
		cfg.Baseline = baseline
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	return cfg, nil
}

func simulate(cfg *config.Config) (glucose.Series, metrics.Summary, error) {
	sched, err := cfg.Schedule()
	if err != nil {
		return nil, metrics.Summary{}, err
	}
	series, err := sim.New(cfg.SimConfig()).Run(sched)
	if err != nil {
		return nil, metrics.Summary{}, err
	}
	return series, metrics.Summarize(series), nil
}

func runDay(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	series, sum, err := simulate(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("simulated %d minutes in %v\n\n", len(series), time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mean\t%.1f mg/dL\n", sum.Mean)
	fmt.Fprintf(w, "peak\t%.1f mg/dL\n", sum.Peak)
	fmt.Fprintf(w, "nadir\t%.1f mg/dL\n", sum.Nadir)
	fmt.Fprintf(w, "in range\t%.1f%%\n", sum.TimeInRange*100)
	fmt.Fprintf(w, "hypo\t%d min\n", sum.HypoMinutes)
	fmt.Fprintf(w, "hyper\t%d min\n", sum.HyperMinutes)
	fmt.Fprintf(w, "est. HbA1c\t%.1f%%\n", sum.EstimatedA1C)
	return w.Flush()
}

func plotDay(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	series, sum, err := simulate(cfg)
	if err != nil {
		return err
	}
	fmt.Println(viz.Chart(series, chartWidth, chartHeight))
	fmt.Println(viz.Report(sum))
	return nil
}

func exportDay(cmd *cobra.Command, write func(io.Writer, glucose.Series) error) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	series, _, err := simulate(cfg)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return write(out, series)
}
