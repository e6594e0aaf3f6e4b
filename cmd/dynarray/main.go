package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/san-kum/dynarray/internal/config"
	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/export"
	"github.com/san-kum/dynarray/internal/script"
	"github.com/san-kum/dynarray/internal/tui"
	"github.com/san-kum/dynarray/internal/viz"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
	capacity   int
	showTable  bool
	showPlot   bool
	plotWidth  int
	plotHeight int
	adds       int
	output     string

	// scriptCapacity overrides a script's capacity only when its flag is set.
	scriptCapacity int
)

var logger = log.New(io.Discard, "dynarray: ", log.Ltime)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dynarray",
		Short: "growable list playground",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetOutput(os.Stderr)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each step to stderr")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the city list walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a script of list operations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	addScriptFlags(runCmd)
	runCmd.Flags().BoolVar(&showTable, "table", true, "print the step table")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot count and capacity")
	runCmd.Flags().IntVar(&plotWidth, "width", config.DefaultWidth, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", config.DefaultHeight, "plot height")

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "plot capacity doubling over repeated adds",
		RunE:  plotGrowth,
	}
	growthCmd.Flags().IntVar(&capacity, "capacity", dynarray.DefaultCapacity, "initial capacity")
	growthCmd.Flags().IntVar(&adds, "adds", 100, "number of adds")
	growthCmd.Flags().IntVar(&plotWidth, "width", config.DefaultWidth, "plot width")
	growthCmd.Flags().IntVar(&plotHeight, "height", config.DefaultHeight, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scripts",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %d steps\n", name, len(config.GetPreset(name).Steps))
			}
		},
	}

	opsCmd := &cobra.Command{
		Use:   "ops",
		Short: "list script operations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, op := range script.Ops() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", op)
			}
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [preset]",
		Short: "export a script trace as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportTrace(cmd, args, export.JSON)
		},
	}
	addScriptFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [preset]",
		Short: "export a script trace as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportTrace(cmd, args, export.CSV)
		},
	}
	addScriptFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [preset]",
		Short: "draw a script trace as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportTrace(cmd, args, func(w io.Writer, tr *script.Trace) error {
				_, err := io.WriteString(w, export.TraceToSVG(tr))
				return err
			})
		},
	}
	addScriptFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	tuiCmd := &cobra.Command{
		Use:   "tui [item...]",
		Short: "edit a list interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := dynarray.NewWithCapacity[string](capacity)
			if err != nil {
				return err
			}
			list.AddRange(args...)
			return tui.Run(list)
		},
	}
	tuiCmd.Flags().IntVar(&capacity, "capacity", dynarray.DefaultCapacity, "initial capacity")

	rootCmd.AddCommand(demoCmd, runCmd, growthCmd, presetsCmd, opsCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, tuiCmd)
	return rootCmd
}

func addScriptFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "script file path (yaml)")
	cmd.Flags().IntVar(&scriptCapacity, "capacity", 0, "override initial capacity")
}

// runDemo walks the city list the same way every time and prints what
// each query returns.
func runDemo(w io.Writer) error {
	cities := dynarray.New[string]()

	cities.Add("New york")
	cities.Add("London")
	cities.Add("Baku")
	cities.Add("Istanbul")
	if err := cities.Insert(2, "Sydney"); err != nil {
		return err
	}
	cities.Add("Baku")

	fmt.Fprintln(w, cities.Remove("Baku"))
	if err := cities.RemoveAt(1); err != nil {
		return err
	}

	cities.AddRange("Berlin", "Logan", "Helena")
	fmt.Fprintf(w, "Helena index is: %d\n", cities.IndexOf("Helena"))
	fmt.Fprintf(w, "Baku in cities ? %t\n", cities.Contains("Baku"))

	found := cities.FindAll(func(city string) bool { return strings.Contains(city, "Baku") })
	for city := range found.All() {
		fmt.Fprintln(w, city)
	}

	cities.Clear()
	fmt.Fprintln(w, cities.Count())
	return nil
}

// loadScript resolves the script from, in order of precedence, the
// --config file or the named preset, then applies flag overrides.
func loadScript(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	default:
		name := config.DefaultPreset
		if len(args) > 0 {
			name = args[0]
		}
		preset := config.GetPreset(name)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		copied := *preset
		cfg = &copied
	}

	if cmd.Flags().Changed("capacity") {
		cfg.Capacity = scriptCapacity
	}
	return cfg, nil
}

func execute(cmd *cobra.Command, cfg *config.Config) (*script.Trace, error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := script.New()
	runner.AddObserver(script.ObserverFunc(func(list *dynarray.List[string], rec script.Record) {
		logger.Printf("step %d %s -> %q count=%d capacity=%d", rec.Step, rec.Op, rec.Result, rec.Count, rec.Capacity)
	}))

	logger.Printf("running %q: %d steps, capacity %d", cfg.Name, len(cfg.Steps), cfg.Capacity)
	return runner.Run(ctx, cfg)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadScript(cmd, args)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("width") && cfg.Plot.Width > 0 {
		plotWidth = cfg.Plot.Width
	}
	if !cmd.Flags().Changed("height") && cfg.Plot.Height > 0 {
		plotHeight = cfg.Plot.Height
	}

	trace, runErr := execute(cmd, cfg)
	if trace == nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render(strings.ToUpper(trace.Name)))
	if showTable {
		fmt.Fprintln(out, viz.TraceTable(trace))
	}
	if last := trace.Last(); last != nil {
		fmt.Fprintln(out, viz.Slots(last.Items, last.Capacity, -1, 6))
		fmt.Fprintln(out, viz.Summary(last.Count, last.Capacity))
	}
	if showPlot {
		if graph := viz.GrowthPlot(trace, plotWidth, plotHeight); graph != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, graph)
		}
	}

	if runErr != nil {
		return fmt.Errorf("run %s: %w", trace.Name, runErr)
	}
	return nil
}

func plotGrowth(cmd *cobra.Command, args []string) error {
	if adds < 1 {
		return fmt.Errorf("adds must be positive, got %d", adds)
	}
	caps, err := script.Growth(capacity, adds)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.CapacityPlot(caps, plotWidth, plotHeight))
	fmt.Fprintln(out, viz.Summary(adds, int(caps[len(caps)-1])))
	return nil
}

func exportTrace(cmd *cobra.Command, args []string, write func(io.Writer, *script.Trace) error) error {
	cfg, err := loadScript(cmd, args)
	if err != nil {
		return err
	}

	trace, err := execute(cmd, cfg)
	if err != nil {
		return err
	}

	if output == "" {
		return write(cmd.OutOrStdout(), trace)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}

	if err := write(file, trace); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	logger.Printf("wrote %s", output)
	return nil
}
