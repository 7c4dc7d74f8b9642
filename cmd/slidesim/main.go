package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/slidesim/internal/analysis"
	"github.com/san-kum/slidesim/internal/config"
	"github.com/san-kum/slidesim/internal/metrics"
	"github.com/san-kum/slidesim/internal/sim"
	"github.com/san-kum/slidesim/internal/storage"
	"github.com/san-kum/slidesim/internal/track"
	"github.com/san-kum/slidesim/internal/viz"
)

var (
	dataDir    string
	gravity    float64
	friction   float64
	frictionOn bool
	curvature  float64
	mass       float64
	startX     float64
	duration   float64
	frameRate  int
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slidesim",
		Short: "bead on a parabolic track with live energy accounting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(newController(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".slidesim", "data directory")
	addPhysicsFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(newController(cfg))
		},
	}
	addPhysicsFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run, recorded to the data directory",
		RunE:  runHeadless,
	}
	addPhysicsFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration (s)")
	runCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "synthetic frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "oscillation frequency of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gravity, "gravity", sim.DefaultGravity, "gravity magnitude")
	cmd.Flags().Float64Var(&friction, "friction", sim.DefaultFriction, "linear drag coefficient")
	cmd.Flags().BoolVar(&frictionOn, "friction-on", false, "enable friction")
	cmd.Flags().Float64Var(&curvature, "curvature", sim.DefaultCurvature, "track curvature")
	cmd.Flags().Float64Var(&mass, "mass", sim.DefaultMass, "bead mass")
	cmd.Flags().Float64Var(&startX, "start-x", sim.DefaultStartX, "starting position")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, then explicit flags, the
// lowest priority first.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}
	if cmd.Flags().Changed("friction") {
		cfg.Friction = friction
	}
	if cmd.Flags().Changed("friction-on") {
		cfg.FrictionOn = frictionOn
	}
	if cmd.Flags().Changed("curvature") {
		cfg.Curvature = curvature
	}
	if cmd.Flags().Changed("mass") {
		cfg.Mass = mass
	}
	if cmd.Flags().Changed("start-x") {
		cfg.StartX = startX
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}
	return cfg, nil
}

func newController(cfg *config.Config) *sim.Controller {
	return sim.NewController(
		track.New(cfg.Curvature),
		cfg.Params(),
		cfg.Mass,
		cfg.StartX,
		sim.Viewport{},
	)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctrl := newController(cfg)
	ctrl.ToggleRun()

	observers := []metrics.Metric{
		metrics.NewDrift(),
		metrics.NewThermalGain(),
		metrics.NewPeakKinetic(),
	}

	frames := int(cfg.Duration * float64(cfg.FrameRate))
	frameDt := 1.0 / float64(cfg.FrameRate)

	times := make([]float64, 0, frames+1)
	samples := make([][]float64, 0, frames+1)

	record := func() {
		s := ctrl.MassState()
		r := ctrl.EnergyReport()
		for _, m := range observers {
			m.Observe(r)
		}
		times = append(times, ctrl.Time())
		samples = append(samples, []float64{s.X, s.Y, s.V, r.Potential, r.Kinetic, r.Thermal, r.Total})
	}

	fmt.Printf("running %d frames at %d fps...\n", frames, cfg.FrameRate)
	start := time.Now()

	record()
	for i := 0; i < frames; i++ {
		ctrl.AdvanceFrame(frameDt)
		record()
	}

	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Duration:  cfg.Duration,
		FrameRate: cfg.FrameRate,
		Gravity:   cfg.Gravity,
		Friction:  ctrl.Params().Friction,
		Curvature: cfg.Curvature,
		Mass:      cfg.Mass,
		StartX:    cfg.StartX,
		Metrics:   make(map[string]float64),
	}
	for _, m := range observers {
		meta.Metrics[m.Name()] = m.Value()
	}

	runID, err := st.Save(meta, times, samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(samples))
	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tDURATION\tGRAVITY\tFRICTION\tCURVATURE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%.1f\t%.2f\t%.4f\n",
			run.ID,
			humanize.Time(run.Timestamp),
			run.Duration,
			run.Gravity,
			run.Friction,
			run.Curvature,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(frames))

	captions := []string{"x (position)", "v (tangential speed)", "total energy"}
	columns := []int{0, 2, 6}

	for i, col := range columns {
		data := make([]float64, len(frames))
		for j := range frames {
			data[j] = frames[j][col]
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(captions[i]),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data")
	}

	trace := make([]float64, len(frames))
	for i := range frames {
		trace[i] = frames[i][0]
	}

	ps := analysis.PowerSpectrum(analysis.Pad(trace))
	plotData := ps[:len(ps)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (x)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(trace, meta.Duration)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, times, frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, times, frames)
}
