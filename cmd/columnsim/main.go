package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/columnsim/internal/column"
	"github.com/san-kum/columnsim/internal/config"
	"github.com/san-kum/columnsim/internal/export"
	"github.com/san-kum/columnsim/internal/integrators"
	"github.com/san-kum/columnsim/internal/metrics"
	"github.com/san-kum/columnsim/internal/ode"
	"github.com/san-kum/columnsim/internal/storage"
	"github.com/san-kum/columnsim/internal/viz"
)

var (
	dataDir    string
	configFile string

	c0         float64
	zMax       float64
	points     int
	integrator string
	tolerance  float64
	dz         float64
	noSave     bool

	alpha float64
	v0    float64
	xDim  float64
	yDim  float64
	mu    float64
	kHalf float64
	mBio  float64
	delta float64

	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "columnsim",
		Short: "gas treatment column profile simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to plotting the default scenario.
			return plotProfile(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".columnsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate the column profile and save the run",
		RunE:  runProfile,
	}
	addSolveFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the normalized profile (saved run, or a fresh solve)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotProfile,
	}
	addSolveFlags(plotCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive sweep down the column",
		RunE:  runLive,
	}
	addSolveFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "dump a saved profile to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "dump run metadata and profile to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved profile as SVG on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "image height")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same grid",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	addSolveFlags(compareCmd)

	rootCmd.AddCommand(runCmd, plotCmd, liveCmd, listCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64Var(&c0, "c0", column.DefaultC0, "influent concentration (mg/L)")
	cmd.Flags().Float64Var(&zMax, "zmax", config.DefaultZMax, "column length (m)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator (euler|rk4|rk45)")
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive error tolerance")
	cmd.Flags().Float64Var(&dz, "dz", config.DefaultDz, "initial substep (m)")

	p := column.DefaultParams()
	cmd.Flags().Float64Var(&alpha, "alpha", p.Alpha, "mass-transfer coefficient")
	cmd.Flags().Float64Var(&v0, "v0", p.V0, "volumetric flow")
	cmd.Flags().Float64Var(&xDim, "x", p.X, "cross-sectional dimension")
	cmd.Flags().Float64Var(&yDim, "y", p.Y, "cross-sectional dimension")
	cmd.Flags().Float64Var(&mu, "mu", p.Mu, "maximum reaction rate")
	cmd.Flags().Float64Var(&kHalf, "k", p.K, "half-saturation constant")
	cmd.Flags().Float64Var(&mBio, "m", p.M, "biomass concentration")
	cmd.Flags().Float64Var(&delta, "delta", p.Delta, "rate scaling factor")
}

// buildConfig merges defaults, config file, and changed CLI flags, in that
// order of precedence (flags win).
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd == nil || cmd.Flags() == nil {
		return cfg, nil
	}

	flagOverrides := map[string]func(){
		"c0":         func() { cfg.C0 = c0 },
		"zmax":       func() { cfg.ZMax = zMax },
		"points":     func() { cfg.Points = points },
		"integrator": func() { cfg.Integrator = integrator },
		"tol":        func() { cfg.Tolerance = tolerance },
		"dz":         func() { cfg.Dz = dz },
		"alpha":      func() { cfg.Params.Alpha = alpha },
		"v0":         func() { cfg.Params.V0 = v0 },
		"x":          func() { cfg.Params.X = xDim },
		"y":          func() { cfg.Params.Y = yDim },
		"mu":         func() { cfg.Params.Mu = mu },
		"k":          func() { cfg.Params.K = kHalf },
		"m":          func() { cfg.Params.M = mBio },
		"delta":      func() { cfg.Params.Delta = delta },
	}
	for name, apply := range flagOverrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return cfg, nil
}

func buildIntegrator(name string) (ode.Integrator, error) {
	switch name {
	case "euler":
		return integrators.NewEuler(), nil
	case "rk4":
		return integrators.NewRK4(), nil
	case "rk45":
		return integrators.NewRK45(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func solve(cfg *config.Config) (*ode.Result, error) {
	model, err := column.New(cfg.Params)
	if err != nil {
		return nil, err
	}

	integ, err := buildIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}

	solver := ode.NewSolver(model, integ)
	solver.AddMetric(metrics.NewRemoval())
	solver.AddMetric(metrics.NewPeakRate(model))

	return solver.Solve(context.Background(), ode.State{cfg.C0}, grid, cfg.SolverConfig())
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Println("integrating column profile...")
	start := time.Now()

	result, err := solve(cfg)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("grid points: %d\n", len(result.States))
	fmt.Printf("substeps: %d\n", result.Steps)
	fmt.Printf("outlet Cg: %.6e mg/L\n", result.Profile()[len(result.States)-1])
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)

	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		st := storage.New(dataDir)
		records, err := st.LoadProfile(args[0])
		if err != nil {
			return err
		}
		z := make([]float64, len(records))
		values := make([]float64, len(records))
		for i, r := range records {
			z[i] = r.Z
			values[i] = r.Normalized
		}
		fmt.Print(viz.Profile(z, values))
		return nil
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	result, err := solve(cfg)
	if err != nil {
		return err
	}
	fmt.Print(viz.Profile(result.Grid, result.Normalized()))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	model, err := column.New(cfg.Params)
	if err != nil {
		return err
	}
	integ, err := buildIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	m, err := viz.NewLive(model, integ, cfg.C0, cfg.ZMax, cfg.Points)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tINTEG\tPOINTS\tZMAX\tC0\tREMOVAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.3e\t%.4e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Integrator,
			run.Points,
			run.ZMax,
			run.C0,
			run.Metrics["removal_fraction"],
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	records, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, records)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	records, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, records)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	records, err := st.LoadProfile(args[0])
	if err != nil {
		return err
	}

	z := make([]float64, len(records))
	values := make([]float64, len(records))
	for i, r := range records {
		z[i] = r.Z
		values[i] = r.Normalized
	}

	svg := export.ProfileSVG(z, values, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("profile too short to render")
	}
	_, err = fmt.Fprint(os.Stdout, svg)
	return err
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators (points=%d, zmax=%.2f)\n\n", cfg.Points, cfg.ZMax)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tOUTLET CG\tREMOVAL\tSUBSTEPS\tTIME")

	for _, name := range args {
		runCfg := *cfg
		runCfg.Integrator = name

		start := time.Now()
		result, err := solve(&runCfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\n", name, err)
			continue
		}

		outlet := result.Profile()[len(result.States)-1]
		fmt.Fprintf(w, "%s\t%.6e\t%.6e\t%d\t%v\n",
			name, outlet, result.Metrics["removal_fraction"], result.Steps, elapsed)
	}

	return w.Flush()
}
