package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/latfun/internal/config"
	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/export"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/models"
	"github.com/san-kum/latfun/internal/store"
	"github.com/san-kum/latfun/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

var (
	dataDir string
	// path sampling
	segmentN int
	points   string
	// energy sampling
	energySteps int
	singularity bool
	// grid
	gridN1     int
	gridN2     int
	gridFormat string
	// check
	checkSteps int
	// output
	exportFormat string
	outFile      string
	svgFile      string
	noPlot       bool
	plotHeight   int
	plotWidth    int
	// run
	configFile string
	preset     string
	// tui
	theme string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "latfun",
		Short:        "tight-binding lattice toolkit",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunBrowser(config.DefaultSegmentN, config.DefaultEnergySteps, theme)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".latfun", "run directory")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.Themes[0].Name, fmt.Sprintf("browser theme %v", viz.ThemeNames()))

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list lattices",
		Args:  cobra.NoArgs,
		RunE:  listLattices,
	}

	bandsCmd := &cobra.Command{
		Use:       "bands [lattice]",
		Short:     "band structure along high-symmetry lines",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: models.Names(),
		RunE:      runBands,
	}
	bandsCmd.Flags().IntVar(&segmentN, "n", config.DefaultSegmentN, "samples per segment")
	bandsCmd.Flags().StringVar(&points, "points", "", "high-symmetry labels, e.g. GXMG (default per lattice)")
	addOutputFlags(bandsCmd)

	dosCmd := &cobra.Command{
		Use:       "dos [lattice]",
		Short:     "density of states",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: models.Names(),
		RunE:      runDOS,
	}
	dosCmd.Flags().IntVar(&energySteps, "steps", config.DefaultEnergySteps, "energy intervals across the band")
	dosCmd.Flags().BoolVar(&singularity, "singularity", false, "keep +Inf at singular energies")
	addOutputFlags(dosCmd)

	gdosCmd := &cobra.Command{
		Use:       "gdos [lattice]",
		Short:     "generalized density of states",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: models.Names(),
		RunE:      runGDOS,
	}
	gdosCmd.Flags().IntVar(&energySteps, "steps", config.DefaultEnergySteps, "energy intervals across the band")
	addOutputFlags(gdosCmd)

	gridCmd := &cobra.Command{
		Use:       "grid [lattice]",
		Short:     "dispersion on a grid over the reciprocal unit cell",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: models.Names(),
		RunE:      runGrid,
	}
	gridCmd.Flags().IntVar(&gridN1, "n1", 32, "samples along b1")
	gridCmd.Flags().IntVar(&gridN2, "n2", 32, "samples along b2")
	gridCmd.Flags().StringVar(&gridFormat, "export", "csv", "table format: csv or json")
	gridCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the table to a file instead of stdout")

	checkCmd := &cobra.Command{
		Use:       "check [lattice...]",
		Short:     "check normalization and reciprocal basis",
		ValidArgs: models.Names(),
		RunE:      runCheck,
	}
	checkCmd.Flags().IntVar(&checkSteps, "steps", 20003, "energy intervals for the normalization integral")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a configuration file or preset and store the results",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "run file path (.yaml or .toml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "preset as lattice/name")
	runCmd.MarkFlagsMutuallyExclusive("config", "preset")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [lattice]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := models.Names()
			if len(args) == 1 {
				names = args
			}
			out := cmd.OutOrStdout()
			for _, lattice := range names {
				presets := config.ListPresets(lattice)
				if len(presets) == 0 {
					fmt.Fprintf(out, "no presets for lattice: %s\n", lattice)
					continue
				}
				fmt.Fprintf(out, "presets for %s:\n", lattice)
				for _, p := range presets {
					fmt.Fprintf(out, "  %s/%s\n", lattice, p)
				}
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive lattice browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunBrowser(segmentN, energySteps, theme)
		},
	}
	tuiCmd.Flags().IntVar(&segmentN, "n", config.DefaultSegmentN, "samples per segment")
	tuiCmd.Flags().IntVar(&energySteps, "steps", config.DefaultEnergySteps, "energy intervals across the band")

	rootCmd.AddCommand(listCmd, bandsCmd, dosCmd, gdosCmd, gridCmd, checkCmd, runCmd, runsCmd, presetsCmd, tuiCmd)
	return rootCmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&exportFormat, "export", "", "also write the table: csv or json")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the table to a file instead of stdout")
	cmd.Flags().StringVar(&svgFile, "svg", "", "also render the plot to an svg file")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")
	cmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")
	cmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")
}

func getModel(args []string) (models.Model, error) {
	name := config.DefaultLattice
	if len(args) > 0 {
		name = args[0]
	}
	return models.Get(name)
}

func notice(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.ErrOrStderr(), viz.Notice.Render(fmt.Sprintf(format, args...)))
}

func writeSVG(cmd *cobra.Command, f *export.Figure) error {
	if svgFile == "" {
		return nil
	}
	out, err := os.Create(svgFile)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := f.WriteSVG(out); err != nil {
		return fmt.Errorf("failed to render %s: %w", svgFile, err)
	}
	notice(cmd, "wrote %s", svgFile)
	return nil
}

// writeTable writes t in format, to --out or stdout. An empty format skips it.
func writeTable(cmd *cobra.Command, format string, t *store.Table) error {
	if format == "" {
		return nil
	}

	var w io.Writer = cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := store.Write(w, format, t); err != nil {
		return err
	}
	if outFile != "" {
		notice(cmd, "wrote %s (%d rows)", outFile, len(t.Rows))
	}
	return nil
}

func plotOptions(caption string) viz.PlotOptions {
	return viz.PlotOptions{Height: plotHeight, Width: plotWidth, Caption: caption}
}

func listLattices(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBRAVAIS\tBANDS\tEMIN\tEMAX\tPATH\tGDOS\tHAMILTONIAN")

	for _, name := range models.Names() {
		m, err := models.Get(name)
		if err != nil {
			return err
		}
		cfg := m.Config()
		p, err := m.HSL(1, "")
		if err != nil {
			return err
		}
		_, hasGDOS := m.(models.GDOSModel)
		_, hasH := m.(models.HamiltonianModel)

		fmt.Fprintf(w, "%s\t%s\t%d\t%.6g\t%.6g\t%s\t%s\t%s\n",
			name, cfg.Bravais(), cfg.Bands(), cfg.EMin(), cfg.EMax(), p.Labels, yesNo(hasGDOS), yesNo(hasH))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func runBands(cmd *cobra.Command, args []string) error {
	m, err := getModel(args)
	if err != nil {
		return err
	}

	path, err := m.HSL(segmentN, points)
	if err != nil {
		return err
	}
	bands, err := models.Bands(m, path)
	if err != nil {
		return err
	}

	if !noPlot {
		fmt.Fprintln(cmd.OutOrStdout(), viz.PlotPath(bands, path.Labels, path.Ticks, plotOptions("")))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	fig := &export.Figure{X: path.K, Series: bands, Marks: path.Ticks, MarkLabels: export.PathLabels(path.Labels)}
	if err := writeSVG(cmd, fig); err != nil {
		return err
	}
	return writeTable(cmd, exportFormat, store.BandsTable(path.K, path.Kx, path.Ky, bands))
}

func runDOS(cmd *cobra.Command, args []string) error {
	m, err := getModel(args)
	if err != nil {
		return err
	}

	energies, _, err := m.Solver().Curve(energySteps)
	if err != nil {
		return err
	}
	rho, err := m.DOS(field.Vector(energies...), singularity)
	if err != nil {
		return err
	}
	if n := countInf(rho.Data()); n > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), viz.Warning.Render(fmt.Sprintf("%d singular energies kept as +Inf", n)))
	}

	if !noPlot {
		caption := fmt.Sprintf("%s DOS on [%.4g, %.4g]", m.Name(), m.Config().EMin(), m.Config().EMax())
		fmt.Fprintln(cmd.OutOrStdout(), viz.PlotCurve(rho.Data(), plotOptions(caption)))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if err := writeSVG(cmd, &export.Figure{X: energies, Series: [][]float64{rho.Data()}}); err != nil {
		return err
	}
	return writeTable(cmd, exportFormat, store.CurveTable("dos", energies, map[string][]float64{"dos": rho.Data()}, "dos"))
}

func countInf(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsInf(v, 1) {
			n++
		}
	}
	return n
}

func runGDOS(cmd *cobra.Command, args []string) error {
	m, err := getModel(args)
	if err != nil {
		return err
	}
	gm, ok := m.(models.GDOSModel)
	if !ok {
		return fmt.Errorf("%w: %s", dos.ErrNoGDOS, m.Name())
	}

	energies, _, err := m.Solver().Curve(energySteps)
	if err != nil {
		return err
	}
	g, err := gm.GDOS(field.Vector(energies...))
	if err != nil {
		return err
	}

	if !noPlot {
		caption := fmt.Sprintf("%s generalized DOS", m.Name())
		fmt.Fprintln(cmd.OutOrStdout(), viz.PlotCurve(g.Data(), plotOptions(caption)))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if err := writeSVG(cmd, &export.Figure{X: energies, Series: [][]float64{g.Data()}}); err != nil {
		return err
	}
	return writeTable(cmd, exportFormat, store.CurveTable("gdos", energies, map[string][]float64{"gdos": g.Data()}, "gdos"))
}

func runGrid(cmd *cobra.Command, args []string) error {
	m, err := getModel(args)
	if err != nil {
		return err
	}

	g, err := m.DispersionGrid(gridN1, gridN2)
	if err != nil {
		return err
	}
	return writeTable(cmd, gridFormat, store.GridTable(g.Kx.Data(), g.Ky.Data(), g.Energy.Data()))
}

var errCheckFailed = errors.New("check failed")

func runCheck(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = models.Names()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LATTICE\tNORMALIZATION\tEXPECTED\tDUAL RESIDUAL\tSTATUS")

	failed := 0
	for _, name := range names {
		m, err := models.Get(name)
		if err != nil {
			return err
		}
		r, err := check(m, checkSteps)
		if err != nil {
			return err
		}

		status := viz.Notice.Render("ok")
		if !r.ok() {
			status = viz.Failure.Render("FAIL")
			failed++
		}
		fmt.Fprintf(w, "%s\t%.6f\t%.0f\t%.2e\t%s\n", name, r.norm, r.expected, r.dual, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d lattice(s)", errCheckFailed, failed)
	}
	return nil
}

type checkResult struct {
	norm, expected, dual float64
}

const (
	normTolerance = 1e-2
	dualTolerance = 1e-9
)

func (r checkResult) ok() bool {
	return math.Abs(r.norm-r.expected) < normTolerance && r.dual < dualTolerance
}

// check integrates the DOS against the number of dispersive bands. Flat bands
// are delta functions and never show up in the integral.
func check(m models.Model, steps int) (checkResult, error) {
	norm, err := dos.Normalization(m.Solver(), steps)
	if err != nil {
		return checkResult{}, err
	}
	expected, err := dispersiveBands(m)
	if err != nil {
		return checkResult{}, err
	}
	return checkResult{norm: norm, expected: float64(expected), dual: m.Config().DualResidual()}, nil
}

func dispersiveBands(m models.Model) (int, error) {
	g, err := m.DispersionGrid(8, 8)
	if err != nil {
		return 0, err
	}
	e := g.Energy.Data()
	n := g.Kx.Size()

	count := 0
	for b := 0; b < len(e)/n; b++ {
		block := e[b*n : (b+1)*n]
		if floats.Max(block)-floats.Min(block) > 1e-9 {
			count++
		}
	}
	return count, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLATTICE\tTIMESTAMP\tTABLES\tNORMALIZATION")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.6f\n",
			r.ID, r.Lattice, r.Timestamp.Format("2006-01-02 15:04:05"), strings.Join(r.Tables, ","), r.Metrics["normalization"])
	}
	return w.Flush()
}
