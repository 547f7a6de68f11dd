package main

import (
	"fmt"
	"strings"

	"github.com/san-kum/latfun/internal/config"
	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/hsl"
	"github.com/san-kum/latfun/internal/models"
	"github.com/san-kum/latfun/internal/store"
	"github.com/san-kum/latfun/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func loadRunConfig() (*config.Config, error) {
	switch {
	case configFile != "":
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	case preset != "":
		lattice, name, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be lattice/name, got %q", preset)
		}
		cfg := config.GetPreset(lattice, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(lattice))
		}
		return cfg, nil
	default:
		return config.DefaultConfig(), nil
	}
}

type runResult struct {
	model    models.Model
	path     *hsl.Path
	bands    [][]float64
	energies []float64
	rho      []float64
	gdos     []float64
	tables   []*store.Table
	metrics  map[string]float64
}

// execute computes everything a run configuration asks for.
func execute(cfg *config.Config) (*runResult, error) {
	m, err := models.Get(cfg.Lattice)
	if err != nil {
		return nil, err
	}
	r := &runResult{model: m, metrics: make(map[string]float64)}

	if r.path, err = m.HSL(cfg.Path.N, cfg.Path.Points); err != nil {
		return nil, err
	}
	if r.bands, err = models.Bands(m, r.path); err != nil {
		return nil, err
	}
	r.tables = append(r.tables, store.BandsTable(r.path.K, r.path.Kx, r.path.Ky, r.bands))

	if r.energies, _, err = m.Solver().Curve(cfg.DOS.Steps); err != nil {
		return nil, err
	}
	energies := field.Vector(r.energies...)
	rho, err := m.DOS(energies, cfg.DOS.Singularity)
	if err != nil {
		return nil, err
	}
	r.rho = rho.Data()
	series := map[string][]float64{"dos": r.rho}
	order := []string{"dos"}

	if cfg.DOS.GDOS {
		gm, ok := m.(models.GDOSModel)
		if !ok {
			return nil, fmt.Errorf("%w: %s", dos.ErrNoGDOS, m.Name())
		}
		g, err := gm.GDOS(energies)
		if err != nil {
			return nil, err
		}
		r.gdos = g.Data()
		series["gdos"] = r.gdos
		order = append(order, "gdos")
	}
	r.tables = append(r.tables, store.CurveTable("dos", r.energies, series, order...))

	if cfg.Grid.Enabled() {
		g, err := m.DispersionGrid(cfg.Grid.N1, cfg.Grid.N2)
		if err != nil {
			return nil, err
		}
		r.tables = append(r.tables, store.GridTable(g.Kx.Data(), g.Ky.Data(), g.Energy.Data()))
	}

	norm, err := dos.Normalization(m.Solver(), cfg.DOS.Steps)
	if err != nil {
		return nil, err
	}
	r.metrics["normalization"] = norm
	r.metrics["dual_residual"] = m.Config().DualResidual()
	r.metrics["path_emin"] = floats.Min(r.bands[0])
	r.metrics["path_emax"] = floats.Max(r.bands[len(r.bands)-1])
	return r, nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	r, err := execute(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.Plot {
		o := viz.PlotOptions{Height: cfg.Output.Height, Width: cfg.Output.Width}
		fmt.Fprintln(out, viz.PlotPath(r.bands, r.path.Labels, r.path.Ticks, o))
		fmt.Fprintln(out)

		o.Caption = fmt.Sprintf("%s DOS", r.model.Name())
		fmt.Fprintln(out, viz.PlotCurve(r.rho, o))
		fmt.Fprintln(out)
	}

	dir := dataDir
	if cfg.Output.Dir != "" {
		dir = cfg.Output.Dir
	}
	st := store.New(dir)
	if err := st.Init(); err != nil {
		return err
	}

	meta := store.RunMetadata{
		Lattice:     cfg.Lattice,
		Format:      cfg.Output.Format,
		Points:      r.path.Labels,
		SegmentN:    cfg.Path.N,
		EnergySteps: cfg.DOS.Steps,
		Singularity: cfg.DOS.Singularity,
		Metrics:     r.metrics,
	}
	runID, err := st.Save(meta, r.tables...)
	if err != nil {
		return err
	}

	notice(cmd, "saved run %s (normalization %.6f)", runID, r.metrics["normalization"])
	fmt.Fprintln(out, runID)
	return nil
}
