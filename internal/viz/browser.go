package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/latfun/internal/dos"
	"github.com/san-kum/latfun/internal/field"
	"github.com/san-kum/latfun/internal/hsl"
	"github.com/san-kum/latfun/internal/models"
)

const (
	viewBands = iota
	viewDOS
	viewPath
	viewInfo
	numViews
)

var viewNames = [numViews]string{"bands", "dos", "path", "info"}

var latticeInfo = map[string]string{
	"square":     "one band, log van Hove at 0",
	"triangular": "one band, van Hove at 2",
	"dice":       "two dispersive bands + flat band",
}

type entry struct {
	model    models.Model
	path     *hsl.Path
	bands    [][]float64
	energies []float64
	dos      []float64
	raw      []float64
	gdos     []float64
	norm     float64
}

func newEntry(m models.Model, segmentN, steps int) (entry, error) {
	e := entry{model: m}

	path, err := m.HSL(segmentN, "")
	if err != nil {
		return e, err
	}
	e.path = path
	if e.bands, err = models.Bands(m, path); err != nil {
		return e, err
	}

	if e.energies, e.dos, err = m.Solver().Curve(steps); err != nil {
		return e, err
	}
	raw, err := m.DOS(field.Vector(e.energies...), true)
	if err != nil {
		return e, err
	}
	e.raw = raw.Data()
	if e.norm, err = dos.Normalization(m.Solver(), steps); err != nil {
		return e, err
	}

	if gm, ok := m.(models.GDOSModel); ok {
		g, err := gm.GDOS(field.Vector(e.energies...))
		if err != nil {
			return e, err
		}
		e.gdos = g.Data()
	}
	return e, nil
}

// Browser is the Bubble Tea model for the lattice browser. All curves are
// computed up front; key presses only switch what is shown.
type Browser struct {
	entries       []entry
	cursor        int
	view          int
	theme         int
	singular      bool
	width, height int
	keys          KeyMap
}

func NewBrowser(segmentN, steps int) (*Browser, error) {
	b := &Browser{width: 100, height: 30, keys: DefaultKeyMap()}
	for _, name := range models.Names() {
		m, err := models.Get(name)
		if err != nil {
			return nil, err
		}
		e, err := newEntry(m, segmentN, steps)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		b.entries = append(b.entries, e)
	}
	return b, nil
}

// UseTheme selects the starting theme; unknown names keep the first.
func (b *Browser) UseTheme(name string) {
	b.theme = themeIndex(name)
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Up):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, b.keys.Down):
			if b.cursor < len(b.entries)-1 {
				b.cursor++
			}
		case key.Matches(msg, b.keys.NextView):
			b.view = (b.view + 1) % numViews
		case key.Matches(msg, b.keys.PrevView):
			b.view = (b.view + numViews - 1) % numViews
		case key.Matches(msg, b.keys.Singular):
			b.singular = !b.singular
		case key.Matches(msg, b.keys.Theme):
			b.theme = (b.theme + 1) % len(Themes)
		}
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
	}
	return b, nil
}

func (b Browser) Selected() models.Model { return b.entries[b.cursor].model }

// ViewName reports which tab is showing.
func (b Browser) ViewName() string { return viewNames[b.view] }

func (b Browser) View() string {
	theme := Themes[b.theme]
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	var s strings.Builder
	s.WriteString("\n  " + Title.Render("LATFUN") + "  " + Subtle.Render("tight-binding lattices") + "\n\n")

	for i, e := range b.entries {
		name := fmt.Sprintf("%-12s", e.model.Name())
		if i == b.cursor {
			s.WriteString("  " + accent.Render("▸ "+name) + " " + Selected.Render(latticeInfo[e.model.Name()]) + "\n")
		} else {
			s.WriteString("    " + muted.Render(name) + " " + Subtle.Render(latticeInfo[e.model.Name()]) + "\n")
		}
	}

	var tabs []string
	for i, v := range viewNames {
		if i == b.view {
			tabs = append(tabs, accent.Render("["+v+"]"))
		} else {
			tabs = append(tabs, muted.Render(" "+v+" "))
		}
	}
	s.WriteString("\n  " + strings.Join(tabs, " ") + "\n")
	s.WriteString("  " + Separator(min(b.width-4, 60)) + "\n")

	s.WriteString(indent(b.body(theme), "  ") + "\n\n")
	s.WriteString("  " + KeyHint.Render(helpLine(b.keys.ShortHelp())+"  ("+theme.Name+")") + "\n")
	return s.String()
}

func (b Browser) plotSize() (int, int) {
	w := max(b.width-16, 20)
	h := max(b.height-18, 6)
	return w, h
}

func (b Browser) body(theme Theme) string {
	e := b.entries[b.cursor]
	w, h := b.plotSize()

	switch b.view {
	case viewBands:
		return PlotPath(e.bands, e.path.Labels, e.path.Ticks, PlotOptions{Height: h, Width: w, Theme: theme})

	case viewDOS:
		y, caption := e.dos, "density of states (proxy at singular points)"
		if b.singular {
			y, caption = e.raw, "density of states (raw, divergences clipped)"
		}
		out := PlotCurve(y, PlotOptions{Height: h, Width: w, Caption: caption, Theme: theme})
		out += "\n\n" + Metric("∫ρ dE", fmt.Sprintf("%.6f", e.norm)) +
			"   " + Metric("proxy", fmt.Sprintf("%.6g", e.model.Solver().Proxy))
		if e.gdos != nil {
			out += "\n" + Metric("gdos", Sparkline(e.gdos, w))
		}
		return out

	case viewPath:
		c := NewCanvas(min(w, 2*h), h)
		c.Trace(e.path.Kx, e.path.Ky)
		return c.String() + Subtle.Render("path "+e.path.Labels+" in the kx-ky plane")

	default:
		cfg := e.model.Config()
		a1, a2 := cfg.Primitive()
		b1, b2 := cfg.Reciprocal()
		lines := []string{
			Metric("lattice  ", cfg.String()),
			Metric("a1, a2   ", fmt.Sprintf("%.4f  %.4f", a1, a2)),
			Metric("b1, b2   ", fmt.Sprintf("%.4f  %.4f", b1, b2)),
			Metric("dual err ", fmt.Sprintf("%.2e", cfg.DualResidual())),
			Metric("path     ", fmt.Sprintf("%s, %d samples", e.path.Labels, e.path.Len())),
			Metric("∫ρ dE    ", fmt.Sprintf("%.6f", e.norm)),
		}
		return Panel.BorderForeground(theme.Primary).Render(strings.Join(lines, "\n"))
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// RunBrowser starts the full-screen browser with the named theme.
func RunBrowser(segmentN, steps int, theme string) error {
	b, err := NewBrowser(segmentN, steps)
	if err != nil {
		return err
	}
	b.UseTheme(theme)
	_, err = tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
