package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPlotBandsHeight(t *testing.T) {
	bands := [][]float64{{-2, -1, 0, 1, 2}, {0, 0, 0, 0, 0}, {2, 1, 0, -1, -2}}
	out := PlotBands(bands, PlotOptions{Height: 8, Width: 30})

	if lines := strings.Count(out, "\n") + 1; lines < 8 {
		t.Errorf("expected at least 8 lines, got %d", lines)
	}
	if PlotBands(nil, PlotOptions{Height: 8, Width: 30}) != "" {
		t.Error("expected empty plot for no bands")
	}
}

func TestPlotCurveCaption(t *testing.T) {
	out := PlotCurve([]float64{0, 1, math.Inf(1), 1, 0}, PlotOptions{Height: 5, Width: 20, Caption: "rho"})
	if !strings.Contains(out, "rho") {
		t.Errorf("caption missing:\n%s", out)
	}
	if strings.Contains(out, "Inf") || strings.Contains(out, "NaN") {
		t.Errorf("non-finite leaked into plot:\n%s", out)
	}
}

func TestClip(t *testing.T) {
	got := clip([]float64{1, math.Inf(1), 3, math.NaN()})
	want := []float64{1, 3, 3, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("clip[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPathAxis(t *testing.T) {
	axis := PathAxis("GXMG", []float64{0, 1, 2, 3}, 31, 4)
	runes := []rune(axis)

	want := map[int]rune{4: 'Γ', 14: 'X', 24: 'M', 34: 'Γ'}
	for col, r := range want {
		if col >= len(runes) || runes[col] != r {
			t.Errorf("column %d: want %c in %q", col, r, axis)
		}
	}
}

func TestSparkline(t *testing.T) {
	s := Sparkline([]float64{0, 1, 2, 3}, 4)
	if strings.Count(s, "▁") != 1 || strings.Count(s, "█") != 1 {
		t.Errorf("unexpected sparkline %q", s)
	}
	if Sparkline(nil, 3) != "───" {
		t.Error("expected dashes for empty input")
	}
}

func TestCanvasTrace(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Trace([]float64{0, 1, 1, 0}, []float64{0, 0, 1, 0})

	if c.Lit() == 0 {
		t.Fatal("nothing drawn")
	}
	if len(strings.Split(strings.TrimRight(c.String(), "\n"), "\n")) != 5 {
		t.Errorf("expected 5 rows:\n%s", c.String())
	}

	c.Clear()
	if c.Lit() != 0 {
		t.Error("clear left dots behind")
	}
}

func TestCanvasSetBounds(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	if c.Lit() != 0 {
		t.Error("out-of-range dots were drawn")
	}
	c.Set(3, 3)
	if c.Grid[0][1] != brailleBlank+0x80 {
		t.Errorf("dot (3,3) = %U", c.Grid[0][1])
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("missing").Name != Themes[0].Name {
		t.Error("expected fallback to first theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, b Browser, keys ...string) Browser {
	t.Helper()
	for _, k := range keys {
		m, _ := b.Update(keyMsg(k))
		b = m.(Browser)
	}
	return b
}

func TestBrowserNavigation(t *testing.T) {
	nb, err := NewBrowser(10, 200)
	if err != nil {
		t.Fatal(err)
	}
	b := *nb

	if b.Selected().Name() != "dice" {
		t.Errorf("expected dice first, got %s", b.Selected().Name())
	}

	b = press(t, b, "j", "down", "j")
	if b.Selected().Name() != "triangular" {
		t.Errorf("expected cursor clamped at triangular, got %s", b.Selected().Name())
	}
	b = press(t, b, "k")
	if b.Selected().Name() != "square" {
		t.Errorf("expected square, got %s", b.Selected().Name())
	}

	for _, want := range []string{"dos", "path", "info", "bands"} {
		b = press(t, b, "tab")
		if b.ViewName() != want {
			t.Errorf("view %s, want %s", b.ViewName(), want)
		}
	}

	b = press(t, b, "t")
	if b.theme != 1 {
		t.Errorf("theme %d, want 1", b.theme)
	}
}

func TestBrowserViews(t *testing.T) {
	nb, err := NewBrowser(10, 200)
	if err != nil {
		t.Fatal(err)
	}
	b := press(t, *nb, "j") // square

	want := []string{"Γ", "density of states", "path GXMG", "dual err"}
	for i, s := range want {
		if out := b.View(); !strings.Contains(out, s) {
			t.Errorf("view %d missing %q", i, s)
		}
		b = press(t, b, "tab")
	}

	b = press(t, b, "tab", "s")
	if !strings.Contains(b.View(), "raw") {
		t.Error("singular toggle not shown")
	}
}

func TestBrowserQuit(t *testing.T) {
	nb, err := NewBrowser(5, 100)
	if err != nil {
		t.Fatal(err)
	}

	_, cmd := nb.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestBrowserResize(t *testing.T) {
	nb, err := NewBrowser(5, 100)
	if err != nil {
		t.Fatal(err)
	}
	m, _ := nb.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	b := m.(Browser)
	if w, h := b.plotSize(); w != 44 || h != 6 {
		t.Errorf("plot size %dx%d, want 44x6", w, h)
	}
}

func TestBrowserUseTheme(t *testing.T) {
	nb, err := NewBrowser(5, 100)
	if err != nil {
		t.Fatal(err)
	}
	nb.UseTheme("ocean")
	if !strings.Contains(nb.View(), "(ocean)") {
		t.Error("expected ocean theme in key hints")
	}
	nb.UseTheme("missing")
	if nb.theme != 0 {
		t.Errorf("theme %d, want fallback 0", nb.theme)
	}
}
