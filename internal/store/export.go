package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

var (
	ErrRaggedTable = errors.New("store: row width differs from header")
	ErrFormat      = errors.New("store: unknown export format")
)

// Table is a named block of float columns.
type Table struct {
	Name    string      `json:"name"`
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

func (t *Table) check() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%w: %s row %d has %d values, want %d", ErrRaggedTable, t.Name, i, len(row), len(t.Columns))
		}
	}
	return nil
}

// Column returns a copy of the named column, or nil.
func (t *Table) Column(name string) []float64 {
	for j, c := range t.Columns {
		if c != name {
			continue
		}
		col := make([]float64, len(t.Rows))
		for i, row := range t.Rows {
			col[i] = row[j]
		}
		return col
	}
	return nil
}

// BandsTable lays out a band structure along a path: arc length, kx, ky,
// then one column per band.
func BandsTable(k, kx, ky []float64, bands [][]float64) *Table {
	cols := []string{"k", "kx", "ky"}
	for b := range bands {
		cols = append(cols, fmt.Sprintf("e%d", b))
	}

	rows := make([][]float64, len(k))
	for i := range k {
		row := []float64{k[i], kx[i], ky[i]}
		for _, band := range bands {
			row = append(row, band[i])
		}
		rows[i] = row
	}
	return &Table{Name: "bands", Columns: cols, Rows: rows}
}

// CurveTable pairs energies with one or more sampled functions of energy.
func CurveTable(name string, energies []float64, series map[string][]float64, order ...string) *Table {
	cols := append([]string{"energy"}, order...)
	rows := make([][]float64, len(energies))
	for i, e := range energies {
		row := []float64{e}
		for _, s := range order {
			row = append(row, series[s][i])
		}
		rows[i] = row
	}
	return &Table{Name: name, Columns: cols, Rows: rows}
}

// GridTable flattens a dispersion grid. energy holds the band blocks back to
// back, each len(kx) long.
func GridTable(kx, ky, energy []float64) *Table {
	n := len(kx)
	nb := 0
	if n > 0 {
		nb = len(energy) / n
	}

	cols := []string{"kx", "ky"}
	for b := 0; b < nb; b++ {
		cols = append(cols, fmt.Sprintf("e%d", b))
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := []float64{kx[i], ky[i]}
		for b := 0; b < nb; b++ {
			row = append(row, energy[b*n+i])
		}
		rows[i] = row
	}
	return &Table{Name: "grid", Columns: cols, Rows: rows}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func WriteCSV(w io.Writer, t *Table) error {
	if err := t.check(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for j, v := range row {
			record[j] = formatFloat(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV. Infinite values round-trip as
// "+Inf".
func ReadCSV(r io.Reader, name string) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{Name: name}, nil
	}

	t := &Table{Name: name, Columns: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for i, rec := range records[1:] {
		row := make([]float64, len(rec))
		for j, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("store: %s row %d column %d: %w", name, i, j, err)
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

type jsonTable struct {
	Name    string                `json:"name"`
	Columns []string              `json:"columns"`
	Data    map[string][]*float64 `json:"data"`
}

// WriteJSON writes the table column-wise. JSON has no infinities or NaN;
// such cells are written as null.
func WriteJSON(w io.Writer, t *Table) error {
	if err := t.check(); err != nil {
		return err
	}

	out := jsonTable{
		Name:    t.Name,
		Columns: t.Columns,
		Data:    make(map[string][]*float64, len(t.Columns)),
	}
	for j, c := range t.Columns {
		col := make([]*float64, len(t.Rows))
		for i, row := range t.Rows {
			v := row[j]
			if !math.IsInf(v, 0) && !math.IsNaN(v) {
				col[i] = &v
			}
		}
		out.Data[c] = col
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// ReadJSON parses a table written by WriteJSON; nulls come back as NaN.
func ReadJSON(r io.Reader) (*Table, error) {
	var in jsonTable
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}

	n := 0
	if len(in.Columns) > 0 {
		n = len(in.Data[in.Columns[0]])
	}
	t := &Table{Name: in.Name, Columns: in.Columns, Rows: make([][]float64, n)}
	for i := range t.Rows {
		row := make([]float64, len(in.Columns))
		for j, c := range in.Columns {
			col := in.Data[c]
			if i >= len(col) {
				return nil, fmt.Errorf("%w: column %s", ErrRaggedTable, c)
			}
			if col[i] == nil {
				row[j] = math.NaN()
			} else {
				row[j] = *col[i]
			}
		}
		t.Rows[i] = row
	}
	return t, nil
}

// Write dispatches on format, "csv" or "json".
func Write(w io.Writer, format string, t *Table) error {
	switch format {
	case "csv":
		return WriteCSV(w, t)
	case "json":
		return WriteJSON(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}
