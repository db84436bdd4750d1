package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// DefaultTolerance is the absolute cost difference accepted as a match in
// reports. It is looser than prim_kruskal.DefaultTolerance because CSV costs
// are rounded to two decimals.
const DefaultTolerance = 0.01

// ErrMalformedRow indicates a CSV record that cannot be parsed into a Row.
var ErrMalformedRow = errors.New("report: malformed row")

// Header is the column list written by WriteCSV and expected by ReadCSV.
var Header = []string{
	"Graph_ID", "Vertices", "Edges", "Density",
	"Prim_Cost", "Prim_Edges", "Prim_Operations", "Prim_Time_ms",
	"Kruskal_Cost", "Kruskal_Edges", "Kruskal_Operations", "Kruskal_Time_ms",
	"Cost_Match", "Time_Difference_ms", "Operation_Difference", "Kruskal_Faster",
}

// AlgorithmColumns holds one engine's columns.
type AlgorithmColumns struct {
	Cost       float64
	Edges      int
	Operations int64
	TimeMs     float64
}

// Row is one line of the comparison table.
type Row struct {
	GraphID  int
	Vertices int
	Edges    int
	Density  float64

	Prim    AlgorithmColumns
	Kruskal AlgorithmColumns

	CostMatch           bool
	TimeDifferenceMs    float64
	OperationDifference int64
	KruskalFaster       bool
}

// RowFromComparison flattens c; costs match when they differ by less than tol.
func RowFromComparison(c prim_kruskal.Comparison, tol float64) Row {
	return Row{
		GraphID:             c.GraphID,
		Vertices:            c.Stats.Vertices,
		Edges:               c.Stats.Edges,
		Density:             c.Stats.Density,
		Prim:                columns(c.Prim),
		Kruskal:             columns(c.Kruskal),
		CostMatch:           c.CostMatch(tol),
		TimeDifferenceMs:    c.Prim.ElapsedMillis() - c.Kruskal.ElapsedMillis(),
		OperationDifference: c.OperationDifference(),
		KruskalFaster:       c.KruskalFaster(),
	}
}

// Rows converts every comparison with the same tolerance.
func Rows(cs []prim_kruskal.Comparison, tol float64) []Row {
	out := make([]Row, len(cs))
	for i, c := range cs {
		out[i] = RowFromComparison(c, tol)
	}

	return out
}

func columns(r prim_kruskal.Result) AlgorithmColumns {
	return AlgorithmColumns{
		Cost:       r.TotalCost,
		Edges:      r.EdgeCount(),
		Operations: r.Operations,
		TimeMs:     r.ElapsedMillis(),
	}
}

// Record renders r in Header order.
func (r Row) Record() []string {
	return []string{
		strconv.Itoa(r.GraphID),
		strconv.Itoa(r.Vertices),
		strconv.Itoa(r.Edges),
		strconv.FormatFloat(r.Density, 'f', 2, 64),
		strconv.FormatFloat(r.Prim.Cost, 'f', 2, 64),
		strconv.Itoa(r.Prim.Edges),
		strconv.FormatInt(r.Prim.Operations, 10),
		strconv.FormatFloat(r.Prim.TimeMs, 'f', 3, 64),
		strconv.FormatFloat(r.Kruskal.Cost, 'f', 2, 64),
		strconv.Itoa(r.Kruskal.Edges),
		strconv.FormatInt(r.Kruskal.Operations, 10),
		strconv.FormatFloat(r.Kruskal.TimeMs, 'f', 3, 64),
		strconv.FormatBool(r.CostMatch),
		strconv.FormatFloat(r.TimeDifferenceMs, 'f', 3, 64),
		strconv.FormatInt(r.OperationDifference, 10),
		strconv.FormatBool(r.KruskalFaster),
	}
}

// WriteCSV writes Header followed by one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("report: write graph %d: %w", r.GraphID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV. The header line is required
// and must match Header exactly.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedRow)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedRow, err)
	}
	for i, h := range Header {
		if head[i] != h {
			return nil, fmt.Errorf("%w: header column %d is %q, want %q", ErrMalformedRow, i, head[i], h)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// fieldParser parses columns left to right and keeps the first error.
type fieldParser struct {
	rec []string
	err error
}

func (p *fieldParser) atoi(i int) int {
	v, err := strconv.Atoi(p.rec[i])
	p.keep(i, err)
	return v
}

func (p *fieldParser) atoi64(i int) int64 {
	v, err := strconv.ParseInt(p.rec[i], 10, 64)
	p.keep(i, err)
	return v
}

func (p *fieldParser) atof(i int) float64 {
	v, err := strconv.ParseFloat(p.rec[i], 64)
	p.keep(i, err)
	if err == nil && math.IsNaN(v) {
		p.keep(i, strconv.ErrSyntax)
	}
	return v
}

func (p *fieldParser) atob(i int) bool {
	v, err := strconv.ParseBool(p.rec[i])
	p.keep(i, err)
	return v
}

func (p *fieldParser) keep(i int, err error) {
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %s: %w", Header[i], err)
	}
}

func parseRecord(rec []string) (Row, error) {
	p := &fieldParser{rec: rec}
	row := Row{
		GraphID:  p.atoi(0),
		Vertices: p.atoi(1),
		Edges:    p.atoi(2),
		Density:  p.atof(3),
		Prim: AlgorithmColumns{
			Cost:       p.atof(4),
			Edges:      p.atoi(5),
			Operations: p.atoi64(6),
			TimeMs:     p.atof(7),
		},
		Kruskal: AlgorithmColumns{
			Cost:       p.atof(8),
			Edges:      p.atoi(9),
			Operations: p.atoi64(10),
			TimeMs:     p.atof(11),
		},
		CostMatch:           p.atob(12),
		TimeDifferenceMs:    p.atof(13),
		OperationDifference: p.atoi64(14),
		KruskalFaster:       p.atob(15),
	}

	return row, p.err
}
