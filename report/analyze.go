package report

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Category is a half-open vertex-count range [Min, Max).
type Category struct {
	Name string
	Min  int
	Max  int
}

// Categories used by Analyze, smallest first.
var Categories = []Category{
	{Name: "Small (< 50V)", Min: 0, Max: 50},
	{Name: "Medium (50-500V)", Min: 50, Max: 500},
	{Name: "Large (> 500V)", Min: 500, Max: math.MaxInt},
}

// CategoryStats aggregates the rows that fall into one Category.
type CategoryStats struct {
	Category
	Graphs       int
	AvgPrimMs    float64
	AvgKruskalMs float64
}

// Speedup returns AvgPrimMs / AvgKruskalMs, or 0 when Kruskal took no time.
func (c CategoryStats) Speedup() float64 { return ratio(c.AvgPrimMs, c.AvgKruskalMs) }

// Mismatch records a graph whose costs disagreed.
type Mismatch struct {
	GraphID     int
	PrimCost    float64
	KruskalCost float64
}

// Summary is the aggregate view of a comparison table.
type Summary struct {
	Graphs      int
	CostMatches int
	Mismatches  []Mismatch

	PrimWins       int
	KruskalWins    int
	TotalPrimMs    float64
	TotalKruskalMs float64

	// Categories holds only the non-empty size categories.
	Categories []CategoryStats

	TotalPrimOps    int64
	TotalKruskalOps int64

	// AvgVerticesKruskalFaster is the mean vertex count of the graphs on
	// which Kruskal won; 0 when it never did.
	AvgVerticesKruskalFaster float64
}

// Speedup returns TotalPrimMs / TotalKruskalMs, or 0 when Kruskal took no time.
func (s Summary) Speedup() float64 { return ratio(s.TotalPrimMs, s.TotalKruskalMs) }

// OperationRatio returns TotalKruskalOps / TotalPrimOps, or 0 without Prim operations.
func (s Summary) OperationRatio() float64 {
	return ratio(float64(s.TotalKruskalOps), float64(s.TotalPrimOps))
}

// AllCostsMatch reports whether no mismatch was recorded.
func (s Summary) AllCostsMatch() bool { return len(s.Mismatches) == 0 }

// Analyze aggregates rows. Ties in time count as Prim wins, since Kruskal
// wins only when strictly faster.
func Analyze(rows []Row) Summary {
	s := Summary{Graphs: len(rows)}
	var kruskalVertices int
	for _, r := range rows {
		if r.CostMatch {
			s.CostMatches++
		} else {
			s.Mismatches = append(s.Mismatches, Mismatch{
				GraphID:     r.GraphID,
				PrimCost:    r.Prim.Cost,
				KruskalCost: r.Kruskal.Cost,
			})
		}

		if r.KruskalFaster {
			s.KruskalWins++
			kruskalVertices += r.Vertices
		} else {
			s.PrimWins++
		}
		s.TotalPrimMs += r.Prim.TimeMs
		s.TotalKruskalMs += r.Kruskal.TimeMs
		s.TotalPrimOps += r.Prim.Operations
		s.TotalKruskalOps += r.Kruskal.Operations
	}
	if s.KruskalWins > 0 {
		s.AvgVerticesKruskalFaster = float64(kruskalVertices) / float64(s.KruskalWins)
	}

	for _, c := range Categories {
		cs := CategoryStats{Category: c}
		for _, r := range rows {
			if r.Vertices >= c.Min && r.Vertices < c.Max {
				cs.Graphs++
				cs.AvgPrimMs += r.Prim.TimeMs
				cs.AvgKruskalMs += r.Kruskal.TimeMs
			}
		}
		if cs.Graphs == 0 {
			continue
		}
		cs.AvgPrimMs /= float64(cs.Graphs)
		cs.AvgKruskalMs /= float64(cs.Graphs)
		s.Categories = append(s.Categories, cs)
	}

	return s
}

// WriteText renders the summary as a sectioned plain-text report.
func (s Summary) WriteText(w io.Writer) error {
	tw := &textWriter{w: w}

	tw.section("MST ALGORITHMS - ANALYSIS REPORT")
	if s.Graphs == 0 {
		tw.printf("No graphs to analyze.\n")
		return tw.err
	}

	tw.section("1. COST ACCURACY CHECK")
	tw.printf("Matches:    %d / %d (%.1f%%)\n", s.CostMatches, s.Graphs, percent(s.CostMatches, s.Graphs))
	tw.printf("Mismatches: %d / %d (%.1f%%)\n\n", len(s.Mismatches), s.Graphs, percent(len(s.Mismatches), s.Graphs))
	if s.AllCostsMatch() {
		tw.printf("All costs match.\n")
	} else {
		tw.printf("WARNING: both algorithms must produce identical costs.\nMismatched graphs:\n")
		for _, m := range s.Mismatches {
			tw.printf("  Graph %d: Prim=%.2f, Kruskal=%.2f (delta=%.2f)\n",
				m.GraphID, m.PrimCost, m.KruskalCost, math.Abs(m.PrimCost-m.KruskalCost))
		}
	}

	tw.section("2. PERFORMANCE SUMMARY")
	tw.printf("Prim wins:    %d / %d graphs\n", s.PrimWins, s.Graphs)
	tw.printf("Kruskal wins: %d / %d graphs\n\n", s.KruskalWins, s.Graphs)
	tw.printf("Total execution time:\n")
	tw.printf("  Prim:    %.2f ms\n", s.TotalPrimMs)
	tw.printf("  Kruskal: %.2f ms\n", s.TotalKruskalMs)
	tw.printf("  Speedup: %.2fx (Kruskal)\n", s.Speedup())

	tw.section("3. SCALABILITY ANALYSIS")
	for _, c := range s.Categories {
		tw.printf("%s: %d graphs\n", c.Name, c.Graphs)
		tw.printf("  Avg Prim time:    %.3f ms\n", c.AvgPrimMs)
		tw.printf("  Avg Kruskal time: %.3f ms\n", c.AvgKruskalMs)
		tw.printf("  Speedup:          %.2fx\n\n", c.Speedup())
	}

	tw.section("4. OPERATION EFFICIENCY")
	tw.printf("Total operations:\n")
	tw.printf("  Prim:    %d\n", s.TotalPrimOps)
	tw.printf("  Kruskal: %d\n", s.TotalKruskalOps)
	tw.printf("Kruskal/Prim operation ratio: %.2f\n", s.OperationRatio())

	tw.section("5. RECOMMENDATIONS")
	for _, c := range s.Categories {
		tw.printf("%s: %s\n", c.Name, recommend(c))
	}
	if s.KruskalWins > 0 {
		tw.printf("Kruskal won on graphs averaging %.1f vertices.\n", s.AvgVerticesKruskalFaster)
	}

	return tw.err
}

// recommend names the faster engine for a category; within 10% it calls a draw.
func recommend(c CategoryStats) string {
	sp := c.Speedup()
	switch {
	case sp == 0:
		return "no timing data"
	case sp > 1.1:
		return fmt.Sprintf("prefer Kruskal (%.2fx faster)", sp)
	case sp < 1/1.1:
		return fmt.Sprintf("prefer Prim (%.2fx faster)", 1/sp)
	default:
		return "either algorithm (performance similar)"
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func percent(n, total int) float64 {
	return 100 * ratio(float64(n), float64(total))
}

// textWriter is an io.Writer that remembers the first write error.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) section(title string) {
	rule := strings.Repeat("=", 48)
	t.printf("\n%s\n%s\n%s\n\n", rule, title, rule)
}
