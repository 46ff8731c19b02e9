// Package plot is the pipeline's optional diagnostic sink: a lollipop
// chart of per-iteration metrics and a Voronoi diagram of a reference
// sample set over a chosen feature pair. Both are best-effort — a caller
// that cannot or does not want to write HTML output may skip calling
// these entirely, and a failure here must never abort the pipeline.
package plot

import (
	"fmt"
	"math"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"

	"github.com/go-tabpipe/tabpipe/core"
	"github.com/go-tabpipe/tabpipe/dataframe"
)

// LollipopChart writes an HTML lollipop chart of metrics, keyed by
// iteration index, to path.
func LollipopChart(metrics []float64, title, path string) error {
	if len(metrics) == 0 {
		return core.New(core.EmptyInput, "no metrics to plot")
	}
	x := make([]float64, len(metrics))
	for i := range metrics {
		x[i] = float64(i)
	}

	stems := &grob.Scatter{
		Type: grob.TraceTypeScatter,
		X:    x,
		Y:    metrics,
		Mode: grob.ScatterModeLines,
		Line: &grob.ScatterLine{Color: "gray"},
		Name: "trend",
	}
	heads := &grob.Scatter{
		Type: grob.TraceTypeScatter,
		X:    x,
		Y:    metrics,
		Mode: grob.ScatterModeMarkers,
		Marker: &grob.ScatterMarker{
			Color: "black",
			Size:  10,
		},
		Name: "iteration metric",
	}

	fig := &grob.Fig{
		Data: grob.Traces{stems, heads},
		Layout: &grob.Layout{
			Title:      &grob.LayoutTitle{Text: title},
			Showlegend: grob.False,
		},
	}

	return offline.ToHtml(fig, path)
}

// VoronoiDiagram writes an HTML scatter plot approximating the Voronoi
// cells of refs over feature pair (i, j): a dense grid of background
// points colored by their nearest reference sample, measured by squared
// Euclidean distance over the plotted pair (i, j) only (neither may be
// labelIndex; the other feature columns are not considered), overlaid
// with the reference samples themselves. There is no Voronoi-cell
// library in this repo's dependency stack, so cell membership is
// computed by direct nearest-neighbor sampling rather than a proper
// Fortune's-algorithm polygon construction.
func VoronoiDiagram(refs []dataframe.Sample, labelIndex, i, j int, title, path string) error {
	if len(refs) == 0 {
		return core.New(core.EmptyInput, "no reference samples to plot")
	}
	if i == labelIndex || j == labelIndex || i < 0 || j < 0 || i >= len(refs[0]) || j >= len(refs[0]) {
		return core.New(core.OutOfBounds, "voronoi feature pair out of range or overlapping the label index")
	}

	loI, hiI := refs[0][i], refs[0][i]
	loJ, hiJ := refs[0][j], refs[0][j]
	for _, r := range refs {
		loI, hiI = math.Min(loI, r[i]), math.Max(hiI, r[i])
		loJ, hiJ = math.Min(loJ, r[j]), math.Max(hiJ, r[j])
	}

	const grid = 60
	cellX := make([][]float64, len(refs))
	cellY := make([][]float64, len(refs))
	for a := 0; a < grid; a++ {
		for b := 0; b < grid; b++ {
			x := loI + (hiI-loI)*float64(a)/float64(grid-1)
			y := loJ + (hiJ-loJ)*float64(b)/float64(grid-1)
			n := nearestCell(refs, i, j, x, y)
			cellX[n] = append(cellX[n], x)
			cellY[n] = append(cellY[n], y)
		}
	}

	traces := make(grob.Traces, 0, len(refs)+1)
	for n := range refs {
		if len(cellX[n]) == 0 {
			continue
		}
		traces = append(traces, &grob.Scatter{
			Type: grob.TraceTypeScatter,
			X:    cellX[n],
			Y:    cellY[n],
			Mode: grob.ScatterModeMarkers,
			Marker: &grob.ScatterMarker{
				Color:   cellColor(n),
				Opacity: 0.25,
				Size:    4,
			},
			Name: fmt.Sprintf("cell %d", n),
		})
	}

	refX := make([]float64, len(refs))
	refY := make([]float64, len(refs))
	for n, r := range refs {
		refX[n] = r[i]
		refY[n] = r[j]
	}
	points := &grob.Scatter{
		Type: grob.TraceTypeScatter,
		X:    refX,
		Y:    refY,
		Mode: grob.ScatterModeMarkers,
		Marker: &grob.ScatterMarker{
			Color: "black",
			Size:  8,
		},
		Name: "reference samples",
	}
	traces = append(traces, points)

	fig := &grob.Fig{
		Data: traces,
		Layout: &grob.Layout{
			Title:  &grob.LayoutTitle{Text: title},
			Xaxis:  &grob.LayoutXaxis{Title: &grob.LayoutXaxisTitle{Text: fmt.Sprintf("feature %d", i)}},
			Yaxis:  &grob.LayoutYaxis{Title: &grob.LayoutYaxisTitle{Text: fmt.Sprintf("feature %d", j)}},
			Height: 700,
			Width:  700,
		},
	}

	return offline.ToHtml(fig, path)
}

func nearestCell(refs []dataframe.Sample, i, j int, x, y float64) int {
	best, bestDist := 0, math.Inf(1)
	for n, r := range refs {
		dx, dy := r[i]-x, r[j]-y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist, best = d, n
		}
	}
	return best
}

// cellColor derives a stable, visually distinct hex color for reference
// point n by walking the hue wheel, so adjacent cells in the legend read
// as distinct regions without pulling in a palette dependency.
func cellColor(n int) string {
	hue := math.Mod(float64(n)*137.508, 360)
	r, g, b := hslToRGB(hue, 0.55, 0.6)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hslToRGB(h, s, l float64) (int, int, int) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}
	m := l - c/2
	return int((r1 + m) * 255), int((g1 + m) * 255), int((b1 + m) * 255)
}
