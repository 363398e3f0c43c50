package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/dataset"
)

const (
	barWidth   = 24
	barSpacing = 12
)

// viridis stops, low to high.
var viridis = []drawing.Color{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 59, G: 82, B: 139, A: 255},
	{R: 33, G: 145, B: 140, A: 255},
	{R: 94, G: 201, B: 98, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}

// rdBu is the sequential red-blue palette used for pie slices.
var rdBu = []drawing.Color{
	{R: 103, G: 0, B: 31, A: 255},
	{R: 178, G: 24, B: 43, A: 255},
	{R: 214, G: 96, B: 77, A: 255},
	{R: 244, G: 165, B: 130, A: 255},
	{R: 253, G: 219, B: 199, A: 255},
	{R: 247, G: 247, B: 247, A: 255},
	{R: 209, G: 229, B: 240, A: 255},
	{R: 146, G: 197, B: 222, A: 255},
	{R: 67, G: 147, B: 195, A: 255},
	{R: 33, G: 102, B: 172, A: 255},
	{R: 5, G: 48, B: 97, A: 255},
}

// Datum is one region and its value in a chart.
type Datum struct {
	Region string
	Value  float64
}

// RankedValues returns the regions that carry a numeric field, sorted by
// value descending. Ties keep table order.
func RankedValues(t *dataset.Table, d config.Dashboard, field string) []Datum {
	out := make([]Datum, 0, t.Len())
	for _, row := range t.Rows {
		v, ok := row.Number(field)
		if !ok || math.IsNaN(v) {
			continue
		}
		out = append(out, Datum{Region: regionName(row, d), Value: v})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})

	return out
}

// Shares sums a numeric field per region in first-appearance order.
// Regions whose total is not positive take no share.
func Shares(t *dataset.Table, d config.Dashboard, field string) []Datum {
	index := make(map[string]int)
	sums := make([]Datum, 0, t.Len())
	for _, row := range t.Rows {
		v, ok := row.Number(field)
		if !ok || math.IsNaN(v) {
			continue
		}

		name := regionName(row, d)
		i, seen := index[name]
		if !seen {
			i = len(sums)
			index[name] = i
			sums = append(sums, Datum{Region: name})
		}
		sums[i].Value += v
	}

	out := sums[:0]
	for _, s := range sums {
		if s.Value > 0 {
			out = append(out, s)
		}
	}

	return out
}

// BarChart renders the ranked bar chart as inline SVG.
func BarChart(t *dataset.Table, d config.Dashboard) (template.HTML, error) {
	opts := d.BarChart
	data := RankedValues(t, d, opts.Field)
	if len(data) == 0 {
		return emptyChart(opts, d.NoData), nil
	}

	f := NewFormatter(d.Locale, d.Placeholder)

	lo, hi := 0.0, 0.0
	for _, v := range data {
		lo = math.Min(lo, v.Value)
		hi = math.Max(hi, v.Value)
	}
	if hi-lo <= 0 {
		hi = lo + 1
	}

	bars := make([]chart.Value, 0, len(data))
	for _, v := range data {
		c := scaleColor(viridis, (v.Value-lo)/(hi-lo))
		bars = append(bars, chart.Value{
			Label: html.EscapeString(v.Region),
			Value: v.Value,
			Style: chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 1},
		})
	}

	width := opts.Width
	if need := len(bars)*(barWidth+barSpacing) + 120; need > width {
		width = need
	}

	// go-chart writes text nodes verbatim
	bc := chart.BarChart{
		Title:      html.EscapeString(opts.Title),
		Width:      width,
		Height:     opts.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{FontSize: 7},
		YAxis: chart.YAxis{
			Name:  html.EscapeString(opts.ValueLabel),
			Range: &chart.ContinuousRange{Min: lo, Max: hi + (hi-lo)*0.05},
			ValueFormatter: func(v interface{}) string {
				if x, ok := v.(float64); ok {
					return f.Number(x)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return "", fmt.Errorf("render bar chart: %w", err)
	}

	return template.HTML(buf.String()), nil
}

// PieChart renders the share chart as inline SVG.
func PieChart(t *dataset.Table, d config.Dashboard) (template.HTML, error) {
	opts := d.PieChart
	data := Shares(t, d, opts.Field)
	if len(data) == 0 {
		return emptyChart(opts, d.NoData), nil
	}

	total := 0.0
	for _, v := range data {
		total += v.Value
	}

	values := make([]chart.Value, 0, len(data))
	for i, v := range data {
		c := rdBu[i%len(rdBu)]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", html.EscapeString(v.Region), v.Value/total*100),
			Value: v.Value,
			Style: chart.Style{FillColor: c, StrokeColor: drawing.ColorWhite, StrokeWidth: 1, FontSize: 7},
		})
	}

	pc := chart.PieChart{
		Title:      html.EscapeString(opts.Title),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Values:     values,
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.SVG, &buf); err != nil {
		return "", fmt.Errorf("render pie chart: %w", err)
	}

	return template.HTML(buf.String()), nil
}

// emptyChart draws the chart frame with its title and a no-data note.
func emptyChart(opts config.Chart, note string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[2]d" viewBox="0 0 %[1]d %[2]d">`+
			`<text x="%[3]d" y="32" text-anchor="middle" font-size="16">%[4]s</text>`+
			`<text x="%[3]d" y="%[5]d" text-anchor="middle" font-size="13" fill="#888">%[6]s</text>`+
			`</svg>`,
		opts.Width, opts.Height, opts.Width/2,
		html.EscapeString(opts.Title), opts.Height/2, html.EscapeString(note),
	))
}

// scaleColor interpolates linearly between palette stops, pos in [0, 1].
func scaleColor(stops []drawing.Color, pos float64) drawing.Color {
	if pos <= 0 || math.IsNaN(pos) {
		return stops[0]
	}
	if pos >= 1 {
		return stops[len(stops)-1]
	}

	scaled := pos * float64(len(stops)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	a, b := stops[i], stops[i+1]

	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}

	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func regionName(row dataset.Row, d config.Dashboard) string {
	if v, ok := row.Get(d.RegionField); ok {
		return v.String()
	}
	return d.UnknownRegion
}
