// Package chart renders report charts to SVG in memory.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/polkiloo/loyaltycampaign/internal/domain/model"
)

// ContentType is the media type of rendered charts.
const ContentType = "image/svg+xml"

const (
	width    = 8 * vg.Inch
	height   = 5 * vg.Inch
	barWidth = 48
	headroom = 1.12
)

var (
	blue  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	green = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	red   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Chart is a rendered figure.
type Chart struct {
	Name  string
	Title string
	SVG   []byte
}

// Plotter turns analysis results into charts.
type Plotter struct{}

// NewPlotter constructs Plotter.
func NewPlotter() *Plotter {
	return &Plotter{}
}

// CampaignImpact draws gross and net impact as bars with their values on top.
func (p *Plotter) CampaignImpact(impact model.CampaignImpact) (Chart, error) {
	const title = "Campaign Impact on Loyalty Program Memberships"
	pl := plot.New()
	pl.Title.Text = title
	pl.Y.Label.Text = "Number of Memberships"

	values := []float64{float64(impact.Gross), float64(impact.Net())}
	colors := []color.Color{blue, green}
	for i, v := range values {
		bars, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(barWidth*2))
		if err != nil {
			return Chart{}, fmt.Errorf("campaign impact bars: %w", err)
		}
		bars.XMin = float64(i)
		bars.Color = colors[i]
		bars.LineStyle.Width = 0
		pl.Add(bars)
	}
	if err := addValueLabels(pl, values, []string{strconv.Itoa(impact.Gross), strconv.Itoa(impact.Net())}); err != nil {
		return Chart{}, err
	}
	pl.NominalX("Gross Impact", "Net Impact")
	pl.X.Min, pl.X.Max = -0.5, 1.5
	fitY(pl, values)

	return render("campaign-impact", title, pl)
}

// Demographics draws one bar chart per attribute. Attributes without any
// category yield no chart.
func (p *Plotter) Demographics(demo model.Demographics) ([]Chart, error) {
	charts := make([]Chart, 0, len(demo))
	for _, dist := range demo {
		if len(dist.Shares) == 0 {
			continue
		}
		c, err := p.distribution(dist)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}

func (p *Plotter) distribution(dist model.Distribution) (Chart, error) {
	title := "Campaign Adoption by " + dist.Attribute
	pl := plot.New()
	pl.Title.Text = title
	pl.Y.Label.Text = "Proportion of New Enrollments"

	values := make(plotter.Values, len(dist.Shares))
	names := make([]string, len(dist.Shares))
	for i, s := range dist.Shares {
		values[i] = s.Proportion
		names[i] = s.Category
	}

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return Chart{}, fmt.Errorf("%s bars: %w", dist.Attribute, err)
	}
	bars.Color = blue
	bars.LineStyle.Width = 0
	pl.Add(bars)
	pl.NominalX(names...)
	pl.X.Min, pl.X.Max = -0.5, float64(len(names))-0.5
	pl.X.Tick.Label.Rotation = math.Pi / 4
	pl.X.Tick.Label.XAlign = text.XRight
	pl.X.Tick.Label.YAlign = text.YCenter
	fitY(pl, values)

	return render("demographics-"+slug(dist.Attribute), title, pl)
}

// SeasonalFlights draws summer flight totals of both years as a labelled line.
func (p *Plotter) SeasonalFlights(flights model.SeasonalFlights) (Chart, error) {
	const title = "Impact on Booked Flights During Summer"
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "Year"
	pl.Y.Label.Text = "Total Flights Booked"

	values := []float64{float64(flights.Baseline), float64(flights.Comparison)}
	xys := plotter.XYs{{X: 0, Y: values[0]}, {X: 1, Y: values[1]}}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return Chart{}, fmt.Errorf("seasonal flights line: %w", err)
	}
	line.Color = red
	points.Color = red
	points.Shape = draw.CircleGlyph{}
	pl.Add(line, points)
	if err := addValueLabels(pl, values, []string{strconv.Itoa(flights.Baseline), strconv.Itoa(flights.Comparison)}); err != nil {
		return Chart{}, err
	}
	pl.NominalX(strconv.Itoa(flights.BaselineYear), strconv.Itoa(flights.ComparisonYear))
	pl.X.Min, pl.X.Max = -0.5, 1.5
	fitY(pl, values)

	return render("seasonal-flights", title, pl)
}

func addValueLabels(pl *plot.Plot, values []float64, texts []string) error {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("value labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
	}
	labels.Offset = vg.Point{Y: vg.Points(4)}
	pl.Add(labels)
	return nil
}

// fitY anchors the axis at zero and leaves room for labels above the tallest value.
func fitY(pl *plot.Plot, values []float64) {
	top := 0.0
	bottom := 0.0
	for _, v := range values {
		top = math.Max(top, v)
		bottom = math.Min(bottom, v)
	}
	if top == 0 {
		top = 1
	}
	pl.Y.Min = bottom * headroom
	pl.Y.Max = top * headroom
}

func render(name, title string, pl *plot.Plot) (Chart, error) {
	w, err := pl.WriterTo(width, height, "svg")
	if err != nil {
		return Chart{}, fmt.Errorf("render %s: %w", name, err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return Chart{}, fmt.Errorf("render %s: %w", name, err)
	}
	return Chart{Name: name, Title: title, SVG: buf.Bytes()}, nil
}

func slug(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case len(out) > 0 && out[len(out)-1] != '-':
			out = append(out, '-')
		}
	}
	return string(out)
}
