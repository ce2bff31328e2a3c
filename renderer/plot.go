package renderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/etnz/tourney"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSeries writes a PNG line chart of the series to w.
func PlotSeries(w io.Writer, metric tourney.Metric, points []tourney.Point) error {
	if len(points) == 0 {
		return errors.New("no points to plot")
	}

	p := plot.New()
	p.Title.Text = seriesTitle(metric)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = metric.String()
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Date.Time().Unix())
		xys[i].Y = pt.Value.InexactFloat64()
	}
	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("could not build the %s line: %w", metric, err)
	}
	p.Add(plotter.NewGrid(), line, scatter)

	wt, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("could not render chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
