// Command rssweep sweeps injected error counts for a Reed-Solomon code,
// tabulates both decoders' success rates over randomized trials and renders
// the curves to an interactive HTML chart.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/experiments"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/logging"
)

func main() {
	q := flag.Uint64("q", 97, "prime field order")
	k := flag.Int("k", 3, "message length in symbols")
	n := flag.Int("n", 15, "codeword length in symbols")
	maxErrors := flag.Int("max-errors", 8, "largest injected error count")
	trials := flag.Int("trials", 50, "trials per error count")
	seed := flag.String("seed", "rssweep", "seed for the trial randomness")
	outPath := flag.String("out", "sweep.html", "output HTML file")
	flag.Parse()

	log := logging.GetLogger(fmt.Sprintf("GF(%d) k=%d n=%d", *q, *k, *n))

	points, err := experiments.Sweep(*q, *k, *n, *maxErrors, *trials, *seed)
	if err != nil {
		log.Error().Err(err).Msg("sweep failed")
		os.Exit(1)
	}

	summary, err := experiments.Summarize(points)
	if err != nil {
		log.Error().Err(err).Msg("summary failed")
		os.Exit(1)
	}
	log.Info().
		Float64("meanUniqueRate", summary.MeanUnique).
		Float64("meanListRate", summary.MeanList).
		Msg("sweep finished")

	if err := renderChart(*outPath, *q, *k, *n, points); err != nil {
		log.Error().Err(err).Msg("chart rendering failed")
		os.Exit(1)
	}
	log.Info().Str("out", *outPath).Msg("chart written")
}

func renderChart(path string, q uint64, k, n int, points []experiments.SweepPoint) error {
	xs := make([]string, len(points))
	unique := make([]opts.LineData, len(points))
	list := make([]opts.LineData, len(points))
	for i, pt := range points {
		xs[i] = fmt.Sprintf("%d", pt.Errors)
		unique[i] = opts.LineData{Value: pt.UniqueRate}
		list[i] = opts.LineData{Value: pt.ListRate}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Decoding success rate, GF(%d) [%d, %d] code", q, n, k),
			Subtitle: fmt.Sprintf("unique radius %d", (n-k)/2),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "injected errors"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "success rate", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(xs).
		AddSeries("unique decoder", unique).
		AddSeries("list decoder", list)

	page := components.NewPage().SetPageTitle("Reed-Solomon decoder sweep")
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
