package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/cybroslabs/liblzstring-go/base"
	"github.com/cybroslabs/liblzstring-go/codec"
	"github.com/fatih/color"
	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

type benchresult struct {
	name     string
	original int
	encoded  int
	ratio    float64
	encode   time.Duration
	decode   time.Duration
}

// measure compresses one input and checks it decodes back unchanged.
func measure(c base.Codec, name string, text string) (benchresult, error) {
	start := time.Now()
	enc := c.Encode(text)
	mid := time.Now()
	dec, err := c.Decode(enc)
	if err != nil {
		return benchresult{}, fmt.Errorf("%s: %w", name, err)
	}
	if dec != text {
		return benchresult{}, fmt.Errorf("%s: roundtrip mismatch", name)
	}
	return benchresult{
		name:     name,
		original: len(text),
		encoded:  len(enc),
		ratio:    codec.Ratio(len(text), len(enc)),
		encode:   mid.Sub(start),
		decode:   time.Since(mid),
	}, nil
}

func bench(c base.Codec, files []string, chartpath string, stdout, stderr io.Writer, logger *zap.SugaredLogger) error {
	bar := pb.New(len(files))
	bar.SetWriter(stderr)
	bar.Start()
	results := make([]benchresult, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			bar.Finish()
			return err
		}
		r, err := measure(c, filepath.Base(f), string(data))
		if err != nil {
			bar.Finish()
			return err
		}
		logger.Debugf("%s: %d -> %d in %v", r.name, r.original, r.encoded, r.encode)
		results = append(results, r)
		bar.Increment()
	}
	bar.Finish()

	report(stdout, c.Format(), results)
	if chartpath == "" {
		return nil
	}
	fh, err := os.Create(chartpath)
	if err != nil {
		return err
	}
	if err = renderchart(fh, c.Format(), results); err != nil {
		fh.Close()
		return fmt.Errorf("chart failed: %w", err)
	}
	if err = fh.Close(); err != nil {
		return fmt.Errorf("chart failed: %w", err)
	}
	logger.Infof("chart written to %s", chartpath)
	return nil
}

func report(w io.Writer, format base.Format, results []benchresult) {
	head := color.New(color.Bold)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgYellow)
	head.Fprintf(w, "%-32s %10s %10s %8s %12s %12s\n", "file ("+format.String()+")", "original", "encoded", "ratio", "encode", "decode")
	for _, r := range results {
		line := fmt.Sprintf("%-32s %10d %10d %7.2f%% %12v %12v\n", r.name, r.original, r.encoded, r.ratio, r.encode, r.decode)
		if r.ratio < 100 {
			good.Fprint(w, line)
		} else {
			bad.Fprint(w, line)
		}
	}
}

func renderchart(w io.Writer, format base.Format, results []benchresult) error {
	if len(results) == 0 {
		return fmt.Errorf("nothing to chart")
	}
	top := 100.0
	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		bars = append(bars, chart.Value{Label: r.name, Value: r.ratio})
		if r.ratio > top {
			top = r.ratio
		}
	}
	graph := chart.BarChart{
		Title:    "encoded size % of original (" + format.String() + ")",
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}
