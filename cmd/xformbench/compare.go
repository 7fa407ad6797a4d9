package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/perf/benchfmt"
)

// results holds sec/op samples keyed by full benchmark name.
type results map[string][]float64

func readResults(path string) (results, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseResults(f, path)
}

// parseResults reads benchmark result lines from r. Malformed lines
// are skipped, matching the tolerant reading of benchstat.
func parseResults(r io.Reader, name string) (results, error) {
	out := make(results)
	reader := benchfmt.NewReader(r, name)
	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *benchfmt.Result:
			v, ok := rec.Value("sec/op")
			if !ok {
				ns, ok := rec.Value("ns/op")
				if !ok {
					continue
				}
				v = ns * 1e-9
			}
			key := rec.Name.String()
			out[key] = append(out[key], v)
		case *benchfmt.SyntaxError:
			slog.Warn("skipping malformed result line", "err", rec)
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no benchmark results found", name)
	}
	return out, nil
}

// compareFiles renders an old/new comparison table of mean sec/op per
// benchmark, with rows for benchmarks present in only one file.
func compareFiles(w io.Writer, oldPath, newPath string) error {
	oldRes, err := readResults(oldPath)
	if err != nil {
		return err
	}
	newRes, err := readResults(newPath)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(oldRes))
	for name := range oldRes {
		names = append(names, name)
	}
	for name := range newRes {
		if _, ok := oldRes[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "name\told sec/op\tnew sec/op\tdelta\n")
	for _, name := range names {
		o, haveOld := oldRes[name]
		n, haveNew := newRes[name]
		// benchfmt records names with the Benchmark prefix already
		// stripped, so only the runner's underscore separator is left.
		display := strings.TrimPrefix(name, "_")
		switch {
		case !haveNew:
			fmt.Fprintf(tw, "%s\t%s\t\tdeleted\n", display, formatSec(mean(o)))
		case !haveOld:
			fmt.Fprintf(tw, "%s\t\t%s\tadded\n", display, formatSec(mean(n)))
		default:
			om, nm := mean(o), mean(n)
			delta := "~"
			if om != 0 {
				delta = fmt.Sprintf("%+.2f%%", (nm-om)/om*100)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", display, formatSec(om), formatSec(nm), delta)
		}
	}
	return tw.Flush()
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// formatSec prints a duration in seconds with a benchstat style unit
// suffix.
func formatSec(s float64) string {
	switch {
	case s < 1e-6:
		return fmt.Sprintf("%.2fn", s*1e9)
	case s < 1e-3:
		return fmt.Sprintf("%.2fµ", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.2fm", s*1e3)
	}
	return fmt.Sprintf("%.2f", s)
}
