// Command xformbench runs the registered matrix micro-benchmarks
// without the go test harness and reports results in the standard
// benchmark text format, so the output feeds directly into benchstat
// and friends.
//
// Usage:
//
//	xformbench -filter concat -count 5
//	xformbench -config bench.toml -o results.txt
//	xformbench -compare old.txt,new.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"github.com/gogpu/xform/bench"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "xformbench:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("xformbench", flag.ContinueOnError)
	var (
		filter  = fs.String("filter", "", "run only benchmarks whose name matches this regexp")
		count   = fs.Int("count", 1, "repeat each benchmark this many times")
		cfgPath = fs.String("config", "", "load settings from a TOML file (explicit flags win)")
		list    = fs.Bool("list", false, "list registered benchmark names and exit")
		cpuinfo = fs.Bool("cpuinfo", false, "print the CPU feature report and exit")
		output  = fs.String("o", "", "write results to this file instead of stdout")
		mem     = fs.Bool("mem", false, "report allocation statistics with each result")
		compare = fs.String("compare", "", "compare two result files, given as old.txt,new.txt")
		verbose = fs.Bool("v", false, "enable debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(l)
		bench.SetLogger(l)
	}

	if *cpuinfo {
		printCPUInfo(stdout)
		return nil
	}
	if *list {
		for _, name := range bench.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	if *compare != "" {
		oldPath, newPath, ok := strings.Cut(*compare, ",")
		if !ok {
			return fmt.Errorf("-compare wants two files: old.txt,new.txt")
		}
		return compareFiles(stdout, oldPath, newPath)
	}

	cfg := defaultConfig()
	if *cfgPath != "" {
		if err := loadConfig(*cfgPath, &cfg); err != nil {
			return err
		}
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["filter"] {
		cfg.Filter = *filter
	}
	if set["count"] {
		cfg.Count = *count
	}
	if set["mem"] {
		cfg.Mem = *mem
	}
	if set["o"] {
		cfg.Output = *output
	}
	if cfg.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", cfg.Count)
	}

	if cfg.Output == "" {
		return runBenchmarks(stdout, cfg)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := runBenchmarks(f, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Debug("results written", "path", cfg.Output)
	return nil
}

// runBenchmarks executes every registered benchmark matching the
// filter and writes one result line per run, preceded by the
// configuration header.
func runBenchmarks(w io.Writer, cfg config) error {
	names := bench.Names()
	if cfg.Filter != "" {
		re, err := regexp.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("bad filter: %w", err)
		}
		names = slices.DeleteFunc(names, func(name string) bool {
			return !re.MatchString(name)
		})
	}
	if len(names) == 0 {
		return fmt.Errorf("no benchmarks match filter %q", cfg.Filter)
	}

	fmt.Fprintf(w, "goos: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "goarch: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "pkg: github.com/gogpu/xform/bench\n")
	fmt.Fprintf(w, "cpufeatures: %s\n", cpuFeatureString())

	procs := runtime.GOMAXPROCS(0)
	for _, name := range names {
		for i := 0; i < cfg.Count; i++ {
			res, err := bench.Run(name)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("Benchmark_%s-%d\t%s", name, procs, res.String())
			if cfg.Mem {
				line += "\t" + res.MemString()
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
