package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// cpuFeatures returns the detected CPU features that matter for
// floating point throughput on the current architecture. The list is
// empty on architectures the report does not know about.
func cpuFeatures() []string {
	var fs []string
	add := func(name string, on bool) {
		if on {
			fs = append(fs, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse2", cpu.X86.HasSSE2)
		add("sse41", cpu.X86.HasSSE41)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("fma", cpu.X86.HasFMA)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("fp", cpu.ARM64.HasFP)
		add("asimd", cpu.ARM64.HasASIMD)
		add("fphp", cpu.ARM64.HasFPHP)
		add("asimdhp", cpu.ARM64.HasASIMDHP)
		add("sve", cpu.ARM64.HasSVE)
	}
	return fs
}

// cpuFeatureString renders the feature list for the results header.
func cpuFeatureString() string {
	fs := cpuFeatures()
	if len(fs) == 0 {
		return "none"
	}
	return strings.Join(fs, ",")
}

func printCPUInfo(w io.Writer) {
	fmt.Fprintf(w, "goos: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "goarch: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "gomaxprocs: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(w, "features: %s\n", cpuFeatureString())
}
