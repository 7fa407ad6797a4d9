// Command xformlua runs Lua scripts with the xform module preloaded,
// for driving transform experiments without recompiling.
//
// Usage:
//
//	xformlua -script transform.lua
//	xformlua -e 'local x = require("xform"); print(x.identity())'
package main

import (
	"flag"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/xform/script"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "xformlua:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("xformlua", flag.ContinueOnError)
	var (
		scriptPath = fs.String("script", "", "Lua script file to run")
		expr       = fs.String("e", "", "Lua source to run directly")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*scriptPath == "") == (*expr == "") {
		return fmt.Errorf("exactly one of -script or -e is required")
	}

	L := lua.NewState()
	defer L.Close()
	script.Preload(L)

	if *expr != "" {
		return L.DoString(*expr)
	}
	return L.DoFile(*scriptPath)
}
