// figstyle resolves embedded-content arrangement configuration against the
// host's structural capabilities and prints the surviving styles and groups.
//
// Usage:
//
//	figstyle --block --inline                 # resolve defaults for both placements
//	figstyle --config ./figstyle.yaml --block # resolve a user configuration
//	figstyle pick --block --inline            # interactive chooser, prints the pick
//
// Output formats (--format, auto-detected by default):
//
//	table  — aligned styled listing (default when stdout is a TTY)
//	names  — one style name per line (default when piped)
//	json   — the resolved result for automation
//
// Definitions that cannot be used are dropped and reported on stderr; user
// configuration problems never produce a non-zero exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/figstyle/figstyle/internal/config"
	"github.com/figstyle/figstyle/internal/picker"
	"github.com/figstyle/figstyle/internal/render"
	"github.com/figstyle/figstyle/pkg/arrange"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Check for the pick subcommand before flag parsing
	pick := len(args) > 0 && args[0] == "pick"
	if pick {
		args = args[1:]
	}

	fs := flag.NewFlagSet("figstyle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "Path to .figstyle.yaml (default: search cwd, then user config dir)")
	blockFlag := fs.Bool("block", false, "Host supports block-level placement")
	inlineFlag := fs.Bool("inline", false, "Host supports inline-level placement")
	formatFlag := fs.String("format", "", "Output format: auto, table, json, names")
	noColorFlag := fs.Bool("no-color", false, "Disable colored output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	flags := config.CliFlags{
		ConfigPath: *configFlag,
		Block:      *blockFlag,
		Inline:     *inlineFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			flags.Format, flags.FormatSet = *formatFlag, true
		case "no-color":
			flags.NoColor, flags.NoColorSet = *noColorFlag, true
		}
	})

	resolved, err := config.ResolveConfig(flags)
	if err != nil {
		fmt.Fprintf(stderr, "figstyle: %v\n", err)
		return 2
	}

	var rec arrange.Recorder
	res := arrange.Resolve(nil, resolved.Raw, resolved.Caps, &rec)

	theme := render.DefaultTheme()
	if resolved.NoColor || !isTTYWriter(stdout) {
		theme = render.MonoTheme()
	}
	r := render.New(theme)

	if len(rec.Warnings) > 0 {
		fmt.Fprint(stderr, r.Warnings(rec.Warnings))
	}

	if pick {
		choice, err := picker.Run(res)
		if err != nil {
			fmt.Fprintf(stderr, "figstyle: %v\n", err)
			return 1
		}
		if choice == "" {
			return 1
		}
		fmt.Fprintln(stdout, choice)
		return 0
	}

	format := resolved.Format
	if format == "auto" {
		if isTTYWriter(stdout) {
			format = "table"
		} else {
			format = "names"
		}
	}

	switch format {
	case "table":
		fmt.Fprint(stdout, r.Table(res))
	case "names":
		fmt.Fprint(stdout, r.Names(res))
	case "json":
		out, err := r.JSON(res)
		if err != nil {
			fmt.Fprintf(stderr, "figstyle: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, out)
	}
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
