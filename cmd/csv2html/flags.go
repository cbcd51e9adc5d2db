package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the csv2html command.
type cliFlags struct {
	input     string
	output    string
	meta      string
	config    string
	mode      string
	title     string
	introFile string
	linkLabel string
	color     string
	pdfPath   string
	timeout   string
	quiet     bool
	verbose   bool
	version   bool
	help      bool
}

// parseFlags parses command-line flags and returns positional args.
// A single positional argument is accepted as the input CSV; the
// --input flag takes precedence over it.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("csv2html", flag.ContinueOnError)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.input, "input", "i", "", "input CSV file")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML fragment file")
	fs.StringVar(&f.meta, "meta", "", "cluster metadata CSV (colored-table mode)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	// Rendering flags
	fs.StringVarP(&f.mode, "mode", "m", "", "render mode: table, nested-list, colored-table")
	fs.StringVar(&f.title, "title", "", "fragment heading text")
	fs.StringVar(&f.introFile, "intro", "", "Markdown file rendered above the title")
	fs.StringVar(&f.linkLabel, "link-label", "", "anchor text for entry links")
	fs.StringVar(&f.color, "default-color", "", "cluster heading fallback color (colored-table)")

	// Preview flags
	fs.StringVar(&f.pdfPath, "pdf", "", "also render a PDF preview to this path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF preview timeout (e.g., 30s, 2m)")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show skipped-row and timing detail")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
