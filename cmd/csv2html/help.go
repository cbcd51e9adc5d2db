package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2html [input.csv] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a tagged CSV table into an embeddable HTML fragment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Input CSV file (default: table.csv)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Input CSV file")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML fragment (default: tags_list.html)")
	fmt.Fprintln(w, "      --meta <path>         Cluster metadata CSV (default: clusters.csv if present)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -m, --mode <s>            Render mode: table, nested-list, colored-table")
	fmt.Fprintln(w, "      --title <s>           Fragment heading (default: Table of Contents)")
	fmt.Fprintln(w, "      --intro <path>        Markdown file rendered above the title")
	fmt.Fprintln(w, "      --link-label <s>      Anchor text for entry links")
	fmt.Fprintln(w, "      --default-color <s>   Cluster heading fallback color")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF Preview:")
	fmt.Fprintln(w, "      --pdf <path>          Also render a PDF preview via headless Chrome")
	fmt.Fprintln(w, "  -t, --timeout <d>         Preview timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show skipped-row and timing detail")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CSV2HTML_CONFIG, CSV2HTML_INPUT, CSV2HTML_OUTPUT, CSV2HTML_MODE,")
	fmt.Fprintln(w, "  CSV2HTML_META, CSV2HTML_TIMEOUT")
}
