package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all flags for the converter CLI.
type convertFlags struct {
	output       string
	config       string
	workers      int
	theme        string
	inlineStyles bool
	linkTarget   string
	quiet        bool
	verbose      bool
	version      bool
}

// parseFlags parses command-line flags and returns positional args
// (delta JSON files).
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("delta2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.theme, "theme", "", "syntax highlighting theme for code blocks")
	fs.BoolVar(&f.inlineStyles, "inline-styles", false, "emit inline styles instead of ql- classes")
	fs.StringVar(&f.linkTarget, "link-target", "", "target attribute for rendered links")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// printUsage writes usage help.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: delta2html [flags] <delta.json>...

Converts Quill Delta JSON documents to HTML.

Flags:
  -o, --output        output file (single input) or directory
  -c, --config        config file name or path
  -w, --workers       parallel workers (0 = auto)
      --theme         syntax highlighting theme for code blocks
      --inline-styles emit inline styles instead of ql- classes
      --link-target   target attribute for rendered links
  -q, --quiet         only show errors
  -v, --verbose       show progress details
      --version       print version and exit
`)
}
