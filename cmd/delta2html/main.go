package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	delta2html "github.com/alnah/go-delta2html"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.version {
		fmt.Println("delta2html " + Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	opts, err := resolveOptions(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	poolSize := delta2html.ResolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := delta2html.NewConverterPool(poolSize, delta2html.WithHTMLOptions(opts))

	if err := run(flags, args, pool, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
