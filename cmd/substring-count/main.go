package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/substring-count/pkg/config"
	"github.com/Veraticus/substring-count/pkg/search"
	flag "github.com/spf13/pflag"
)

// options holds the parsed command line flags
type options struct {
	configPath   string
	engine       string
	emptyPattern string
	debug        bool
	help         bool

	flags *flag.FlagSet
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.help {
		printUsage(os.Stdout, opts.flags)
		os.Exit(0)
	}

	// The config path flag must be in place before Load reads it
	if opts.configPath != "" {
		if err := os.Setenv("SUBSTRING_COUNT_CONFIG", opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	deps, err := NewDependencies(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dependencies: %v\n", err)
		os.Exit(1)
	}

	app := NewApplication(deps)
	if isTerminal(os.Stdin) {
		app.SetPromptWriter(os.Stderr)
	}

	if err := app.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args into options. Errors and pflag's own messages go to errOut.
func parseFlags(args []string, errOut io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("substring-count", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.engine, "engine", "", "Search engine ("+strings.Join(search.Names(), ", ")+")")
	fs.StringVar(&opts.emptyPattern, "empty-pattern", "", "Empty pattern policy (zero, positions, reject)")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")
	opts.flags = fs

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

// apply overrides cfg with the flags that were set explicitly
func (o *options) apply(cfg *config.Config) error {
	if o.flags.Changed("engine") {
		cfg.Engine = o.engine
	}
	if o.flags.Changed("empty-pattern") {
		cfg.EmptyPattern = o.emptyPattern
	}
	if o.flags.Changed("debug") {
		cfg.Debug = o.debug
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "substring-count - count overlapping occurrences of a pattern in a text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: substring-count [OPTIONS] < input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reads the text from the first line of stdin and the pattern from the")
	fmt.Fprintln(w, "second, then prints the number of occurrences, overlaps included.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  SUBSTRING_COUNT_CONFIG         Path to config file")
	fmt.Fprintln(w, "  SUBSTRING_COUNT_ENGINE         Search engine (default: stdlib)")
	fmt.Fprintln(w, "  SUBSTRING_COUNT_EMPTY_PATTERN  Empty pattern policy (default: zero)")
	fmt.Fprintln(w, "  SUBSTRING_COUNT_DEBUG          Debug logging (true/false)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/substring-count/config.yaml")
}
