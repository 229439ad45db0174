package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/NLnetLabs/octseq/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	layout  string
	in      string
	tlv     bool
	verbose bool
}

func main() {
	opts := parseFlags()
	logging.ConfigureRuntime()
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.With().Str("app", "octdump").Logger()

	if err := run(opts, os.Stdout); err != nil {
		fatalf("%v", err)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.layout, "layout", "", "path to a TOML layout describing the input")
	flag.StringVar(&opts.in, "in", "", "input file (empty or - reads stdin)")
	flag.BoolVar(&opts.tlv, "tlv", false, "decode the input as a TLV field payload")
	flag.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	flag.Parse()
	return opts
}

func run(opts options, w io.Writer) error {
	data, err := readInput(opts.in)
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(data)).Msg("input read")

	if opts.tlv {
		return dumpTLV(w, data)
	}
	if opts.layout == "" {
		return errors.New("a -layout file is required unless -tlv is set")
	}
	lay, err := loadLayout(opts.layout)
	if err != nil {
		return err
	}
	return dumpLayout(w, lay, data)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "octdump: "+format+"\n", args...)
	os.Exit(1)
}
