// Command mediatype parses media type strings, reports grammar errors with
// their exact location, and prints the canonical form of every valid input.
//
// Inputs are taken from the command line arguments, or from stdin one per
// line when no arguments are given.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/JohnPeel/mediatype"
	"github.com/JohnPeel/mediatype/internal/errorutil"
	"github.com/JohnPeel/mediatype/internal/log"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to TOML config file")
		dev        = flag.Bool("dev", false, "use the developer logger")
		sortOut    = flag.Bool("sort", false, "sort and deduplicate the output")
		showParams = flag.Bool("params", false, "log the parameters of each parsed type")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mediatype: %v\n", err)
			os.Exit(1)
		}
	}
	// flags given explicitly win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dev":
			cfg.DevLog = *dev
		case "sort":
			cfg.Sort = *sortOut
		case "params":
			cfg.ShowParams = *showParams
		}
	})

	logger := log.Def
	if cfg.DevLog {
		logger = log.Dev
	}

	if err := run(logger, cfg, flag.Args()); err != nil {
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg config, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if line := sc.Text(); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			logger.Error("read stdin", "error", err)
			return err
		}
	}

	var (
		parsed []mediatype.MediaType
		failed bool
	)
	for _, in := range inputs {
		mt, err := mediatype.Parse(in)
		if err != nil {
			// grammar errors are per-input, everything else aborts
			if !errorutil.IsGrammarErr(err) {
				logger.Error("parse failed", "input", in, "error", err)
				return err
			}
			failed = true
			var perr *mediatype.ParseError
			if errors.As(err, &perr) {
				logger.Error("parse failed",
					"input", in, "field", perr.Field, "offset", perr.Pos, "error", err)
			} else {
				logger.Error("parse failed", "input", in, "error", err)
			}
			continue
		}

		if cfg.ShowParams {
			for k, v := range mt.Params() {
				logger.Info("parameter",
					"media_type", mt, "key", k.String(), "value", v.Unquoted())
			}
		}
		parsed = append(parsed, mt)
	}

	if cfg.Sort {
		slices.SortFunc(parsed, mediatype.MediaType.Compare)
		parsed = slices.CompactFunc(parsed, func(a, b mediatype.MediaType) bool {
			return a.Equal(b)
		})
	}
	for _, mt := range parsed {
		fmt.Println(mt)
	}

	if failed {
		return errors.New("some inputs failed to parse")
	}
	return nil
}
