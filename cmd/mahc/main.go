package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gondolyr/mahc"
	"github.com/gondolyr/mahc/internal/batch"
	"github.com/gondolyr/mahc/internal/config"
	"github.com/gondolyr/mahc/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line flags.
type options struct {
	tiles        string
	win          string
	dora         int
	seat         string
	prev         string
	tsumo        bool
	riichi       bool
	doubleRiichi bool
	ippatsu      bool
	haitei       bool
	chankan      bool
	rinshan      bool
	honba        int
	manual       string
	batch        string
	logLevel     string
	logFile      string
}

func (o options) conditions() mahc.WinConditions {
	return mahc.WinConditions{
		Tsumo:        o.tsumo,
		Riichi:       o.riichi,
		DoubleRiichi: o.doubleRiichi,
		Ippatsu:      o.ippatsu,
		Haitei:       o.haitei,
		Chankan:      o.chankan,
		Rinshan:      o.rinshan,
	}
}

func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("mahc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.tiles, "tiles", "", `hand groups separated by spaces, e.g. "123m 456p rrrdo 789s 55s"`)
	fs.StringVar(&o.win, "win", "", "winning tile, e.g. 3m")
	fs.IntVar(&o.dora, "dora", 0, "number of dora")
	fs.StringVar(&o.seat, "seat", cfg.SeatWind, "seat wind (e, s, w, n)")
	fs.StringVar(&o.prev, "prev", cfg.PrevalentWind, "prevalent wind (e, s, w, n)")
	fs.BoolVar(&o.tsumo, "tsumo", false, "won by self-draw")
	fs.BoolVar(&o.riichi, "riichi", false, "riichi declared")
	fs.BoolVar(&o.doubleRiichi, "double-riichi", false, "double riichi declared")
	fs.BoolVar(&o.ippatsu, "ippatsu", false, "won within one go-around of riichi")
	fs.BoolVar(&o.haitei, "haitei", false, "won on the last tile")
	fs.BoolVar(&o.chankan, "chankan", false, "robbed a kan")
	fs.BoolVar(&o.rinshan, "rinshan", false, "won on a kan replacement tile")
	fs.IntVar(&o.honba, "ba", 0, "honba count")
	fs.StringVar(&o.manual, "manual", "", `score a han/fu pair directly, e.g. "4 30"`)
	fs.StringVar(&o.batch, "batch", "", "score every hand in a YAML file")
	fs.StringVar(&o.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&o.logFile, "log-file", cfg.LogFile, "also write JSON logs to this file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

// parseManual reads a "HAN FU" pair.
func parseManual(s string) (han, fu int, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("manual expects \"HAN FU\", got %q", s)
	}
	if han, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid han %q: %w", fields[0], err)
	}
	if fu, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid fu %q: %w", fields[1], err)
	}
	return han, fu, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger, cleanup, err := logging.Setup(stderr, opts.logFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to setup logging: %v\n", err)
		return 1
	}
	defer cleanup()

	var out string
	switch {
	case opts.batch != "":
		logger.Debug("mode selected", "mode", "batch", "file", opts.batch)
		out, err = runBatch(opts.batch, cfg.CacheSize, opts.seat, opts.prev, logger)
	case opts.manual != "":
		logger.Debug("mode selected", "mode", "manual", "manual", opts.manual)
		out, err = runManual(opts.manual, opts.honba)
	default:
		logger.Debug("mode selected", "mode", "hand", "tiles", opts.tiles, "win", opts.win)
		out, err = runHand(opts)
	}
	if err != nil {
		logger.Debug("scoring failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func runManual(manual string, honba int) (string, error) {
	han, fu, err := parseManual(manual)
	if err != nil {
		return "", err
	}
	p, err := mahc.Calculate(han, fu, honba)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

func runHand(opts options) (string, error) {
	h, err := mahc.NewHand(strings.Fields(opts.tiles), opts.win, opts.seat, opts.prev, opts.conditions())
	if err != nil {
		return "", err
	}
	score, err := mahc.GetHandScore(h, opts.dora, opts.honba)
	if err != nil {
		return "", err
	}
	return score.String(), nil
}

func runBatch(path string, cacheSize int, seat, prev string, logger *slog.Logger) (string, error) {
	f, err := batch.Load(path)
	if err != nil {
		return "", fmt.Errorf("load batch: %w", err)
	}
	scorer, err := batch.NewScorer(cacheSize, seat, prev, logger)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, r := range scorer.ScoreAll(f) {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "== %s ==\n", r.Name)
		switch {
		case r.Err != nil:
			fmt.Fprintf(&b, "Error: %v", r.Err)
		case r.Score != nil:
			b.WriteString(r.Score.String())
		default:
			b.WriteString(r.Payments.String())
		}
	}
	return b.String(), nil
}
