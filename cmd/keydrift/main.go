// Command keydrift searches for high-scoring keyboard layouts: it counts
// n-grams over a text corpus, scores candidate layouts against a weighted
// statistic set, and anneals through the permutation space.
//
// The search core never exits on its own; every unrecoverable error
// bubbles up here, where the terminal cursor is restored before the
// process dies non-zero.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/keydrift/keydrift/anneal"
	"github.com/keydrift/keydrift/corpus"
	"github.com/keydrift/keydrift/eval"
	"github.com/keydrift/keydrift/ingest"
	"github.com/keydrift/keydrift/keyspace"
	"github.com/keydrift/keydrift/layout"
	"github.com/keydrift/keydrift/rank"
)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz.,;/"

// config collects every knob of one search run. Flags override KEYDRIFT_*
// environment variables (loaded from .env when present), which override
// the defaults.
type config struct {
	corpusPath string
	alphabet   string
	rows       int
	cols       int
	workers    int
	seed       int64
	iters      int
	tempStart  float64
	cool       float64
	tempFloor  float64
	climb      bool
	cacheDir   string
	top        int
}

func main() {
	// A missing .env is fine; explicit flags always win.
	_ = godotenv.Load()

	var cfg config
	flag.StringVar(&cfg.corpusPath, "corpus", envStr("KEYDRIFT_CORPUS", ""), "Path to corpus text file")
	flag.StringVar(&cfg.alphabet, "alphabet", envStr("KEYDRIFT_ALPHABET", defaultAlphabet), "Characters to assign to keys, in symbol order")
	flag.IntVar(&cfg.rows, "rows", envInt("KEYDRIFT_ROWS", 3), "Grid rows")
	flag.IntVar(&cfg.cols, "cols", envInt("KEYDRIFT_COLS", 10), "Grid columns")
	flag.IntVar(&cfg.workers, "workers", envInt("KEYDRIFT_WORKERS", anneal.DefaultOptions().Workers), "Parallel candidates, one per worker")
	flag.Int64Var(&cfg.seed, "seed", int64(envInt("KEYDRIFT_SEED", 0)), "Base RNG seed (0 = fixed default)")
	flag.IntVar(&cfg.iters, "iters", envInt("KEYDRIFT_ITERS", 20000), "Maximum annealing rounds")
	flag.Float64Var(&cfg.tempStart, "temp", 2.0, "Starting temperature")
	flag.Float64Var(&cfg.cool, "cool", 0.9995, "Per-round temperature multiplier")
	flag.Float64Var(&cfg.tempFloor, "floor", 1e-4, "Stop once temperature falls below this")
	flag.BoolVar(&cfg.climb, "climb", false, "Greedy hill-climb instead of annealing")
	flag.StringVar(&cfg.cacheDir, "cache", envStr("KEYDRIFT_CACHE", ".keydrift-cache"), "Corpus count cache directory (empty disables)")
	flag.IntVar(&cfg.top, "top", 10, "Results to print")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.corpusPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: keydrift -corpus <file> [-rows N -cols N -iters N ...]")
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		fatal(logger, err)
	}
}

// fatal restores cursor visibility, reports the error and exits non-zero.
// Single exit point for every unrecoverable condition.
func fatal(logger *zap.Logger, err error) {
	fmt.Print("\x1b[?25h")
	logger.Error("fatal", zap.Error(err))
	os.Exit(1)
}

func run(cfg config, logger *zap.Logger) error {
	ab, err := ingest.NewAlphabet(cfg.alphabet)
	if err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}

	geom, err := keyspace.NewGeometry(cfg.rows, cfg.cols)
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	if geom.Dim1() < ab.Len() {
		return fmt.Errorf("grid has %d slots for %d symbols", geom.Dim1(), ab.Len())
	}

	body, err := os.ReadFile(cfg.corpusPath)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}

	var cache *ingest.Cache
	if cfg.cacheDir != "" {
		if cache, err = ingest.OpenCache(cfg.cacheDir); err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer func() { _ = cache.Close() }()
	}

	counts, err := ingest.CountCached(cache, body, ab)
	if err != nil {
		return fmt.Errorf("count corpus: %w", err)
	}
	logger.Info("corpus counted",
		zap.Int("alphabet", ab.Len()),
		zap.Int("bytes", len(body)))

	freq, err := corpus.Normalize(counts)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	set, weights, err := defaultStats(geom)
	if err != nil {
		return fmt.Errorf("statistics: %w", err)
	}

	ev, err := eval.New(geom, freq, set, weights)
	if err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}

	seedName := "run-" + uuid.NewString()[:8]
	seedLt, err := layout.New(seedName, geom, weights.Shape())
	if err != nil {
		return fmt.Errorf("seed layout: %w", err)
	}
	for i := range seedLt.Grid {
		if i < ab.Len() {
			seedLt.Grid[i] = i
		} else {
			seedLt.Grid[i] = -1 // unassigned slot, contributes nothing
		}
	}

	ledger := rank.NewLedger()
	engine, err := anneal.NewEngine(seedLt, ev, anneal.Options{
		Workers: cfg.workers,
		Seed:    cfg.seed,
		Ledger:  ledger,
	})
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	logger.Info("search started",
		zap.String("run", seedName),
		zap.Int("workers", engine.Workers()),
		zap.Bool("climb", cfg.climb),
		zap.Float64("initial", engine.BestScore()))

	// Hide the cursor for the progress loop; fatal() and the normal exit
	// path both restore it.
	fmt.Print("\x1b[?25l")
	defer fmt.Print("\x1b[?25h")

	temp := cfg.tempStart
	for round := 0; round < cfg.iters; round++ {
		var (
			st   anneal.RoundStats
			serr error
		)
		if cfg.climb {
			st, serr = engine.ImproveStep()
		} else {
			st, serr = engine.Step(temp)
			temp *= cfg.cool
			if temp < cfg.tempFloor {
				logger.Info("temperature floor reached", zap.Int("round", round))

				break
			}
		}
		if serr != nil {
			return fmt.Errorf("round %d: %w", round, serr)
		}
		if st.Improved {
			logger.Info("new best",
				zap.Int("round", round),
				zap.Float64("score", st.Best),
				zap.Float64("temp", temp))
		}
	}

	best, err := engine.Best()
	if err != nil {
		return fmt.Errorf("best layout: %w", err)
	}
	report(best, ab, ledger, cfg.top, engine.BestScore())

	return nil
}

// envStr reads an environment default for a flag.
func envStr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}

// envInt reads an integer environment default for a flag.
func envInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return def
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	gridStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	ledgerStyle = lipgloss.NewStyle().Faint(true)
)

// report prints the winning layout grid and the top ledger entries.
func report(best *layout.Layout, ab *ingest.Alphabet, ledger *rank.Ledger, top int, score float64) {
	fmt.Println(titleStyle.Render("keydrift — best layout found"))

	var rows []string
	cols := best.Geom.Cols
	for r := 0; r < best.Geom.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			ch, ok := ab.Rune(best.Grid[r*cols+c])
			if !ok {
				ch = '·'
			}
			sb.WriteRune(ch)
		}
		rows = append(rows, sb.String())
	}
	fmt.Println(gridStyle.Render(strings.Join(rows, "\n")))
	fmt.Println(scoreStyle.Render(fmt.Sprintf("score: %.4f", score)))

	if top > 0 && ledger.Len() > 0 {
		fmt.Println(ledgerStyle.Render(fmt.Sprintf("accepted candidates: %d, top %d:", ledger.Len(), top)))
		for i, e := range ledger.Top(top) {
			fmt.Println(ledgerStyle.Render(fmt.Sprintf("  %2d. %-24s %.4f", i+1, e.Name, e.Score)))
		}
	}
}
