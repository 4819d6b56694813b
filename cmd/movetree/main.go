package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"movetree/pkg/board"
	"movetree/pkg/endgame"
	"movetree/pkg/movetree"
	"movetree/pkg/render"
)

func NewLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func main() {
	cfgPath := flag.String("config", "", "optional config file, env vars override defaults")
	flag.Parse()

	cfg, err := Setup(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup configuration: %v\n", err)
		os.Exit(1)
	}

	logger := NewLogger(cfg.Verbose)
	defer logger.Sync()

	renderer := render.NewRenderer()
	if cfg.NoColor {
		renderer = render.NewPlainRenderer()
	}

	// Build the move tree, reporting every new frontier depth
	listener := movetree.NewStatsListener()
	listener.
		OnDepth(func(stats movetree.BuildStats) {
			logger.Info("frontier advanced",
				zap.Int("depth", stats.MaxDepth),
				zap.Int("nodes", stats.Nodes),
			)
		}).
		OnDone(func(stats movetree.BuildStats) {
			logger.Info("move tree built",
				zap.Int("nodes", stats.Nodes),
				zap.Int("expansions", stats.Expansions),
				zap.Int("pruned", stats.Pruned),
				zap.Int("max_depth", stats.MaxDepth),
				zap.Int64("time_ms", stats.TimeMs),
			)
		})

	builder := movetree.NewBuilder().SetListener(listener).SetLogger(logger)
	root := builder.Build(cfg.Depth)

	if cfg.Depth <= 2 {
		// Small trees are worth looking at whole
		if err := renderer.Tree(os.Stdout, root); err != nil {
			logger.Error("tree rendering failed", zap.Error(err))
		}
	}

	if cfg.Endgames {
		printEndgames(renderer)
	}

	playRandomGame(cfg, logger, renderer)
}

// printEndgames shows the minimal winning end-games grown from the first
// canonical skeleton: all 5-move boards, then all 6-move boards
func printEndgames(renderer *render.Renderer) {
	skeleton := endgame.Skeletons(board.Cross)[0]

	fmt.Println("skeleton:")
	fmt.Println(renderer.Board(skeleton))

	sequences := []struct {
		label string
		seq   *endgame.BoardSeq
	}{
		{"5-move wins", endgame.PermuteTwoOpposingMoves(skeleton)},
		{"6-move wins", endgame.PermuteThreeOpposingMoves(skeleton)},
	}

	for _, entry := range sequences {
		seq, label := entry.seq, entry.label
		count := 0
		for _, ok := seq.Next(); ok; _, ok = seq.Next() {
			count++
		}

		fmt.Printf("\n%s: %d boards, first of them:\n", label, count)
		seq.Reset()
		if b, ok := seq.Next(); ok {
			fmt.Println(renderer.Board(b))
		}
	}
}

func playRandomGame(cfg *Config, logger *zap.Logger, renderer *render.Renderer) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves, winner := board.RandomPlayout(board.Cross, rng)
	logger.Info("random playout finished",
		zap.Int64("seed", seed),
		zap.Int("moves", len(moves)),
		zap.String("winner", winner.String()),
	)

	final, err := board.Board{}.After(moves)
	if err != nil {
		logger.Fatal("playout produced an illegal sequence", zap.Error(err))
	}
	fmt.Println("\nrandom playout:")
	fmt.Println(renderer.Board(final))
}
