// Package sim plays batches of bot-only games in parallel and aggregates the
// results.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/peterkuimelis/deckbuilder/internal/bot"
	"github.com/peterkuimelis/deckbuilder/internal/config"
	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// Batch describes a set of games that share a kingdom and seating.
type Batch struct {
	Games    int
	Seed     int64 // master seed; per-game seeds are drawn from it
	Workers  int
	MaxTurns int
	Kingdom  game.KingdomEntry
	Players  []string // strategy name per seat
	Logger   *zap.Logger
}

// FromConfig builds a Batch from loaded settings and the chosen kingdom.
func FromConfig(cfg config.SimConfig, kingdom game.KingdomEntry, logger *zap.Logger) Batch {
	return Batch{
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		Workers:  cfg.Workers,
		MaxTurns: cfg.MaxTurns,
		Kingdom:  kingdom,
		Players:  cfg.Players,
		Logger:   logger,
	}
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	ID       string
	Seed     int64
	Winners  []int
	Scores   []int
	Turns    int
	Reason   string
	Duration time.Duration
	Err      error
}

// Stats summarizes a batch.
type Stats struct {
	Games     int
	Players   []string
	Wins      []int // outright wins per seat
	Ties      int   // games shared by two or more seats
	Errors    int
	AvgTurns  float64
	AvgScores []float64
	Duration  time.Duration
	Results   []GameResult
}

// RunBatch plays b.Games games across b.Workers goroutines. A failing game is
// counted in Stats.Errors; only cancellation of ctx fails the batch.
func RunBatch(ctx context.Context, b Batch) (*Stats, error) {
	if b.Games < 1 {
		return nil, fmt.Errorf("run batch: games must be positive, got %d", b.Games)
	}
	if len(b.Players) == 0 {
		return nil, fmt.Errorf("run batch: no players")
	}
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := b.Workers
	if workers < 1 {
		workers = 1
	}

	// seeds are drawn up front so results do not depend on scheduling
	rng := rand.New(rand.NewSource(b.Seed))
	seeds := make([]int64, b.Games)
	for i := range seeds {
		if seeds[i] = rng.Int63(); seeds[i] == 0 {
			seeds[i] = 1
		}
	}

	start := time.Now()
	results := make([]GameResult, b.Games)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range results {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = RunGame(ctx, b, seeds[i], logger)
			if results[i].Err != nil {
				logger.Warn("game failed", zap.String("game", results[i].ID), zap.Error(results[i].Err))
			}
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("run batch: %w", err)
	}

	stats := Aggregate(b.Players, results)
	stats.Duration = time.Since(start)
	logger.Info("batch complete",
		zap.Int("games", stats.Games),
		zap.Ints("wins", stats.Wins),
		zap.Int("ties", stats.Ties),
		zap.Int("errors", stats.Errors),
		zap.Float64("avg_turns", stats.AvgTurns),
		zap.Duration("elapsed", stats.Duration),
	)
	return stats, nil
}

// RunGame plays a single game with fresh strategies.
func RunGame(ctx context.Context, b Batch, seed int64, logger *zap.Logger) GameResult {
	res := GameResult{Seed: seed}
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	strategies := make([]game.Strategy, len(b.Players))
	for i, name := range b.Players {
		s, err := bot.New(name, b.Kingdom.Cards, seed+int64(i))
		if err != nil {
			res.Err = err
			return res
		}
		strategies[i] = s
	}

	events := log.NewZapLogger(logger, false)
	g, err := game.NewGame(game.GameConfig{
		Kingdom:  b.Kingdom.Cards,
		Colonies: b.Kingdom.Colonies,
		Seed:     seed,
		MaxTurns: b.MaxTurns,
		Logger:   events,
	}, strategies...)
	if err != nil {
		res.Err = err
		return res
	}
	res.ID = g.State.ID.String()
	g.Logger = events.With(zap.String("game", res.ID))

	winners, err := g.Run(ctx)
	res.Turns = g.State.Turn
	res.Reason = g.State.Result
	if err != nil {
		res.Err = err
		return res
	}
	res.Winners = winners
	res.Scores = g.Scores()
	return res
}

// Aggregate folds results into Stats. Failed games count only as errors.
func Aggregate(players []string, results []GameResult) *Stats {
	s := &Stats{
		Games:     len(results),
		Players:   players,
		Wins:      make([]int, len(players)),
		AvgScores: make([]float64, len(players)),
		Results:   results,
	}
	var finished, turns int
	for _, r := range results {
		if r.Err != nil {
			s.Errors++
			continue
		}
		finished++
		turns += r.Turns
		for i, sc := range r.Scores {
			if i < len(s.AvgScores) {
				s.AvgScores[i] += float64(sc)
			}
		}
		switch len(r.Winners) {
		case 0:
		case 1:
			s.Wins[r.Winners[0]]++
		default:
			s.Ties++
		}
	}
	if finished > 0 {
		s.AvgTurns = float64(turns) / float64(finished)
		for i := range s.AvgScores {
			s.AvgScores[i] /= float64(finished)
		}
	}
	return s
}

// String renders the summary table printed by the sim command.
func (s *Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d games, %d ties, %d errors, %.1f turns on average\n", s.Games, s.Ties, s.Errors, s.AvgTurns)
	order := make([]int, len(s.Players))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return s.Wins[order[a]] > s.Wins[order[b]] })
	for _, i := range order {
		pct := 0.0
		if s.Games > 0 {
			pct = 100 * float64(s.Wins[i]) / float64(s.Games)
		}
		fmt.Fprintf(&sb, "  %s %-10s %5d wins (%5.1f%%)  avg %.1f VP\n", log.PlayerName(i), s.Players[i], s.Wins[i], pct, s.AvgScores[i])
	}
	return sb.String()
}
