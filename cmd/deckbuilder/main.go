package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/peterkuimelis/deckbuilder/internal/bot"
	"github.com/peterkuimelis/deckbuilder/internal/config"
	"github.com/peterkuimelis/deckbuilder/internal/console"
	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
	"github.com/peterkuimelis/deckbuilder/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(ctx, os.Args[2:])
	case "sim":
		err = runSim(ctx, os.Args[2:])
	case "kingdoms":
		err = runKingdoms(os.Args[2:])
	case "cards":
		runCards()
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  deckbuilder play [--seats human,bigmoney] [--kingdom N|NAME|random] [--kingdoms FILE] [--seed S]")
	fmt.Println("  deckbuilder sim [--games N] [--players bigmoney,engine] [--kingdom N|NAME] [--workers W] [--seed S]")
	fmt.Println("  deckbuilder kingdoms [--kingdoms FILE]")
	fmt.Println("  deckbuilder cards")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play      Play one game at the terminal; bots fill the other seats")
	fmt.Println("  sim       Run a batch of bot games and print win rates")
	fmt.Println("  kingdoms  List the kingdoms in the kingdoms file")
	fmt.Println("  cards     List every card that can form a kingdom pile")
	fmt.Println()
	fmt.Printf("Strategies: human, %s\n", strings.Join(bot.Names, ", "))
}

// loadKingdom resolves ref against the kingdoms file. "random" draws ten
// kingdom cards instead.
func loadKingdom(path, ref string, seed int64) (game.KingdomEntry, error) {
	if ref == "random" {
		rng := rand.New(rand.NewSource(seed))
		cards := game.KingdomCards()
		rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		if len(cards) > 10 {
			cards = cards[:10]
		}
		return game.KingdomEntry{Name: "random", Cards: cards}, nil
	}
	kf, err := game.ParseKingdomFile(path)
	if err != nil {
		return game.KingdomEntry{}, fmt.Errorf("load kingdoms: %w", err)
	}
	return kf.Resolve(ref)
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	kingdomsFile := fs.String("kingdoms", "kingdoms.yaml", "path to kingdoms file")
	kingdomRef := fs.String("kingdom", "1", "kingdom number, name, or random")
	seats := fs.String("seats", "human,bigmoney", "comma-separated strategy per seat")
	seed := fs.Int64("seed", 0, "shuffle seed (0 = from the clock)")
	maxTurns := fs.Int("max-turns", 0, "turn cap over all players (0 = engine default)")
	fs.Parse(args)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	kingdom, err := loadKingdom(*kingdomsFile, *kingdomRef, *seed)
	if err != nil {
		return err
	}

	var strategies []game.Strategy
	humans := 0
	for i, name := range strings.Split(*seats, ",") {
		name = strings.TrimSpace(name)
		if name == "human" {
			strategies = append(strategies, console.NewPlayer(i, os.Stdin, os.Stdout))
			humans++
			continue
		}
		s, err := bot.New(name, kingdom.Cards, *seed+int64(i))
		if err != nil {
			return err
		}
		strategies = append(strategies, s)
	}

	cfg := game.GameConfig{
		Kingdom:  kingdom.Cards,
		Colonies: kingdom.Colonies,
		Seed:     *seed,
		MaxTurns: *maxTurns,
	}
	// console players print events themselves
	if humans == 0 {
		cfg.Logger = log.NewTextLogger(os.Stdout)
	}
	g, err := game.NewGame(cfg, strategies...)
	if err != nil {
		return err
	}

	fmt.Printf("Kingdom: %s (%s)\n", kingdom.Name, strings.Join(kingdom.Cards, ", "))
	winners, err := g.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════")
	fmt.Println("          GAME OVER")
	fmt.Println("═══════════════════════════════════")
	fmt.Println(g.State.Result)
	for i, score := range g.Scores() {
		fmt.Printf("  %s  %3d VP  %d turns\n", log.PlayerName(i), score, g.State.Players[i].TurnsTaken)
	}
	var names []string
	for _, w := range winners {
		names = append(names, log.PlayerName(w))
	}
	fmt.Printf("Winner: %s\n", strings.Join(names, ", "))
	fmt.Println("═══════════════════════════════════")
	return nil
}

func runSim(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	cfg, err := config.Load(fs, args)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	kingdom, err := loadKingdom(cfg.KingdomFile, cfg.Kingdom, cfg.Seed)
	if err != nil {
		return err
	}
	logger.Info("starting batch",
		zap.String("kingdom", kingdom.Name),
		zap.Int("games", cfg.Games),
		zap.Int("workers", cfg.Workers),
		zap.Strings("players", cfg.Players),
	)

	stats, err := sim.RunBatch(ctx, sim.FromConfig(cfg, kingdom, logger))
	if err != nil {
		return err
	}
	fmt.Print(stats)
	return nil
}

func runKingdoms(args []string) error {
	fs := flag.NewFlagSet("kingdoms", flag.ExitOnError)
	kingdomsFile := fs.String("kingdoms", "kingdoms.yaml", "path to kingdoms file")
	fs.Parse(args)

	kf, err := game.ParseKingdomFile(*kingdomsFile)
	if err != nil {
		return err
	}
	for i, k := range kf.Kingdoms {
		extra := ""
		if k.Colonies {
			extra = " +Colonies"
		}
		fmt.Printf("%2d) %s%s\n    %s\n", i+1, k.Name, extra, strings.Join(k.Cards, ", "))
	}
	return nil
}

func runCards() {
	for _, name := range game.KingdomCards() {
		c := game.MustLookup(name)
		fmt.Printf("%-16s %-8s %-22s %s\n", c.Name, c.Cost, c.Types, c.Description)
	}
}
