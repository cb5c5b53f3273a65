package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	Kingdom   []string // kingdom card names; basic piles are added automatically
	Logger    log.EventLogger
	Seed      int64 // RNG seed (0 for random)
	NoShuffle bool  // skip every shuffle's reordering (for deterministic tests)
	MaxTurns  int   // stop after this many turns in total (0 = DefaultTurnCap)
	Colonies  bool  // add Platinum and Colony
}

// Game orchestrates an entire game between its players.
type Game struct {
	State      *GameState
	Strategies []Strategy
	Logger     log.EventLogger
	ctx        context.Context
	maxTurns   int
	started    bool
}

// NewGame sets up the supply and starting decks for one player per strategy.
// Fails with ErrUnknownCard if the kingdom names an unregistered card.
func NewGame(cfg GameConfig, strategies ...Strategy) (*Game, error) {
	if len(strategies) < 1 {
		return nil, fmt.Errorf("new game: need at least one player")
	}
	var rng Shuffler = identityShuffler{}
	if !cfg.NoShuffle {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultTurnCap
	}

	g := &Game{
		State:      NewGameState(len(strategies), rng),
		Strategies: strategies,
		Logger:     logger,
		ctx:        context.Background(),
		maxTurns:   maxTurns,
	}
	if err := g.setupSupply(cfg.Kingdom, cfg.Colonies); err != nil {
		return nil, err
	}
	for i := range g.State.Players {
		g.dealStartingDeck(i)
	}
	return g, nil
}

// dealStartingDeck gives player 7 Coppers and 3 Estates, drawn first to last
// in that order when nothing shuffles them.
func (g *Game) dealStartingDeck(player int) {
	gs := g.State
	for i := 0; i < StartEstates; i++ {
		gs.place(gs.NewInstance(MustLookup("Estate"), player), At(player, ZoneDeck))
	}
	for i := 0; i < StartCoppers; i++ {
		gs.place(gs.NewInstance(MustLookup("Copper"), player), At(player, ZoneDeck))
	}
}

// Start shuffles every deck and draws opening hands. Run calls it if needed.
func (g *Game) Start(ctx context.Context) {
	if g.started {
		return
	}
	g.ctx = ctx
	g.started = true
	gs := g.State
	for i, p := range gs.Players {
		gs.rng.Shuffle(len(p.Deck), func(a, b int) { p.Deck[a], p.Deck[b] = p.Deck[b], p.Deck[a] })
		g.Draw(i, HandSize)
	}
}

// Run executes the entire game loop and returns the winners.
func (g *Game) Run(ctx context.Context) ([]int, error) {
	g.Start(ctx)
	g.ctx = ctx
	gs := g.State

	for !gs.Over {
		if over, why := g.GameOver(); over {
			g.finish(why)
			break
		}
		if gs.Turn >= g.maxTurns {
			g.finish(fmt.Sprintf("turn limit reached (%d turns)", g.maxTurns))
			break
		}
		if err := g.runTurn(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return gs.Winners, nil
}

// runTurn executes a single turn for the current player.
func (g *Game) runTurn() error {
	gs := g.State
	gs.Turn++
	player := gs.Current
	gs.Players[player].TurnsTaken++

	g.log(log.NewTurnEvent(gs.Turn, player))

	if err := g.startPhase(); err != nil {
		return err
	}
	if err := g.actionPhase(); err != nil {
		return err
	}
	if err := g.buyPhase(); err != nil {
		return err
	}
	if err := g.cleanupPhase(); err != nil {
		return err
	}

	gs.Current = gs.Left(player)
	return nil
}

// finish marks the game over and logs the result.
func (g *Game) finish(reason string) {
	gs := g.State
	gs.Over = true
	gs.Winners = g.Winners()
	gs.Result = fmt.Sprintf("%s; scores %v, winners %v", reason, g.Scores(), displayPlayers(gs.Winners))
	g.log(log.NewGameOverEvent(gs.Turn, gs.Winners, gs.Result))
}

func displayPlayers(ps []int) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = log.PlayerName(p)
	}
	return out
}

func (g *Game) player(i int) *Player {
	return g.State.Players[i]
}

// log records event and notifies every strategy.
func (g *Game) log(event log.GameEvent) {
	g.Logger.Log(event)
	// Notify strategies (ignore errors for notifications)
	for _, s := range g.Strategies {
		if s != nil {
			_ = s.Notify(g.ctx, event)
		}
	}
}

// Draw draws up to n cards for player, shuffling as needed. Drawing from an
// empty deck and discard pile yields fewer cards and is not an error.
func (g *Game) Draw(player, n int) []*CardInstance {
	gs := g.State
	var drawn []*CardInstance
	for len(drawn) < n {
		card, shuffled := gs.drawOne(player)
		if shuffled > 0 {
			g.log(log.NewShuffleEvent(gs.Turn, gs.Phase.String(), player, shuffled))
		}
		if card == nil {
			g.log(log.NewDeckOutEvent(gs.Turn, gs.Phase.String(), player, n, len(drawn)))
			break
		}
		g.log(log.NewDrawEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name))
		drawn = append(drawn, card)
	}
	return drawn
}

// DrawTo draws until player holds size cards.
func (g *Game) DrawTo(player, size int) []*CardInstance {
	have := len(g.State.Players[player].Hand)
	if have >= size {
		return nil
	}
	return g.Draw(player, size-have)
}

// AddVP gives player victory point tokens.
func (g *Game) AddVP(player, n int, source *CardInstance) {
	g.State.Players[player].VPTokens += n
	g.logTokens(player, "vp", n, source)
}

// AddCoffers gives player coffers.
func (g *Game) AddCoffers(player, n int, source *CardInstance) {
	g.State.Players[player].Coffers += n
	g.logTokens(player, "coffers", n, source)
}

// AddVillagers gives player villagers.
func (g *Game) AddVillagers(player, n int, source *CardInstance) {
	g.State.Players[player].Villagers += n
	g.logTokens(player, "villagers", n, source)
}

// AddDebt gives player debt tokens.
func (g *Game) AddDebt(player, n int, source *CardInstance) {
	g.State.Players[player].Debt += n
	g.logTokens(player, "debt", n, source)
}

func (g *Game) logTokens(player int, kind string, n int, source *CardInstance) {
	gs := g.State
	name := ""
	if source != nil {
		name = source.Card.Name
	}
	g.log(log.NewTokensEvent(gs.Turn, gs.Phase.String(), player, kind, n, name))
}
