// Package console seats a person at a terminal as a game.Strategy.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// Player reads answers from in and renders prompts and events to out.
type Player struct {
	seat int
	in   *bufio.Reader
	out  io.Writer
}

// NewPlayer creates a terminal player for seat.
func NewPlayer(seat int, in io.Reader, out io.Writer) *Player {
	return &Player{seat: seat, in: bufio.NewReader(in), out: out}
}

// Decide implements game.Strategy. It keeps asking until the answer is
// legal; running out of input aborts the game.
func (c *Player) Decide(ctx context.Context, view *game.View, d game.Decision) (game.Choice, error) {
	if d.Kind == game.DecideAction || d.Kind == game.DecideBuy {
		c.renderState(view)
	}
	c.renderDecision(d)
	for {
		if err := ctx.Err(); err != nil {
			return game.Choice{}, err
		}
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return game.Choice{}, fmt.Errorf("read answer: %w", err)
		}
		choice, perr := parseAnswer(d, line)
		if perr == nil {
			perr = d.Validate(choice)
		}
		if perr == nil {
			return choice, nil
		}
		fmt.Fprintf(c.out, "%v\n", perr)
		if err != nil {
			return game.Choice{}, fmt.Errorf("read answer: %w", err)
		}
	}
}

// Notify implements game.Strategy.
func (c *Player) Notify(ctx context.Context, event log.GameEvent) error {
	if event.Type == log.EventDraw && event.Player != c.seat {
		return nil
	}
	_, err := fmt.Fprintln(c.out, log.FormatEvent(event))
	return err
}

// parseAnswer turns a line of 1-based numbers into a Choice. A blank line
// declines, and y/n answer yes-no questions.
func parseAnswer(d game.Decision, line string) (game.Choice, error) {
	line = strings.TrimSpace(strings.ToLower(line))
	if d.Kind == game.DecideYesNo {
		switch line {
		case "y", "yes":
			line = "1"
		case "n", "no":
			line = "2"
		}
	}
	if line == "" {
		if i := d.DeclineIndex(); i >= 0 {
			return game.Pick(i), nil
		}
		return game.Choice{}, nil
	}
	var picks []int
	for _, p := range strings.Fields(line) {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > len(d.Options) {
			return game.Choice{}, fmt.Errorf("each number must be between 1 and %d", len(d.Options))
		}
		picks = append(picks, n-1)
	}
	return game.Choice{Picks: picks}, nil
}

func (c *Player) renderDecision(d game.Decision) {
	fmt.Fprintf(c.out, "\n%s", d.Prompt)
	if d.Source != "" {
		fmt.Fprintf(c.out, " [%s]", d.Source)
	}
	if d.Max > 1 {
		fmt.Fprintf(c.out, " (select %d", d.Min)
		if d.Max != d.Min {
			fmt.Fprintf(c.out, "-%d", d.Max)
		}
		fmt.Fprint(c.out, ")")
	}
	fmt.Fprintln(c.out)
	for i, o := range d.Options {
		if !o.Decline && o.Card == nil && o.Name != "" && (o.Cost != game.Cost{}) {
			fmt.Fprintf(c.out, "  %d) %s (%s)\n", i+1, o.Label(), o.Cost)
			continue
		}
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, o.Label())
	}
}

func (c *Player) renderState(v *game.View) {
	if v == nil {
		return
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	for p := 0; p < v.NumPlayers(); p++ {
		if p == v.Me() {
			continue
		}
		fmt.Fprintf(c.out, "║  %s  Hand: %d  VP: %d\n", log.PlayerName(p), v.HandSize(p), v.Score(p))
	}
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")
	fmt.Fprintf(c.out, "║  YOU (%s)  VP: %d  Deck: %d  Discard: %d\n", log.PlayerName(v.Me()), v.Score(v.Me()), v.DeckCount(), v.DiscardCount())
	fmt.Fprintf(c.out, "║  Actions: %d  Buys: %d  Coins: %d", v.Actions(), v.Buys(), v.Coins())
	if v.Potions() > 0 {
		fmt.Fprintf(c.out, "  Potions: %d", v.Potions())
	}
	if v.Debt() > 0 {
		fmt.Fprintf(c.out, "  Debt: %d", v.Debt())
	}
	if v.Coffers() > 0 || v.Villagers() > 0 {
		fmt.Fprintf(c.out, "  Coffers: %d  Villagers: %d", v.Coffers(), v.Villagers())
	}
	fmt.Fprintln(c.out)
	if in := v.InPlay(); len(in) > 0 {
		fmt.Fprintf(c.out, "║  In play: %s\n", joinNames(in))
	}
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")
	fmt.Fprintf(c.out, "Turn %d | %s | Hand: %s\n", v.Turn(), v.Phase(), joinNames(v.Hand()))
}

func joinNames(cards []*game.CardInstance) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Card.Name
	}
	return strings.Join(names, ", ")
}
