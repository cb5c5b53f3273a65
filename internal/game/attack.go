package game

import (
	"fmt"

	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// AttackEffect is what an attack does to one target.
type AttackEffect func(target int) error

// AttackOpponents runs effect against every opponent of attacker, in seating
// order starting after the attacker. Every reaction window is resolved before
// any effect runs, so no target's reaction sees another target's losses.
func (g *Game) AttackOpponents(attacker int, source *CardInstance, effect AttackEffect) error {
	targets := g.State.Opponents(attacker)
	if len(targets) == 0 {
		return nil
	}
	blocked := make([]bool, len(targets))
	for i, t := range targets {
		b, err := g.reactionWindow(t, source)
		if err != nil {
			return err
		}
		blocked[i] = b
	}
	for i, t := range targets {
		if blocked[i] {
			continue
		}
		if err := g.hit(attacker, t, source, effect); err != nil {
			return err
		}
	}
	return nil
}

// AttackPlayer runs effect against one target after its reaction window.
func (g *Game) AttackPlayer(attacker, target int, source *CardInstance, effect AttackEffect) error {
	blocked, err := g.reactionWindow(target, source)
	if err != nil || blocked {
		return err
	}
	return g.hit(attacker, target, source, effect)
}

func (g *Game) hit(attacker, target int, source *CardInstance, effect AttackEffect) error {
	gs := g.State
	g.log(log.NewAttackEvent(gs.Turn, gs.Phase.String(), attacker, target, source.Card.Name))
	if err := effect(target); err != nil {
		return fmt.Errorf("%s vs P%d: %w", source.Card.Name, target+1, err)
	}
	return nil
}

// reactionWindow offers target's reactions against attack, in hand order.
// It reports whether the attack is blocked for target.
func (g *Game) reactionWindow(target int, attack *CardInstance) (bool, error) {
	gs := g.State
	p := gs.Players[target]

	for _, c := range p.Duration {
		if c.Card.effect().Shield {
			g.log(log.NewBlockedEvent(gs.Turn, gs.Phase.String(), target, attack.Card.Name, c.Card.Name))
			return true, nil
		}
	}

	var offers []*CardInstance
	for _, c := range p.Hand {
		if c.Card.effect().React != nil {
			offers = append(offers, c)
		}
	}

	blocked := false
	for _, c := range offers {
		// an earlier reaction may have moved it
		if c.Zone != ZoneHand || c.Owner != target {
			continue
		}
		fx := c.Card.effect()
		if fx.CanReact != nil && !fx.CanReact(g, c, target) {
			continue
		}
		use, err := g.ChooseCard(target, DecideReaction, attack.Card.Name,
			fmt.Sprintf("reveal %s against %s?", c.Card.Name, attack.Card.Name),
			[]*CardInstance{c}, true)
		if err != nil {
			return false, err
		}
		if use == nil {
			continue
		}
		g.log(log.NewReactionEvent(gs.Turn, gs.Phase.String(), target, c.Card.Name))
		b, err := fx.React(g, c, target, attack)
		if err != nil {
			return false, fmt.Errorf("%s reaction: %w", c.Card.Name, err)
		}
		if b {
			blocked = true
			g.log(log.NewBlockedEvent(gs.Turn, gs.Phase.String(), target, attack.Card.Name, c.Card.Name))
		}
		if !fx.Composes {
			break
		}
	}
	return blocked, nil
}
