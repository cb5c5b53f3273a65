package bot

import (
	"context"

	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// BigMoney plays every treasure and buys the best money or victory card it
// can afford. With Wants set it also picks up kingdom cards, which makes it
// the Engine strategy.
type BigMoney struct {
	Wants []Want
}

// NewBigMoney returns the plain money strategy.
func NewBigMoney() *BigMoney {
	return &BigMoney{}
}

// NewEngine returns a money strategy that also buys the wanted kingdom cards.
func NewEngine(wants ...Want) *BigMoney {
	return &BigMoney{Wants: wants}
}

func (b *BigMoney) Decide(ctx context.Context, view *game.View, d game.Decision) (game.Choice, error) {
	if d.Kind == game.DecideBuy {
		return game.Pick(b.buy(view, d)), nil
	}
	return sensible(view, d), nil
}

func (b *BigMoney) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

// buy walks the priority list and returns the first option offered.
func (b *BigMoney) buy(view *game.View, d game.Decision) int {
	provinces := view.PileCount("Province")
	for _, name := range b.priorities(view, provinces) {
		if i := d.Find(name); i >= 0 {
			return i
		}
	}
	return d.DeclineIndex()
}

func (b *BigMoney) priorities(view *game.View, provinces int) []string {
	list := []string{"Colony", "Platinum", "Province"}
	if provinces <= 4 {
		list = append(list, "Duchy")
	}
	if provinces <= 2 {
		list = append(list, "Estate")
	}
	for _, w := range b.Wants {
		if view.CountOwned(w.Name) < w.Max {
			list = append(list, w.Name)
		}
	}
	return append(list, "Gold", "Silver")
}
