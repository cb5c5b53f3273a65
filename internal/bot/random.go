package bot

import (
	"context"
	"math/rand"

	"github.com/peterkuimelis/deckbuilder/internal/game"
	"github.com/peterkuimelis/deckbuilder/internal/log"
)

// Random answers every decision with a uniformly chosen legal choice. Each
// Random owns its source, so one must not be shared between games running
// in parallel.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Decide(ctx context.Context, view *game.View, d game.Decision) (game.Choice, error) {
	var picks []int
	for i, o := range d.Options {
		if !o.Decline {
			picks = append(picks, i)
		}
	}
	// declining counts as one more outcome
	if di := d.DeclineIndex(); di >= 0 && r.rng.Intn(len(picks)+1) == 0 {
		return game.Pick(di), nil
	}
	if d.Kind == game.DecideOrderTopdeck {
		r.rng.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
		return game.Choice{Picks: picks}, nil
	}

	lo, hi := d.Min, d.Max
	if lo < 1 && len(picks) > 0 && d.DeclineIndex() >= 0 {
		lo = 1
	}
	if hi > len(picks) {
		hi = len(picks)
	}
	if lo > hi {
		lo = hi
	}
	n := lo
	if hi > lo {
		n += r.rng.Intn(hi - lo + 1)
	}
	r.rng.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
	return game.Choice{Picks: picks[:n]}, nil
}

func (r *Random) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}
