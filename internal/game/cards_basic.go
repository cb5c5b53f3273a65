package game

import "strconv"

func init() {
	register(
		Copper, Silver, Gold, Platinum, Potion,
		Estate, Duchy, Province, Colony, Curse,
	)
}

func treasure(name string, cost, coins int) *Card {
	return &Card{
		Name:        name,
		Description: "+$" + strconv.Itoa(coins),
		Cost:        Cost{Coins: cost},
		Types:       TypeTreasure,
		Stats:       Stats{Coins: coins},
	}
}

func victory(name string, cost, vp int) *Card {
	return &Card{
		Name:        name,
		Description: strconv.Itoa(vp) + " VP",
		Cost:        Cost{Coins: cost},
		Types:       TypeVictory,
		VP:          vp,
	}
}

func Copper() *Card { return treasure("Copper", 0, 1) }
func Gold() *Card { return treasure("Gold", 6, 3) }
func Platinum() *Card { return treasure("Platinum", 9, 5) }

// Silver pays out any Merchant bonus the first time one is played each turn.
func Silver() *Card {
	c := treasure("Silver", 3, 2)
	c.Effect = &CardEffect{
		Play: func(g *Game, card *CardInstance, player int) error {
			p := g.player(player)
			p.TurnFlags["silvers"]++
			if p.TurnFlags["silvers"] == 1 {
				p.Coins += p.TurnFlags["merchants"]
			}
			return nil
		},
	}
	return c
}

func Potion() *Card {
	return &Card{
		Name:        "Potion",
		Description: "+1 Potion",
		Cost:        Cost{Coins: 4},
		Types:       TypeTreasure,
		Stats:       Stats{Potions: 1},
	}
}

func Estate() *Card { return victory("Estate", 2, 1) }
func Duchy() *Card { return victory("Duchy", 5, 3) }
func Province() *Card { return victory("Province", 8, 6) }
func Colony() *Card { return victory("Colony", 11, 10) }

func Curse() *Card {
	return &Card{
		Name:        "Curse",
		Description: "-1 VP",
		Types:       TypeCurse,
		VP:          -1,
	}
}
