package engine

// Reward is one entry of the fixed reward cost table.
type Reward struct {
	Label string
	Cost  int
}

// Affordability pairs a reward with whether the day's total covers it.
type Affordability struct {
	Reward     Reward
	Affordable bool
}

// DefaultRewards is the built-in table, overridable via config.
var DefaultRewards = []Reward{
	{Label: "30 Min Gaming", Cost: 30},
	{Label: "1 Folge Serie", Cost: 50},
	{Label: "Lieferessen bestellen", Cost: 60},
}

// Evaluate checks each reward against the day's total, preserving table
// order. Purely advisory: redemption never subtracts from the total.
func Evaluate(total int, table []Reward) []Affordability {
	out := make([]Affordability, len(table))
	for i, r := range table {
		out[i] = Affordability{Reward: r, Affordable: total >= r.Cost}
	}
	return out
}
