package battle

import "github.com/cory-johannsen/turnbattle/internal/game/unit"

// sortByAgilityDesc sorts units in place, highest agility first.
// Equal agility keeps the incoming order.
func sortByAgilityDesc(units []*unit.Unit) {
	n := len(units)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && units[j].Agl > units[j-1].Agl; j-- {
			units[j], units[j-1] = units[j-1], units[j]
		}
	}
}

// initialQueue returns the living units of units ordered by agility.
func initialQueue(units []*unit.Unit) []*unit.Unit {
	q := make([]*unit.Unit, 0, len(units))
	for _, u := range units {
		if u.IsAlive() {
			q = append(q, u)
		}
	}
	sortByAgilityDesc(q)
	return q
}

func indexOf(units []*unit.Unit, u *unit.Unit) int {
	for i, held := range units {
		if held == u {
			return i
		}
	}
	return -1
}

func removeUnit(units []*unit.Unit, u *unit.Unit) []*unit.Unit {
	out := units[:0]
	for _, held := range units {
		if held != u {
			out = append(out, held)
		}
	}
	return out
}

func allDead(units []*unit.Unit) bool {
	for _, u := range units {
		if u.IsAlive() {
			return false
		}
	}
	return true
}
