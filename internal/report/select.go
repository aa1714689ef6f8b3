package report

import "fmt"

// selectTable returns the index into candidates chosen by strategy. Ties
// always resolve to the earliest table in document order.
func selectTable(candidates []Candidate, strategy Strategy) (int, error) {
	if len(candidates) == 0 {
		return -1, fmt.Errorf("no candidates")
	}
	var better func(a, b Candidate) bool
	switch strategy {
	case StrategyLargestMarkup, "":
		better = func(a, b Candidate) bool { return a.Markup > b.Markup }
	case StrategyMostCells:
		better = func(a, b Candidate) bool {
			if a.Cells() != b.Cells() {
				return a.Cells() > b.Cells()
			}
			return a.Markup > b.Markup
		}
	case StrategyHeaderMatch:
		better = func(a, b Candidate) bool {
			if a.HeaderHits != b.HeaderHits {
				return a.HeaderHits > b.HeaderHits
			}
			return a.Markup > b.Markup
		}
	default:
		return -1, fmt.Errorf("unknown table selection strategy %q", strategy)
	}
	best := 0
	for i := 1; i < len(candidates); i++ {
		if better(candidates[i], candidates[best]) {
			best = i
		}
	}
	return best, nil
}
