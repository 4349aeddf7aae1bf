package model

// historySize is how many recent fingerprints are kept for cycle detection
const historySize = 5

// History remembers fingerprints of recent generations to spot still lifes and short cycles
type History struct {
	hashes []string
}

// Record adds the grid's fingerprint, keeping only the most recent states
func (h *History) Record(g Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// i.e. the board is static or cycling with period 1, 2 or 3
func (h *History) IsStagnant(g Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}
