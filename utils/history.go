package utils

// History keeps the hashes of recent generations to detect still lifes and
// short cycles
type History struct {
	window int
	hashes []string
}

// NewHistory tracks the last window generations. A window of 0 disables
// detection and a window of 1 only catches still lifes.
func NewHistory(window int) *History {
	return &History{window: window}
}

// Observe records hash and reports the period of the cycle it closes: 1 for
// a still life, 2 or more for an oscillator, 0 when hash is new
func (h *History) Observe(hash string) int {
	if h.window < 1 {
		return 0
	}

	period := 0
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period = len(h.hashes) - i
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last window states
	if len(h.hashes) > h.window {
		h.hashes = h.hashes[1:]
	}

	return period
}
