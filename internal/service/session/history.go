package session

import "github.com/google/uuid"

// history is the anti-repeat window: the last N served card ids, oldest
// dropped first. It is engine-local and never persisted. The structured
// working queue has no duplicates, so the window only matters for the
// random-jump affordance, which samples the deck with replacement.
type history struct {
	size int
	ids  []uuid.UUID
}

func newHistory(size int) *history {
	if size < 1 {
		size = 1
	}
	return &history{size: size}
}

// push appends id, dropping the oldest entry when the window is full.
// Pushing the id already at the tail is a no-op so an idempotent
// GetNextCard does not flood the window with one card.
func (h *history) push(id uuid.UUID) {
	if n := len(h.ids); n > 0 && h.ids[n-1] == id {
		return
	}
	h.ids = append(h.ids, id)
	if len(h.ids) > h.size {
		h.ids = h.ids[1:]
	}
}

func (h *history) contains(id uuid.UUID) bool {
	for _, v := range h.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (h *history) len() int {
	return len(h.ids)
}
