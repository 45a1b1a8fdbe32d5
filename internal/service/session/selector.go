package session

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// buildQueue produces the working queue for a session: count distinct card
// ids from cards, ordered by the selection method. count must already be
// resolved (1 <= count <= len(cards)).
func buildQueue(method domain.SessionMethod, cards []domain.Card, count int, rng *rand.Rand) ([]uuid.UUID, error) {
	switch method {
	case domain.MethodRandom:
		return pickRandom(cards, count, rng), nil
	case domain.MethodFails:
		return pickByScore(cards, count, rng, func(c *domain.Card) int { return c.FailCount }), nil
	case domain.MethodSkips:
		return pickByScore(cards, count, rng, func(c *domain.Card) int { return c.SkipCount }), nil
	case domain.MethodWorst:
		return pickWorst(cards, count, rng), nil
	case domain.MethodStars:
		return pickByStars(cards, count, rng), nil
	case domain.MethodUnrated:
		return pickUnrated(cards, count, rng), nil
	case domain.MethodAdjustedRandom:
		return pickAdjustedRandom(cards, count, rng), nil
	default:
		return nil, fmt.Errorf("method %q: %w", method, domain.ErrValidation)
	}
}

// shuffled returns a randomly permuted copy of cards. Every picker starts
// from a shuffle so ties after a stable sort land in random order.
func shuffled(cards []domain.Card, rng *rand.Rand) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func ids(cards []domain.Card, count int) []uuid.UUID {
	out := make([]uuid.UUID, count)
	for i := 0; i < count; i++ {
		out[i] = cards[i].ID
	}
	return out
}

// pickRandom is a uniform random permutation truncated to count.
func pickRandom(cards []domain.Card, count int, rng *rand.Rand) []uuid.UUID {
	return ids(shuffled(cards, rng), count)
}

// pickByScore orders cards by score descending with random tie order, then
// truncates. Zero-score cards sort last, so they are only selected once
// every positive-score card is already in the queue.
func pickByScore(cards []domain.Card, count int, rng *rand.Rand, score func(*domain.Card) int) []uuid.UUID {
	pool := shuffled(cards, rng)
	sort.SliceStable(pool, func(i, j int) bool {
		return score(&pool[i]) > score(&pool[j])
	})
	return ids(pool, count)
}

// pickWorst ranks by the composite worst score (fails weigh double, passes
// subtract) descending.
func pickWorst(cards []domain.Card, count int, rng *rand.Rand) []uuid.UUID {
	pool := shuffled(cards, rng)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].WorstScore() > pool[j].WorstScore()
	})
	return ids(pool, count)
}

// pickByStars ranks by star rating ascending; low-rated cards presumably
// need more review.
func pickByStars(cards []domain.Card, count int, rng *rand.Rand) []uuid.UUID {
	pool := shuffled(cards, rng)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].StarRating < pool[j].StarRating
	})
	return ids(pool, count)
}

// pickUnrated selects unrated cards (star rating 0) first, in random order,
// padding with randomly ordered rated cards when fewer unrated cards exist
// than requested.
func pickUnrated(cards []domain.Card, count int, rng *rand.Rand) []uuid.UUID {
	pool := shuffled(cards, rng)
	var unrated, rated []domain.Card
	for _, c := range pool {
		if c.StarRating == 0 {
			unrated = append(unrated, c)
		} else {
			rated = append(rated, c)
		}
	}
	return ids(append(unrated, rated...), count)
}

// pickAdjustedRandom is weighted sampling without replacement: weight per
// card is 1 + fail_count + skip_count, so every card stays reachable. Each
// draw walks the cumulative weights of the remaining pool.
func pickAdjustedRandom(cards []domain.Card, count int, rng *rand.Rand) []uuid.UUID {
	pool := make([]domain.Card, len(cards))
	copy(pool, cards)

	out := make([]uuid.UUID, 0, count)
	for len(out) < count {
		total := 0
		for i := range pool {
			total += pool[i].SelectionWeight()
		}

		r := rng.IntN(total)
		picked := len(pool) - 1
		for i := range pool {
			r -= pool[i].SelectionWeight()
			if r < 0 {
				picked = i
				break
			}
		}

		out = append(out, pool[picked].ID)
		pool = append(pool[:picked], pool[picked+1:]...)
	}
	return out
}
