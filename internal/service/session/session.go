package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// StartSession builds a fresh working queue for the deck and installs it,
// replacing any prior session for this (user, deck) pair without
// reconciliation. No card is served yet.
func (s *Service) StartSession(ctx context.Context, userID uuid.UUID, in StartSessionInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if _, err := s.ownedDeck(ctx, userID, in.DeckID); err != nil {
		return err
	}

	cards, err := s.cards.ListByDeck(ctx, in.DeckID)
	if err != nil {
		return fmt.Errorf("list deck cards: %w", err)
	}
	if len(cards) == 0 {
		return domain.NewValidationError("deck_id", "deck has no cards")
	}

	count := in.Count
	if count == CountAll {
		count = len(cards)
	}
	if count > len(cards) {
		return domain.NewValidationError("count", fmt.Sprintf("deck has only %d cards", len(cards)))
	}

	queue, err := buildQueue(in.Method, cards, count, s.newRand())
	if err != nil {
		return err
	}

	stars := make(map[uuid.UUID]int, len(cards))
	for _, c := range cards {
		stars[c.ID] = c.StarRating
	}

	sess := &session{
		userID:    userID,
		deckID:    in.DeckID,
		method:    in.Method,
		queue:     queue,
		outcomes:  make(map[uuid.UUID]domain.Outcome, count),
		stars:     stars,
		history:   newHistory(s.historySize),
		startedAt: s.now(),
	}

	if old, ok := s.store.swap(sess); ok {
		old.mu.Lock()
		old.replaced = true
		old.mu.Unlock()
	}

	if err := s.decks.TouchLastAccessed(ctx, in.DeckID, sess.startedAt); err != nil {
		s.log.WarnContext(ctx, "failed to touch deck last_accessed",
			slog.String("deck_id", in.DeckID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("deck_id", in.DeckID.String()),
		slog.String("method", string(in.Method)),
		slog.Int("count", count),
	)
	return nil
}

// GetNextCard returns the card at the session's current position without
// advancing it; repeated calls return the same card. A nil card with a nil
// error signals the session is Completed. Cards deleted since the session
// started are dropped from the queue in place.
func (s *Service) GetNextCard(ctx context.Context, userID, deckID uuid.UUID) (*domain.Card, error) {
	sess, ok := s.store.get(userID, deckID)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.replaced {
		return nil, domain.ErrNoActiveSession
	}

	for !sess.completed() {
		card, err := s.cards.GetByID(ctx, sess.queue[sess.index])
		if errors.Is(err, domain.ErrNotFound) {
			// Deleted mid-session: drop from the queue, keep the pointer.
			sess.removeAt(sess.index)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read current card: %w", err)
		}

		sess.history.push(card.ID)
		if err := s.decks.TouchLastAccessed(ctx, deckID, s.now()); err != nil {
			s.log.WarnContext(ctx, "failed to touch deck last_accessed",
				slog.String("deck_id", deckID.String()),
				slog.String("error", err.Error()),
			)
		}
		return card, nil
	}

	// Compression can exhaust the queue; persist the aggregate once.
	if !sess.logged {
		if err := s.writeLog(ctx, sess); err != nil {
			return nil, err
		}
		sess.logged = true
	}
	return nil, nil
}

// RandomJump serves a uniformly random card from the deck, excluding ids in
// the anti-repeat window. It lives outside the structured queue: it does not
// touch the session pointer. When every card is inside the window the
// exclusion is waived with a logged warning.
func (s *Service) RandomJump(ctx context.Context, userID, deckID uuid.UUID) (*domain.Card, error) {
	sess, ok := s.store.get(userID, deckID)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.replaced {
		return nil, domain.ErrNoActiveSession
	}

	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("list deck cards: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	candidates := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if !sess.history.contains(c.ID) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		s.log.WarnContext(ctx, "deck smaller than anti-repeat window, serving unrestricted",
			slog.String("deck_id", deckID.String()),
			slog.Int("deck_size", len(cards)),
			slog.Int("window", sess.history.len()),
		)
		candidates = cards
	}

	card := candidates[s.newRand().IntN(len(candidates))]
	sess.history.push(card.ID)

	if err := s.decks.TouchLastAccessed(ctx, deckID, s.now()); err != nil {
		s.log.WarnContext(ctx, "failed to touch deck last_accessed",
			slog.String("deck_id", deckID.String()),
			slog.String("error", err.Error()),
		)
	}
	return &card, nil
}

// RecordOutcome applies an outcome to the card at the current position:
// exactly one lifetime counter is incremented, the outcome lands in the
// session's viewed map, and the pointer advances by one. The durable write
// happens before the in-memory advance, so a store failure leaves the
// session unchanged. When the outcome completes the session, the counter
// increment and the aggregate session-log insert commit in one transaction.
func (s *Service) RecordOutcome(ctx context.Context, userID uuid.UUID, in RecordOutcomeInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	sess, ok := s.store.get(userID, in.DeckID)
	if !ok {
		return domain.ErrNoActiveSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.replaced {
		return domain.ErrNoActiveSession
	}
	if sess.completed() {
		return fmt.Errorf("session completed: %w", domain.ErrOutOfSequence)
	}
	if sess.queue[sess.index] != in.CardID {
		return fmt.Errorf("card %s is not the current card: %w", in.CardID, domain.ErrOutOfSequence)
	}

	completing := sess.index+1 >= len(sess.queue)
	if completing {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if _, err := s.cards.ApplyAction(txCtx, in.CardID, in.Action); err != nil {
				return err
			}
			return s.logs.Create(txCtx, s.buildLog(sess, in.Action))
		})
		if err != nil {
			return fmt.Errorf("record outcome: %w", err)
		}
		sess.logged = true
	} else {
		if _, err := s.cards.ApplyAction(ctx, in.CardID, in.Action); err != nil {
			return fmt.Errorf("record outcome: %w", err)
		}
	}

	outcome := actionOutcome(in.Action)
	sess.outcomes[in.CardID] = outcome
	switch outcome {
	case domain.OutcomePass:
		sess.passed++
	case domain.OutcomeFail:
		sess.failed++
	case domain.OutcomeSkip:
		sess.skipped++
	}
	sess.index++

	if sess.completed() {
		s.log.InfoContext(ctx, "session completed",
			slog.String("deck_id", in.DeckID.String()),
			slog.Int("total", len(sess.queue)),
			slog.Int("passed", sess.passed),
			slog.Int("failed", sess.failed),
			slog.Int("skipped", sess.skipped),
		)
	}
	return nil
}

// SetStarRating overwrites a card's star rating. It is independent of
// session sequencing: it never advances the pointer and never counts as an
// outcome, but an active session's stats strip picks the new value up.
func (s *Service) SetStarRating(ctx context.Context, userID uuid.UUID, in SetStarRatingInput) (*domain.Card, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedDeck(ctx, userID, in.DeckID); err != nil {
		return nil, err
	}

	card, err := s.cards.SetStarRating(ctx, in.CardID, in.Stars)
	if err != nil {
		return nil, fmt.Errorf("set star rating: %w", err)
	}

	if sess, ok := s.store.get(userID, in.DeckID); ok {
		sess.mu.Lock()
		if !sess.replaced {
			if _, queued := sess.stars[in.CardID]; queued {
				sess.stars[in.CardID] = in.Stars
			}
		}
		sess.mu.Unlock()
	}
	return card, nil
}

// GetSessionStats returns the live progress snapshot of the active (or
// completed) session: totals, the 0-based pointer, and the per-card strip in
// working-queue order.
func (s *Service) GetSessionStats(ctx context.Context, userID, deckID uuid.UUID) (*domain.SessionStats, error) {
	sess, ok := s.store.get(userID, deckID)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.replaced {
		return nil, domain.ErrNoActiveSession
	}

	stats := &domain.SessionStats{
		TotalCards:   len(sess.queue),
		ViewedCount:  sess.index,
		Remaining:    len(sess.queue) - sess.index,
		CurrentIndex: sess.index,
		Completed:    sess.completed(),
		CardStats:    make([]domain.CardStat, len(sess.queue)),
	}
	for i, id := range sess.queue {
		outcome := sess.outcomes[id]
		stats.CardStats[i] = domain.CardStat{
			CardID:     id,
			Viewed:     i < sess.index,
			Passed:     outcome == domain.OutcomePass,
			Failed:     outcome == domain.OutcomeFail,
			Skipped:    outcome == domain.OutcomeSkip,
			StarRating: sess.stars[id],
		}
	}
	return stats, nil
}

// ClearSession discards the session for the deck, if any. Abandoned
// sessions leave no aggregate record.
func (s *Service) ClearSession(ctx context.Context, userID, deckID uuid.UUID) error {
	if sess, ok := s.store.remove(userID, deckID); ok {
		sess.mu.Lock()
		sess.replaced = true
		sess.mu.Unlock()
		s.log.InfoContext(ctx, "session cleared",
			slog.String("deck_id", deckID.String()),
		)
	}
	return nil
}

// RecentSessions returns the newest completed-session aggregates for the
// deck, capped at the configured overview limit.
func (s *Service) RecentSessions(ctx context.Context, userID, deckID uuid.UUID) ([]domain.SessionLog, error) {
	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListRecentByDeck(ctx, userID, deckID, s.overviewLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	return logs, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// ownedDeck loads the deck and checks ownership.
func (s *Service) ownedDeck(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	if deck.UserID != userID {
		return nil, fmt.Errorf("deck %s: %w", deckID, domain.ErrForbidden)
	}
	return deck, nil
}

// buildLog assembles the aggregate record for a session that the pending
// action is about to complete. Caller holds sess.mu.
func (s *Service) buildLog(sess *session, pending domain.CardAction) *domain.SessionLog {
	log := &domain.SessionLog{
		ID:         uuid.New(),
		UserID:     sess.userID,
		DeckID:     sess.deckID,
		Method:     sess.method,
		TotalCards: len(sess.queue),
		Passed:     sess.passed,
		Failed:     sess.failed,
		Skipped:    sess.skipped,
		StartedAt:  sess.startedAt,
		FinishedAt: s.now(),
	}
	switch actionOutcome(pending) {
	case domain.OutcomePass:
		log.Passed++
	case domain.OutcomeFail:
		log.Failed++
	case domain.OutcomeSkip:
		log.Skipped++
	}
	return log
}

// writeLog persists the aggregate for an already-final session (queue
// exhausted by compression). Caller holds sess.mu.
func (s *Service) writeLog(ctx context.Context, sess *session) error {
	log := &domain.SessionLog{
		ID:         uuid.New(),
		UserID:     sess.userID,
		DeckID:     sess.deckID,
		Method:     sess.method,
		TotalCards: len(sess.queue),
		Passed:     sess.passed,
		Failed:     sess.failed,
		Skipped:    sess.skipped,
		StartedAt:  sess.startedAt,
		FinishedAt: s.now(),
	}
	if err := s.logs.Create(ctx, log); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}

func actionOutcome(a domain.CardAction) domain.Outcome {
	switch a {
	case domain.ActionIncrementPass:
		return domain.OutcomePass
	case domain.ActionIncrementSkip:
		return domain.OutcomeSkip
	case domain.ActionIncrementFail:
		return domain.OutcomeFail
	}
	return domain.OutcomeUnset
}
