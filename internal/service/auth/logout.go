package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens for the authenticated user.
// Returns ErrUnauthorized if no user ID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// CleanupExpiredTokens removes refresh tokens whose expiry has passed and
// returns how many were deleted. Intended for periodic maintenance.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int64("count", count))
	}
	return count, nil
}
