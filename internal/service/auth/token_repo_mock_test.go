package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc         func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc      func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	DeleteByHashFunc   func(ctx context.Context, tokenHash string) error
	DeleteByUserIDFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc  func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		Create []struct {
			Token *domain.RefreshToken
		}
		GetByHash []struct {
			TokenHash string
		}
		DeleteByHash []struct {
			TokenHash string
		}
		DeleteByUserID []struct {
			UserID uuid.UUID
		}
		DeleteExpired []struct {
			Now time.Time
		}
	}
	lockCreate         sync.RWMutex
	lockGetByHash      sync.RWMutex
	lockDeleteByHash   sync.RWMutex
	lockDeleteByUserID sync.RWMutex
	lockDeleteExpired  sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	callInfo := struct{ Token *domain.RefreshToken }{Token: token}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, token)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	Token *domain.RefreshToken
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	callInfo := struct{ TokenHash string }{TokenHash: tokenHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	TokenHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteByHash(ctx context.Context, tokenHash string) error {
	if mock.DeleteByHashFunc == nil {
		panic("tokenRepoMock.DeleteByHashFunc: method is nil but tokenRepo.DeleteByHash was just called")
	}
	callInfo := struct{ TokenHash string }{TokenHash: tokenHash}
	mock.lockDeleteByHash.Lock()
	mock.calls.DeleteByHash = append(mock.calls.DeleteByHash, callInfo)
	mock.lockDeleteByHash.Unlock()
	return mock.DeleteByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) DeleteByHashCalls() []struct {
	TokenHash string
} {
	mock.lockDeleteByHash.RLock()
	calls := mock.calls.DeleteByHash
	mock.lockDeleteByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserIDFunc == nil {
		panic("tokenRepoMock.DeleteByUserIDFunc: method is nil but tokenRepo.DeleteByUserID was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockDeleteByUserID.Lock()
	mock.calls.DeleteByUserID = append(mock.calls.DeleteByUserID, callInfo)
	mock.lockDeleteByUserID.Unlock()
	return mock.DeleteByUserIDFunc(ctx, userID)
}

func (mock *tokenRepoMock) DeleteByUserIDCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockDeleteByUserID.RLock()
	calls := mock.calls.DeleteByUserID
	mock.lockDeleteByUserID.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	callInfo := struct{ Now time.Time }{Now: now}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct {
	Now time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
