package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	// LockByIDs блокирует строки юзеров в порядке возрастания id до конца транзакции.
	LockByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	AddToBalance(ctx context.Context, id int64, delta decimal.Decimal) (*domain.User, error)
}

type CreditCardRepository interface {
	Create(ctx context.Context, card repoargs.CreateCreditCard) (*domain.CreditCard, error)
	GetByUserID(ctx context.Context, userID int64, order domain.CardOrder) ([]domain.CreditCard, error)
	LockByUserID(ctx context.Context, userID int64, order domain.CardOrder) ([]domain.CreditCard, error)
	Charge(ctx context.Context, cardID int64, amount decimal.Decimal) (*domain.CreditCard, error)
}

type FriendshipRepository interface {
	Create(ctx context.Context, userID, friendID int64) (*domain.Friendship, error)
	ExistsBetween(ctx context.Context, a, b int64) (bool, error)
	FriendIDsOf(ctx context.Context, userID int64) ([]int64, error)
}

type FeedRepository interface {
	Create(ctx context.Context, entry repoargs.CreateFeedEntry) (*domain.FeedEntry, error)
	GetByParticipant(ctx context.Context, userID int64) ([]domain.FeedEntry, error)
	GetFriendAddsByActors(ctx context.Context, actorIDs []int64) ([]domain.FeedEntry, error)
}
