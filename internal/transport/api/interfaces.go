package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	CreateUser(ctx context.Context, args service.CreateUserArgs) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	AddCreditCard(ctx context.Context, args service.AddCreditCardArgs) (*domain.CreditCard, error)
	CreditCardsOf(ctx context.Context, userID int64) ([]domain.CreditCard, error)
}

type PaymentServicer interface {
	Pay(ctx context.Context, args service.PayArgs) (*service.PaymentResult, error)
}

type FriendshipServicer interface {
	AddFriend(ctx context.Context, userID, friendID int64) (*service.FriendshipResult, error)
	FriendsOf(ctx context.Context, userID int64) ([]domain.User, error)
}

type FeedServicer interface {
	ActivityFor(ctx context.Context, userID int64) ([]domain.FeedEntry, error)
}
