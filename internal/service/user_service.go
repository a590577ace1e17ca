package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

type UserService struct {
	userRepo  UserRepository
	cardRepo  CreditCardRepository
	cardOrder domain.CardOrder
}

func NewUserService(u uow.UOW, cardOrder domain.CardOrder) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	cardRepo, cardRepoErr := uow.GetRepositoryAs[CreditCardRepository](
		u,
		uow.RepositoryName(repoargs.CreditCardRepoName),
	)
	if cardRepoErr != nil {
		return nil, cardRepoErr
	}
	return &UserService{
		userRepo:  userRepo,
		cardRepo:  cardRepo,
		cardOrder: cardOrder,
	}, nil
}

type CreateUserArgs struct {
	Name    string
	Balance decimal.Decimal
}

// CreateUser создает юзера с начальным балансом кошелька. Имена не уникальны.
func (s *UserService) CreateUser(ctx context.Context, args CreateUserArgs) (*domain.User, error) {
	name := strings.TrimSpace(args.Name)
	if name == "" {
		return nil, domain.NewInvalidInputError("user name is empty")
	}
	if args.Balance.IsNegative() {
		return nil, domain.NewInvalidInputError("initial balance %s is negative", args.Balance)
	}

	user, err := s.userRepo.Create(ctx, repoargs.CreateUser{Name: name, Balance: args.Balance})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", userID, err)
	}
	return user, nil
}

type AddCreditCardArgs struct {
	UserID int64
	Number string
	Limit  decimal.Decimal
}

// AddCreditCard выпускает юзеру кредитную карту с лимитом Limit. Номер карты проверяется по алгоритму Луна
// на уровне транспорта, здесь проверяется только наличие номера и положительный лимит.
func (s *UserService) AddCreditCard(ctx context.Context, args AddCreditCardArgs) (*domain.CreditCard, error) {
	number := strings.TrimSpace(args.Number)
	if number == "" {
		return nil, domain.NewInvalidInputError("credit card number is empty")
	}
	if !args.Limit.IsPositive() {
		return nil, domain.NewInvalidInputError("credit limit must be positive, got %s", args.Limit)
	}

	card, err := s.cardRepo.Create(ctx, repoargs.CreateCreditCard{
		UserID: args.UserID,
		Number: number,
		Limit:  args.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("adding credit card to user %d: %w", args.UserID, err)
	}
	return card, nil
}

// CreditCardsOf возвращает карты юзера в том же порядке, в котором их перебирает платеж.
func (s *UserService) CreditCardsOf(ctx context.Context, userID int64) ([]domain.CreditCard, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("getting credit cards of user %d: %w", userID, err)
	}
	cards, err := s.cardRepo.GetByUserID(ctx, userID, s.cardOrder)
	if err != nil {
		return nil, fmt.Errorf("getting credit cards of user %d: %w", userID, err)
	}
	return cards, nil
}
