package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/logger"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

type PaymentService struct {
	uow       uow.UOW
	cardOrder domain.CardOrder
	l         *logrus.Entry
}

func NewPaymentService(u uow.UOW, cardOrder domain.CardOrder, l *logrus.Logger) *PaymentService {
	return &PaymentService{
		uow:       u,
		cardOrder: cardOrder,
		l:         logger.Component(l, "payment"),
	}
}

type PayArgs struct {
	PayerID    int64
	ReceiverID int64
	Amount     decimal.Decimal
	Reason     string
}

type PaymentResult struct {
	Detail string
	// RemainingBalance баланс кошелька плательщика после платежа. При оплате кредитной картой кошелек
	// не трогается, и здесь всегда ноль.
	RemainingBalance decimal.Decimal
	FundingSource    domain.FundingSource
	CreditCardID     *int64
}

// Pay переводит Amount от плательщика получателю. Если кошелька плательщика хватает (в том числе ровно),
// списывается кошелек, иначе первая в порядке cardOrder карта с доступным кредитом не меньше суммы.
// Все изменения и запись в ленте фиксируются одной транзакцией. Если ни кошелек, ни карты не покрывают
// сумму, возвращается domain.ErrInsufficientFunds и ничего не меняется.
func (s *PaymentService) Pay(ctx context.Context, args PayArgs) (*PaymentResult, error) {
	if args.PayerID == args.ReceiverID {
		return nil, domain.NewInvalidInputError("payer and receiver must differ")
	}
	if !args.Amount.IsPositive() {
		return nil, domain.NewInvalidInputError("amount must be positive, got %s", args.Amount)
	}

	var result *PaymentResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		payer, receiver, lockErr := lockPair(c, userRepo, args.PayerID, args.ReceiverID)
		if lockErr != nil {
			return lockErr
		}

		res, fundErr := s.fund(c, tx, userRepo, payer, args.Amount)
		if fundErr != nil {
			return fundErr
		}

		if _, err := userRepo.AddToBalance(c, receiver.ID, args.Amount); err != nil {
			return fmt.Errorf("crediting receiver %d: %w", receiver.ID, err)
		}

		feedRepo, feedRepoErr := uow.GetAs[FeedRepository](tx, uow.RepositoryName(repoargs.FeedRepoName))
		if feedRepoErr != nil {
			return feedRepoErr //nolint:wrapcheck
		}
		res.Detail = PaymentDetail(payer.Name, receiver.Name, args.Amount, args.Reason)
		if _, err := feedRepo.Create(c, repoargs.CreateFeedEntry{
			UserID:        payer.ID,
			RelatedUserID: &receiver.ID,
			Type:          domain.FeedTypePayment,
			Detail:        res.Detail,
		}); err != nil {
			return fmt.Errorf("creating payment feed entry: %w", err)
		}

		result = res
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("paying %s from %d to %d: %w", args.Amount, args.PayerID, args.ReceiverID, txErr)
	}

	s.l.WithFields(logrus.Fields{
		"payer":          args.PayerID,
		"receiver":       args.ReceiverID,
		"amount":         args.Amount.String(),
		"funding_source": result.FundingSource,
	}).Info("payment completed")

	return result, nil
}

// fund списывает amount с кошелька или кредитной карты заблокированного плательщика.
func (s *PaymentService) fund(
	ctx context.Context,
	tx uow.TX,
	userRepo UserRepository,
	payer *domain.User,
	amount decimal.Decimal,
) (*PaymentResult, error) {
	if amount.LessThanOrEqual(payer.Balance) {
		updated, err := userRepo.AddToBalance(ctx, payer.ID, amount.Neg())
		if err != nil {
			return nil, fmt.Errorf("debiting payer %d: %w", payer.ID, err)
		}
		return &PaymentResult{
			RemainingBalance: updated.Balance,
			FundingSource:    domain.FundingSourceWallet,
		}, nil
	}

	cardRepo, cardRepoErr := uow.GetAs[CreditCardRepository](tx, uow.RepositoryName(repoargs.CreditCardRepoName))
	if cardRepoErr != nil {
		return nil, cardRepoErr //nolint:wrapcheck
	}
	cards, cardsErr := cardRepo.LockByUserID(ctx, payer.ID, s.cardOrder)
	if cardsErr != nil {
		return nil, fmt.Errorf("locking credit cards of payer %d: %w", payer.ID, cardsErr)
	}

	card := firstCovering(cards, amount)
	if card == nil {
		return nil, domain.ErrInsufficientFunds
	}
	if _, err := cardRepo.Charge(ctx, card.ID, amount); err != nil {
		return nil, fmt.Errorf("charging credit card %d: %w", card.ID, err)
	}
	return &PaymentResult{
		RemainingBalance: decimal.Zero,
		FundingSource:    domain.FundingSourceCreditCard,
		CreditCardID:     &card.ID,
	}, nil
}

// firstCovering возвращает первую карту, доступного кредита которой хватает на amount, или nil.
func firstCovering(cards []domain.CreditCard, amount decimal.Decimal) *domain.CreditCard {
	for i := range cards {
		if cards[i].CanCover(amount) {
			return &cards[i]
		}
	}
	return nil
}

// PaymentDetail текст записи ленты о платеже.
func PaymentDetail(payer, receiver string, amount decimal.Decimal, reason string) string {
	return fmt.Sprintf("%s paid %s $%s for %s", payer, receiver, amount.String(), reason)
}
