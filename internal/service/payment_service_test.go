package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
)

type PaymentServiceTestSuite struct {
	serviceSuite
	service *PaymentService
	payer   domain.User
	payee   domain.User
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.service = NewPaymentService(s.mockUOW, domain.CardOrderIDAsc, s.logger)
	s.payer = domain.User{ID: 1, Name: "Bobby", Balance: decimal.NewFromInt(5)}
	s.payee = domain.User{ID: 2, Name: "Carol", Balance: decimal.NewFromInt(10)}
}

// expectLock настраивает блокировку пары юзеров. Репозиторий отдает их в порядке id.
func (s *PaymentServiceTestSuite) expectLock(users ...domain.User) {
	s.userRepo.EXPECT().LockByIDs(gomock.Any(), []int64{s.payer.ID, s.payee.ID}).Return(users, nil)
}

func (s *PaymentServiceTestSuite) expectCreditAndFeed(amount decimal.Decimal, reason string) {
	credited := s.payee
	credited.Balance = s.payee.Balance.Add(amount)
	s.userRepo.EXPECT().AddToBalance(gomock.Any(), s.payee.ID, amount).Return(&credited, nil)

	s.feedRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args repoargs.CreateFeedEntry) (*domain.FeedEntry, error) {
			s.Equal(s.payer.ID, args.UserID)
			s.Require().NotNil(args.RelatedUserID)
			s.Equal(s.payee.ID, *args.RelatedUserID)
			s.Equal(domain.FeedTypePayment, args.Type)
			s.Equal(PaymentDetail(s.payer.Name, s.payee.Name, amount, reason), args.Detail)
			return &domain.FeedEntry{ID: 1, UserID: args.UserID, Type: args.Type, Detail: args.Detail}, nil
		},
	)
}

func (s *PaymentServiceTestSuite) TestPay_Wallet() {
	amount := decimal.NewFromInt(3)
	s.expectDo(1)
	s.expectLock(s.payer, s.payee)

	debited := s.payer
	debited.Balance = decimal.NewFromInt(2)
	s.userRepo.EXPECT().AddToBalance(gomock.Any(), s.payer.ID, amount.Neg()).Return(&debited, nil)
	s.expectCreditAndFeed(amount, "Coffee")

	res, err := s.service.Pay(s.T().Context(), PayArgs{
		PayerID:    s.payer.ID,
		ReceiverID: s.payee.ID,
		Amount:     amount,
		Reason:     "Coffee",
	})
	s.Require().NoError(err)
	s.Equal("Bobby paid Carol $3 for Coffee", res.Detail)
	s.True(decimal.NewFromInt(2).Equal(res.RemainingBalance))
	s.Equal(domain.FundingSourceWallet, res.FundingSource)
	s.Nil(res.CreditCardID)
}

func (s *PaymentServiceTestSuite) TestPay_WalletExactBalance() {
	// сумма ровно равная балансу идет с кошелька, карты не трогаются.
	amount := s.payer.Balance
	s.expectDo(1)
	s.expectLock(s.payer, s.payee)

	debited := s.payer
	debited.Balance = decimal.Zero
	s.userRepo.EXPECT().AddToBalance(gomock.Any(), s.payer.ID, amount.Neg()).Return(&debited, nil)
	s.expectCreditAndFeed(amount, "Lunch")

	res, err := s.service.Pay(s.T().Context(), PayArgs{
		PayerID:    s.payer.ID,
		ReceiverID: s.payee.ID,
		Amount:     amount,
		Reason:     "Lunch",
	})
	s.Require().NoError(err)
	s.True(res.RemainingBalance.IsZero())
	s.Equal(domain.FundingSourceWallet, res.FundingSource)
}

func (s *PaymentServiceTestSuite) TestPay_CreditCard() {
	amount := decimal.NewFromInt(10)
	cards := []domain.CreditCard{
		{ID: 7, UserID: s.payer.ID, Limit: decimal.NewFromInt(9), Balance: decimal.NewFromInt(9)},
		// ровно равный доступный кредит подходит.
		{ID: 8, UserID: s.payer.ID, Limit: decimal.NewFromInt(20), Balance: decimal.NewFromInt(10)},
		{ID: 9, UserID: s.payer.ID, Limit: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100)},
	}

	s.expectDo(1)
	s.expectLock(s.payer, s.payee)
	s.cardRepo.EXPECT().LockByUserID(gomock.Any(), s.payer.ID, domain.CardOrderIDAsc).Return(cards, nil)
	s.cardRepo.EXPECT().Charge(gomock.Any(), int64(8), amount).Return(&domain.CreditCard{
		ID:          8,
		UserID:      s.payer.ID,
		Consumption: decimal.NewFromInt(20),
		Limit:       decimal.NewFromInt(20),
		Balance:     decimal.Zero,
	}, nil)
	s.expectCreditAndFeed(amount, "Rent")

	res, err := s.service.Pay(s.T().Context(), PayArgs{
		PayerID:    s.payer.ID,
		ReceiverID: s.payee.ID,
		Amount:     amount,
		Reason:     "Rent",
	})
	s.Require().NoError(err)
	s.True(res.RemainingBalance.IsZero())
	s.Equal(domain.FundingSourceCreditCard, res.FundingSource)
	s.Require().NotNil(res.CreditCardID)
	s.Equal(int64(8), *res.CreditCardID)
}

func (s *PaymentServiceTestSuite) TestPay_CardOrderDesc() {
	service := NewPaymentService(s.mockUOW, domain.CardOrderIDDesc, s.logger)
	amount := decimal.NewFromInt(10)
	cards := []domain.CreditCard{
		{ID: 9, UserID: s.payer.ID, Limit: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100)},
		{ID: 8, UserID: s.payer.ID, Limit: decimal.NewFromInt(20), Balance: decimal.NewFromInt(20)},
	}

	s.expectDo(1)
	s.expectLock(s.payer, s.payee)
	s.cardRepo.EXPECT().LockByUserID(gomock.Any(), s.payer.ID, domain.CardOrderIDDesc).Return(cards, nil)
	s.cardRepo.EXPECT().Charge(gomock.Any(), int64(9), amount).Return(&cards[0], nil)
	s.expectCreditAndFeed(amount, "Rent")

	res, err := service.Pay(s.T().Context(), PayArgs{
		PayerID:    s.payer.ID,
		ReceiverID: s.payee.ID,
		Amount:     amount,
		Reason:     "Rent",
	})
	s.Require().NoError(err)
	s.Equal(int64(9), *res.CreditCardID)
}

func (s *PaymentServiceTestSuite) TestPay_InsufficientFunds() {
	// ни кошелек, ни карты не покрывают сумму: получатель не пополняется, запись в ленте не создается.
	amount := decimal.NewFromInt(50)
	cards := []domain.CreditCard{
		{ID: 7, UserID: s.payer.ID, Limit: decimal.NewFromInt(49), Balance: decimal.NewFromInt(49)},
	}

	s.expectDo(1)
	s.expectLock(s.payer, s.payee)
	s.cardRepo.EXPECT().LockByUserID(gomock.Any(), s.payer.ID, domain.CardOrderIDAsc).Return(cards, nil)

	res, err := s.service.Pay(s.T().Context(), PayArgs{
		PayerID:    s.payer.ID,
		ReceiverID: s.payee.ID,
		Amount:     amount,
		Reason:     "Car",
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	s.Nil(res)
}

func (s *PaymentServiceTestSuite) TestPay_NoCards() {
	s.expectDo(1)
	s.expectLock(s.payer, s.payee)
	s.cardRepo.EXPECT().LockByUserID(gomock.Any(), s.payer.ID, domain.CardOrderIDAsc).Return(nil, nil)

	_, err := s.service.Pay(s.T().Context(), PayArgs{
		PayerID:    s.payer.ID,
		ReceiverID: s.payee.ID,
		Amount:     decimal.NewFromInt(6),
		Reason:     "Car",
	})
	s.ErrorIs(err, domain.ErrInsufficientFunds)
}

func (s *PaymentServiceTestSuite) TestPay_UserNotFound() {
	s.expectDo(1)
	s.expectLock(s.payer)

	_, err := s.service.Pay(s.T().Context(), PayArgs{
		PayerID:    s.payer.ID,
		ReceiverID: s.payee.ID,
		Amount:     decimal.NewFromInt(1),
		Reason:     "Gift",
	})
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PaymentServiceTestSuite) TestPay_InvalidInput() {
	cases := []struct {
		name string
		args PayArgs
	}{
		{
			name: "self payment",
			args: PayArgs{PayerID: 1, ReceiverID: 1, Amount: decimal.NewFromInt(1), Reason: "Self"},
		},
		{
			name: "zero amount",
			args: PayArgs{PayerID: 1, ReceiverID: 2, Amount: decimal.Zero, Reason: "Nothing"},
		},
		{
			name: "negative amount",
			args: PayArgs{PayerID: 1, ReceiverID: 2, Amount: decimal.NewFromInt(-5), Reason: "Refund"},
		},
	}

	// до транзакции дело не доходит, Do не ожидается.
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.service.Pay(s.T().Context(), tc.args)
			s.ErrorIs(err, domain.ErrInvalidInput)
		})
	}
}

func TestFirstCovering(t *testing.T) {
	cards := []domain.CreditCard{
		{ID: 1, Balance: decimal.NewFromInt(5)},
		{ID: 2, Balance: decimal.NewFromInt(10)},
		{ID: 3, Balance: decimal.NewFromInt(10)},
	}
	if card := firstCovering(cards, decimal.NewFromInt(10)); card == nil || card.ID != 2 {
		t.Fatalf("expected card 2, got %+v", card)
	}
	if card := firstCovering(cards, decimal.NewFromInt(11)); card != nil {
		t.Fatalf("expected no card, got %+v", card)
	}
}
