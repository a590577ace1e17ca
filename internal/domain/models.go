package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Balance   decimal.Decimal
}

type CreditCard struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Number      string
	Consumption decimal.Decimal
	Limit       decimal.Decimal
	Balance     decimal.Decimal
}

// CanCover сообщает, хватает ли доступного кредита карты на сумму amount. Карта с балансом ровно равным
// сумме подходит.
func (c CreditCard) CanCover(amount decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(amount)
}

type Friendship struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	FriendID  int64
}

// FeedEntry запись ленты активности. Создается только как побочный эффект платежа или добавления в друзья
// и никогда не изменяется.
type FeedEntry struct {
	ID              int64
	CreatedAt       time.Time
	UserID          int64
	UserName        string
	RelatedUserID   *int64
	RelatedUserName *string
	Type            FeedType
	Detail          string
}
