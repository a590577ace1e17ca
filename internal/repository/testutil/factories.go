package testutil

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
)

// FakeUser возвращает аргументы создания юзера со случайным именем и указанным балансом.
func FakeUser(balance int64) repoargs.CreateUser {
	return repoargs.CreateUser{
		Name:    gofakeit.Name(),
		Balance: decimal.NewFromInt(balance),
	}
}

// FakeCreditCard возвращает аргументы выпуска карты с валидным по Луну номером.
func FakeCreditCard(userID int64, limit int64) repoargs.CreateCreditCard {
	return repoargs.CreateCreditCard{
		UserID: userID,
		Number: gofakeit.CreditCardNumber(&gofakeit.CreditCardOptions{Types: []string{"visa"}}),
		Limit:  decimal.NewFromInt(limit),
	}
}
