package repoargs

import "github.com/shopspring/decimal"

type CreateUser struct {
	Name    string
	Balance decimal.Decimal
}

type CreateCreditCard struct {
	UserID int64
	Number string
	Limit  decimal.Decimal
}
