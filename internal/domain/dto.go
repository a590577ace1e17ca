package domain

type FeedType string

const (
	FeedTypePayment   FeedType = "payment"
	FeedTypeFriendAdd FeedType = "friend_add"
)

type FundingSource string

const (
	FundingSourceWallet     FundingSource = "wallet"
	FundingSourceCreditCard FundingSource = "credit_card"
)

// CardOrder порядок обхода кредитных карт плательщика при выборе первой подходящей.
type CardOrder string

const (
	CardOrderIDAsc  CardOrder = "id_asc"
	CardOrderIDDesc CardOrder = "id_desc"
)

// ParseCardOrder возвращает порядок по его строковому представлению. Пустая строка означает CardOrderIDAsc.
func ParseCardOrder(s string) (CardOrder, error) {
	switch CardOrder(s) {
	case "", CardOrderIDAsc:
		return CardOrderIDAsc, nil
	case CardOrderIDDesc:
		return CardOrderIDDesc, nil
	default:
		return "", NewInvalidInputError("unknown card order `%s`", s)
	}
}
