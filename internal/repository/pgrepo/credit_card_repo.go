package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

const creditCardColumns = `id, created_at, updated_at, user_id, number, consumption, credit_limit, balance`

type CreditCardRepository struct {
	conn uow.DBTX
}

func NewCreditCardRepository(conn uow.DBTX) *CreditCardRepository {
	return &CreditCardRepository{conn: conn}
}

// Create выпускает карту юзеру. Доступный кредит новой карты равен лимиту. Если юзера нет,
// вернется domain.ErrRecordNotFound.
func (c *CreditCardRepository) Create(
	ctx context.Context,
	card repoargs.CreateCreditCard,
) (*domain.CreditCard, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO credit_cards (user_id, number, consumption, credit_limit, balance)
		VALUES ($1, $2, 0, $3, $3)
		RETURNING `+creditCardColumns,
		card.UserID, card.Number, card.Limit,
	)
	dbCard, err := scanCreditCard(row)
	if err != nil {
		return nil, convertErr(err, "creating credit card for user %d", card.UserID)
	}
	return dbCard, nil
}

// GetByUserID возвращает карты юзера в порядке order.
func (c *CreditCardRepository) GetByUserID(
	ctx context.Context,
	userID int64,
	order domain.CardOrder,
) ([]domain.CreditCard, error) {
	rows, err := c.conn.Query(ctx,
		`SELECT `+creditCardColumns+` FROM credit_cards WHERE user_id = $1 ORDER BY `+cardOrderClause(order),
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting credit cards of user %d", userID)
	}
	cards, collectErr := pgx.CollectRows(rows, collectCreditCard)
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting credit cards of user %d", userID)
	}
	return cards, nil
}

// LockByUserID как GetByUserID, но блокирует строки карт до конца транзакции.
func (c *CreditCardRepository) LockByUserID(
	ctx context.Context,
	userID int64,
	order domain.CardOrder,
) ([]domain.CreditCard, error) {
	rows, err := c.conn.Query(ctx,
		`SELECT `+creditCardColumns+` FROM credit_cards WHERE user_id = $1 ORDER BY `+
			cardOrderClause(order)+` FOR UPDATE`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "locking credit cards of user %d", userID)
	}
	cards, collectErr := pgx.CollectRows(rows, collectCreditCard)
	if collectErr != nil {
		return nil, convertErr(collectErr, "locking credit cards of user %d", userID)
	}
	return cards, nil
}

// Charge списывает amount с доступного кредита карты и увеличивает потребление на ту же сумму.
// Если доступного кредита не хватает, вернется domain.ErrConstraintViolation.
func (c *CreditCardRepository) Charge(
	ctx context.Context,
	cardID int64,
	amount decimal.Decimal,
) (*domain.CreditCard, error) {
	row := c.conn.QueryRow(ctx,
		`UPDATE credit_cards
		SET consumption = consumption + $2, balance = balance - $2, updated_at = now()
		WHERE id = $1
		RETURNING `+creditCardColumns,
		cardID, amount,
	)
	dbCard, err := scanCreditCard(row)
	if err != nil {
		return nil, convertErr(err, "charging credit card %d with %s", cardID, amount)
	}
	return dbCard, nil
}

// cardOrderClause возвращает ORDER BY выражение только из фиксированного набора, значение order в SQL
// не подставляется.
func cardOrderClause(order domain.CardOrder) string {
	if order == domain.CardOrderIDDesc {
		return "id DESC"
	}
	return "id ASC"
}

func scanCreditCard(row pgx.Row) (*domain.CreditCard, error) {
	var card domain.CreditCard
	err := row.Scan(
		&card.ID,
		&card.CreatedAt,
		&card.UpdatedAt,
		&card.UserID,
		&card.Number,
		&card.Consumption,
		&card.Limit,
		&card.Balance,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &card, nil
}

func collectCreditCard(row pgx.CollectableRow) (domain.CreditCard, error) {
	card, err := scanCreditCard(row)
	if err != nil {
		return domain.CreditCard{}, err
	}
	return *card, nil
}
